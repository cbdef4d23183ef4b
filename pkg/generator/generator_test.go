package generator

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/logging"
	"github.com/seedctl/seedctl/pkg/template"
)

func testSet(names ...string) *fixture.Set {
	set := fixture.NewSet()
	for i, name := range names {
		set.Add(fixture.Definition{
			Name:    name,
			Payload: map[string]any{"index": i},
		})
	}
	return set
}

func TestFixturesOrderAndInjection(t *testing.T) {
	g := New("widgets", WithSet(testSet("a", "b", "c")), WithLogger(logging.Nop()))

	fixtures, err := g.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("got %d fixtures, want 3", len(fixtures))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := fixtures[i][fixture.KeyFixtureID]; got != want {
			t.Errorf("fixtures[%d] fixture_id = %v, want %q", i, got, want)
		}
		if got := fixtures[i]["index"]; got != i {
			t.Errorf("fixtures[%d] index = %v, want %d", i, got, i)
		}
	}
}

func TestFixturesDoesNotMutateStored(t *testing.T) {
	g := New("widgets", WithSet(testSet("a")))

	first, err := g.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	first[0]["index"] = 999
	first[0]["extra"] = true

	second, err := g.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	if second[0]["index"] != 0 {
		t.Errorf("stored definition was mutated: index = %v", second[0]["index"])
	}
	if _, ok := second[0]["extra"]; ok {
		t.Error("stored definition gained a key from a returned copy")
	}
}

func TestFixtureByNameNotFound(t *testing.T) {
	g := New("widgets", WithSet(testSet("a", "b")))

	_, err := g.FixtureByName("missing")
	if err == nil {
		t.Fatal("expected error for unknown fixture")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if notFound.Name != "missing" {
		t.Errorf("Name = %q, want %q", notFound.Name, "missing")
	}
	if !reflect.DeepEqual(notFound.Available, []string{"a", "b"}) {
		t.Errorf("Available = %v, want [a b]", notFound.Available)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error message %q should list available fixtures", err.Error())
	}
}

func TestAddFixtureRoundTrip(t *testing.T) {
	g := New("widgets", WithSet(fixture.NewSet()))
	g.AddFixture("w1", "test widget", map[string]any{"size": 3, "color": "red"})

	got, err := g.FixtureByName("w1")
	if err != nil {
		t.Fatalf("FixtureByName() error: %v", err)
	}
	want := map[string]any{"size": 3, "color": "red", "fixture_id": "w1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("resolved = %v, want %v", got, want)
	}
}

func TestListAvailable(t *testing.T) {
	set := fixture.NewSet()
	set.Add(fixture.Definition{Name: "a", Description: "alpha fixture"})
	set.Add(fixture.Definition{Name: "b"})
	g := New("widgets", WithSet(set))

	available := g.ListAvailable()
	if len(available) != 2 {
		t.Fatalf("got %d entries, want 2", len(available))
	}
	if available[0].Description != "alpha fixture" {
		t.Errorf("description = %q, want %q", available[0].Description, "alpha fixture")
	}
	if available[1].Description != "Fixture: b" {
		t.Errorf("default description = %q, want %q", available[1].Description, "Fixture: b")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	g := New("widgets", WithSet(testSet("a", "b")))

	before, err := g.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}

	dir := t.TempDir()
	path, err := g.ExportToFile(dir, "widgets.json")
	if err != nil {
		t.Fatalf("ExportToFile() error: %v", err)
	}
	if path != filepath.Join(dir, "widgets.json") {
		t.Errorf("path = %q, want file under %q", path, dir)
	}

	other := New("widgets", WithSet(fixture.NewSet()))
	if err := other.ImportFromFile(path); err != nil {
		t.Fatalf("ImportFromFile() error: %v", err)
	}

	after, err := other.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("imported %d fixtures, want %d", len(after), len(before))
	}
	for i := range before {
		// JSON round-trips ints as float64.
		if before[i][fixture.KeyFixtureID] != after[i][fixture.KeyFixtureID] {
			t.Errorf("fixture %d: id %v != %v", i, after[i][fixture.KeyFixtureID], before[i][fixture.KeyFixtureID])
		}
	}
}

func TestImportMissingFixtureID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`[{"value": 1}]`), 0644); err != nil {
		t.Fatal(err)
	}

	g := New("widgets", WithSet(testSet("a")))
	err := g.ImportFromFile(path)
	if err == nil {
		t.Fatal("expected error for missing fixture_id")
	}
	if !strings.Contains(err.Error(), "fixture_id") {
		t.Errorf("error = %q, want mention of fixture_id", err)
	}

	// The existing set survives a failed import.
	if g.Len() != 1 {
		t.Errorf("set length = %d after failed import, want 1", g.Len())
	}
}

func TestRawDataWrapperScenario(t *testing.T) {
	set := fixture.NewSet()
	set.AddRaw("x", map[string]any{
		"data": map[string]any{
			"x": map[string]any{"v": 1},
		},
	})
	g := New("widgets", WithSet(set))

	fixtures, err := g.Fixtures()
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	want := []map[string]any{{"v": 1, "fixture_id": "x"}}
	if !reflect.DeepEqual(fixtures, want) {
		t.Errorf("fixtures = %v, want %v", fixtures, want)
	}
}

func TestNewSelfPopulatesFromDataRegistry(t *testing.T) {
	fixture.RegisterSet("gen_self_populate", "gen_self_populate_fixtures", map[string]map[string]any{
		"r1": {"value": 1},
		"r2": {"value": 2},
	})

	g := New("gen_self_populate")
	if g.Len() != 2 {
		t.Fatalf("set length = %d, want 2", g.Len())
	}
	if _, err := g.FixtureByName("r1"); err != nil {
		t.Errorf("FixtureByName(r1) error: %v", err)
	}
}

func TestTemplateExpansionAtResolve(t *testing.T) {
	set := fixture.NewSet()
	set.Add(fixture.Definition{
		Name:    "t1",
		Payload: map[string]any{"n": "{{random.int(1,5)}}"},
	})
	g := New("widgets", WithSet(set), WithTemplates(template.New()))

	got, err := g.FixtureByName("t1")
	if err != nil {
		t.Fatalf("FixtureByName() error: %v", err)
	}
	n, ok := got["n"].(int)
	if !ok {
		t.Fatalf("n = %T(%v), want int", got["n"], got["n"])
	}
	if n < 1 || n > 5 {
		t.Errorf("n = %d, want within [1,5]", n)
	}

	// The stored definition keeps its placeholder.
	def, _ := set.Get("t1")
	if def.Payload["n"] != "{{random.int(1,5)}}" {
		t.Errorf("stored payload = %v, want placeholder preserved", def.Payload["n"])
	}
}
