package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/seedctl/seedctl/pkg/export"
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/generator"
	"github.com/seedctl/seedctl/pkg/logging"
)

func namedGenerator(t *testing.T, domain string, names ...string) generator.Named {
	t.Helper()
	set := fixture.NewSet()
	for _, name := range names {
		set.Add(fixture.Definition{Name: name, Payload: map[string]any{"value": name}})
	}
	g := generator.New(domain, generator.WithSet(set), generator.WithLogger(logging.Nop()))
	return generator.Named{Domain: domain, Generator: g}
}

// captureStdout redirects stdout for the duration of fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, _ := io.ReadAll(r)
	return string(data)
}

func TestSelectGenerator(t *testing.T) {
	named := []generator.Named{
		namedGenerator(t, "users", "alice"),
		namedGenerator(t, "widgets", "gear"),
	}

	all, err := selectGenerator(named, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("empty domain should keep all generators, got %d", len(all))
	}

	one, err := selectGenerator(named, "widgets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(one) != 1 || one[0].Domain != "widgets" {
		t.Errorf("expected only widgets, got %+v", one)
	}

	_, err = selectGenerator(named, "missing")
	if err == nil {
		t.Fatal("expected error for unknown generator")
	}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Errorf("error should name the generator: %v", err)
	}
}

func TestMergedFixturesSingle(t *testing.T) {
	named := []generator.Named{namedGenerator(t, "users", "alice", "bob")}

	// Progress lines go to stderr; silence them for the test run.
	oldStderr := os.Stderr
	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	os.Stderr = devnull
	defer func() { os.Stderr = oldStderr }()

	fixtures, err := mergedFixtures(named)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	for _, fx := range fixtures {
		if _, tagged := fx["_generator"]; tagged {
			t.Errorf("single generator output must not be tagged: %v", fx)
		}
	}
}

func TestMergedFixturesTagged(t *testing.T) {
	named := []generator.Named{
		namedGenerator(t, "users", "alice"),
		namedGenerator(t, "widgets", "gear", "bolt"),
	}

	oldStderr := os.Stderr
	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	os.Stderr = devnull
	defer func() { os.Stderr = oldStderr }()

	fixtures, err := mergedFixtures(named)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(fixtures))
	}
	tags := map[string]int{}
	for _, fx := range fixtures {
		tag, _ := fx["_generator"].(string)
		if tag == "" {
			t.Errorf("merged fixture missing _generator tag: %v", fx)
		}
		tags[tag]++
	}
	if tags["users"] != 1 || tags["widgets"] != 2 {
		t.Errorf("unexpected tag distribution: %v", tags)
	}
}

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		domain string
		format export.Format
		want   string
	}{
		{"users", export.FormatJSON, "users_fixtures.json"},
		{"users", export.FormatYAML, "users_fixtures.yaml"},
		{"widgets", export.FormatGo, "widgets_fixtures.go"},
	}
	for _, tt := range tests {
		if got := splitFilename(tt.domain, tt.format); got != tt.want {
			t.Errorf("splitFilename(%s, %s) = %s, want %s", tt.domain, tt.format, got, tt.want)
		}
	}
}

func TestAvailableRows(t *testing.T) {
	named := []generator.Named{
		namedGenerator(t, "users", "alice", "bob"),
		namedGenerator(t, "widgets", "gear"),
	}

	rows := availableRows(named)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Generator != "users" || rows[0].Fixture != "alice" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Description == "" {
		t.Error("description should fall back to a default")
	}
	if rows[2].Generator != "widgets" || rows[2].Fixture != "gear" {
		t.Errorf("unexpected last row: %+v", rows[2])
	}
}

func TestPrintResultJSONContract(t *testing.T) {
	oldJSON := jsonOutput
	jsonOutput = true
	defer func() { jsonOutput = oldJSON }()

	textCalled := false
	out := captureStdout(t, func() {
		if err := printResult(map[string]any{"status": "ok"}, func() { textCalled = true }); err != nil {
			t.Errorf("printResult: %v", err)
		}
	})

	if textCalled {
		t.Error("textFn must not run in JSON mode")
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("stdout is not pure JSON: %v\n%s", err, out)
	}
	if decoded["status"] != "ok" {
		t.Errorf("unexpected payload: %v", decoded)
	}
}

func TestPrintResultText(t *testing.T) {
	oldJSON := jsonOutput
	jsonOutput = false
	defer func() { jsonOutput = oldJSON }()

	textCalled := false
	if err := printResult(nil, func() { textCalled = true }); err != nil {
		t.Errorf("printResult: %v", err)
	}
	if !textCalled {
		t.Error("textFn should run in text mode")
	}
}

func TestBuildVersion(t *testing.T) {
	out := buildVersion()
	if out.Go == "" || out.OS == "" || out.Arch == "" {
		t.Errorf("runtime fields must always be set: %+v", out)
	}
	if out.Version == "" {
		t.Error("version should never be empty, even without ldflags")
	}
}

func TestStatusfSuppressedInJSONMode(t *testing.T) {
	oldJSON := jsonOutput
	jsonOutput = true
	defer func() { jsonOutput = oldJSON }()

	out := captureStdout(t, func() {
		statusf("should not appear %d", 42)
	})
	if out != "" {
		t.Errorf("statusf leaked into JSON mode stdout: %q", out)
	}
}
