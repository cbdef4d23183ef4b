package fixture

import (
	"reflect"
	"testing"
)

func TestSet_AddPreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Add(defWithPayload("c", map[string]any{"v": 1}))
	s.Add(defWithPayload("a", map[string]any{"v": 2}))
	s.Add(defWithPayload("b", map[string]any{"v": 3}))

	if got := s.Names(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("Names() = %v, want insertion order", got)
	}
}

func TestSet_OverwriteKeepsPosition(t *testing.T) {
	s := NewSet()
	s.Add(defWithPayload("a", map[string]any{"v": 1}))
	s.Add(defWithPayload("b", map[string]any{"v": 2}))
	s.Add(defWithPayload("a", map[string]any{"v": 9}))

	if got := s.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want position kept on overwrite", got)
	}
	def, _ := s.Get("a")
	if def.Payload["v"] != 9 {
		t.Errorf("overwritten payload = %v, want v=9", def.Payload)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSet_GetMissing(t *testing.T) {
	s := NewSet()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get() on empty set reported ok")
	}
}

func TestSet_AddEmptyNameIgnored(t *testing.T) {
	s := NewSet()
	s.Add(Definition{})
	if s.Len() != 0 {
		t.Errorf("Len() = %d after adding empty name, want 0", s.Len())
	}
}

func TestSet_Merge(t *testing.T) {
	a := NewSet()
	a.Add(defWithPayload("one", map[string]any{"v": 1}))

	b := NewSet()
	b.Add(defWithPayload("two", map[string]any{"v": 2}))
	b.Add(defWithPayload("one", map[string]any{"v": 10}))

	a.Merge(b)

	if got := a.Names(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("Names() after merge = %v", got)
	}
	def, _ := a.Get("one")
	if def.Payload["v"] != 10 {
		t.Error("merge did not overwrite existing definition")
	}

	a.Merge(nil) // must not panic
}

func TestSet_Clone(t *testing.T) {
	s := NewSet()
	s.Add(defWithPayload("a", map[string]any{"v": 1}))

	c := s.Clone()
	c.Add(defWithPayload("b", map[string]any{"v": 2}))

	if s.Len() != 1 {
		t.Error("Clone() shares name slice with original")
	}
	if c.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", c.Len())
	}
}

func TestRegisterSet_MergedInOrder(t *testing.T) {
	RegisterSet("reg_test_domain", "first_fixtures", map[string]map[string]any{
		"beta":  {"data": map[string]any{"beta": map[string]any{"v": 1}}},
		"alpha": {"data": map[string]any{"alpha": map[string]any{"v": 2}}},
	})
	RegisterDefinitions("reg_test_domain", "second_fixtures",
		defWithPayload("zeta", map[string]any{"v": 3}),
	)

	merged := SetsFor("reg_test_domain")
	// Map-literal sets sort by name; ordered sets follow declaration.
	if got := merged.Names(); !reflect.DeepEqual(got, []string{"alpha", "beta", "zeta"}) {
		t.Errorf("merged Names() = %v", got)
	}
	if got := SetNamesFor("reg_test_domain"); !reflect.DeepEqual(got, []string{"first_fixtures", "second_fixtures"}) {
		t.Errorf("SetNamesFor() = %v", got)
	}
}

func TestSetsFor_UnknownDomainIsEmpty(t *testing.T) {
	merged := SetsFor("never_registered")
	if merged.Len() != 0 {
		t.Errorf("SetsFor(unknown).Len() = %d, want 0", merged.Len())
	}
}
