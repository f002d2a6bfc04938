package types_test

import (
	"testing"

	"github.com/arthur-debert/sortlist/types"
)

func TestRefConstruction(t *testing.T) {
	id := types.IDRef("item-3")
	if id.ByIndex() {
		t.Error("id reference should not report ByIndex")
	}
	if id.IsZero() {
		t.Error("id reference should not be zero")
	}

	idx := types.IndexRef(0)
	if !idx.ByIndex() {
		t.Error("index reference should report ByIndex")
	}
	if idx.IsZero() {
		t.Error("index 0 is a valid reference, not a zero one")
	}

	var zero types.Ref
	if !zero.IsZero() {
		t.Error("the zero Ref must report IsZero")
	}
}

func TestReferenceModeNames(t *testing.T) {
	cases := []struct {
		mode types.ReferenceMode
		name string
	}{
		{types.ByID, "by-id"},
		{types.ByIndex, "by-index"},
	}
	for _, tc := range cases {
		if got := tc.mode.String(); got != tc.name {
			t.Errorf("expected %q, got %q", tc.name, got)
		}
		parsed, ok := types.ParseReferenceMode(tc.name)
		if !ok || parsed != tc.mode {
			t.Errorf("round trip failed for %q: got %v, %v", tc.name, parsed, ok)
		}
	}

	if _, ok := types.ParseReferenceMode("by-feeling"); ok {
		t.Error("expected unknown mode name to be rejected")
	}
}
