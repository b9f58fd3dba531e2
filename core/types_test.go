package core_test

import (
	"testing"

	"github.com/hupe1980/agentsim/core"
)

func TestTypeName_IndirectsPointers(t *testing.T) {
	if got := core.TypeName(&walker{}); got != "walker" {
		t.Fatalf("expected walker, got %s", got)
	}
}

func TestCanonicalTypes_SortedAndDeduplicated(t *testing.T) {
	got := core.CanonicalTypes(&walker{}, &floater{}, &walker{})
	want := []string{"floater", "walker"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
