package container

import (
	"errors"
	"testing"

	"github.com/hupe1980/agentsim/core"
)

func TestVector_AddContiguous(t *testing.T) {
	v := NewVector()

	for id := 1; id <= 3; id++ {
		before := v.Len()
		if err := v.Add(newTestAgent(id)); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
		if v.Len() != before+1 {
			t.Fatalf("count should increment by exactly 1, got %d", v.Len())
		}
	}

	if got := v.NextID(); got != 4 {
		t.Fatalf("expected next id 4, got %d", got)
	}

	a, ok := v.Get(2)
	if !ok || a.ID() != 2 {
		t.Fatalf("expected agent 2, got %v (present=%v)", a, ok)
	}
}

func TestVector_AddOutOfSequence(t *testing.T) {
	v := NewVector()

	err := v.Add(newTestAgent(2))
	if !errors.Is(err, core.ErrIDSequence) {
		t.Fatalf("expected ErrIDSequence, got %v", err)
	}
	if v.Len() != 0 {
		t.Errorf("failed add should not mutate container, len=%d", v.Len())
	}
}

func TestVector_RemoveUnsupported(t *testing.T) {
	v := NewVector()

	if err := v.Add(newTestAgent(1)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	err := v.Remove(1)
	if !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
	if v.Len() != 1 {
		t.Errorf("container should be unchanged after failed remove, len=%d", v.Len())
	}
}

func TestVector_IDs(t *testing.T) {
	v := NewVector()

	for id := 1; id <= 4; id++ {
		if err := v.Add(newTestAgent(id)); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}

	ids := v.IDs()
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("expected index order ids, got %v", ids)
		}
	}
}
