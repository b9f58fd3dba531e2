package container

import (
	"errors"
	"testing"

	"github.com/hupe1980/agentsim/core"
)

type testAgent struct {
	core.AgentBase
}

func newTestAgent(id int) *testAgent {
	a := &testAgent{}
	a.SetID(id)
	return a
}

func TestDict_AddAndGet(t *testing.T) {
	d := NewDict()

	if err := d.Add(newTestAgent(1)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := d.Add(newTestAgent(5)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("expected 2 agents, got %d", d.Len())
	}
	if _, ok := d.Get(5); !ok {
		t.Error("expected agent 5 to be present")
	}
	if _, ok := d.Get(2); ok {
		t.Error("did not expect agent 2")
	}
}

func TestDict_DuplicateID(t *testing.T) {
	d := NewDict()

	if err := d.Add(newTestAgent(3)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	err := d.Add(newTestAgent(3))
	if !errors.Is(err, core.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("failed add should not mutate container, len=%d", d.Len())
	}
}

func TestDict_NextIDMonotonic(t *testing.T) {
	d := NewDict()

	for _, id := range []int{1, 2, 7} {
		if err := d.Add(newTestAgent(id)); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}
	if got := d.NextID(); got != 8 {
		t.Fatalf("expected next id 8, got %d", got)
	}

	// Removal never recycles ids.
	if err := d.Remove(7); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if got := d.NextID(); got != 8 {
		t.Fatalf("next id must not decrease after removal, got %d", got)
	}

	// Adding a lower id does not move the counter backwards either.
	if err := d.Add(newTestAgent(3)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if got := d.NextID(); got != 8 {
		t.Fatalf("expected next id 8, got %d", got)
	}
}

func TestDict_RemoveAbsentIsNoOp(t *testing.T) {
	d := NewDict()

	if err := d.Add(newTestAgent(1)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := d.Remove(42); err != nil {
		t.Fatalf("removing an absent id should be a no-op, got %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 agent, got %d", d.Len())
	}
}

func TestDict_IterationOrder(t *testing.T) {
	d := NewDict()

	for _, id := range []int{4, 1, 9} {
		if err := d.Add(newTestAgent(id)); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}

	ids := d.IDs()
	want := []int{4, 1, 9}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected insertion order %v, got %v", want, ids)
		}
	}

	// Returned slice is a copy.
	ids[0] = 99
	if d.IDs()[0] != 4 {
		t.Error("IDs should return a copy")
	}
}
