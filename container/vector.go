package container

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// Vector is the sequence container variant: a dense ordered list of agents
// with insertion only at the end. The agent at logical position k carries
// id k (1-based), so lookup is a slice index. Removal is unsupported; this
// variant trades removability for iteration and storage efficiency.
type Vector struct {
	agents []core.Agent
}

// NewVector constructs an empty sequence container.
func NewVector() *Vector {
	return &Vector{}
}

// Add appends the agent, failing with core.ErrIDSequence unless its id is
// exactly count + 1. The container is unchanged on error.
func (v *Vector) Add(a core.Agent) error {
	want := len(v.agents) + 1
	if a.ID() != want {
		return fmt.Errorf("%w: got id %d, want %d", core.ErrIDSequence, a.ID(), want)
	}

	v.agents = append(v.agents, a)

	return nil
}

// Remove always fails with core.ErrUnsupportedOperation; the sequence
// invariant (position k holds id k) cannot survive deletions.
func (v *Vector) Remove(id int) error {
	return fmt.Errorf("%w: sequence container cannot remove id %d", core.ErrUnsupportedOperation, id)
}

// Get returns the agent with the given id, if present.
func (v *Vector) Get(id int) (core.Agent, bool) {
	if id < 1 || id > len(v.agents) {
		return nil, false
	}
	return v.agents[id-1], true
}

// IDs returns the ids 1..count in index order.
func (v *Vector) IDs() []int {
	ids := make([]int, len(v.agents))
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// Len returns the number of stored agents.
func (v *Vector) Len() int { return len(v.agents) }

// NextID returns count + 1.
func (v *Vector) NextID() int { return len(v.agents) + 1 }
