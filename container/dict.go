package container

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// Dict is the mapping container variant: agent id to agent, with arbitrary
// insertion and removal. Iteration order is insertion order, not guaranteed
// stable across removals. The running max id only increases, so NextID
// never hands out an id that has ever been used, even after removals.
type Dict struct {
	agents map[int]core.Agent
	order  []int
	index  map[int]int // id -> position in order
	maxID  int
}

// NewDict constructs an empty mapping container.
func NewDict() *Dict {
	return &Dict{
		agents: make(map[int]core.Agent),
		index:  make(map[int]int),
	}
}

// Add inserts the agent, failing with core.ErrDuplicateID when its id is
// already present. The container is unchanged on error.
func (d *Dict) Add(a core.Agent) error {
	id := a.ID()
	if _, exists := d.agents[id]; exists {
		return fmt.Errorf("%w: id %d", core.ErrDuplicateID, id)
	}

	d.agents[id] = a
	d.index[id] = len(d.order)
	d.order = append(d.order, id)
	if id > d.maxID {
		d.maxID = id
	}

	return nil
}

// Remove deletes the agent with the given id. Removing an absent id is a
// no-op. Removal swaps the last iteration slot into the vacated one, which
// is why iteration order is only insertion order until the first removal.
func (d *Dict) Remove(id int) error {
	pos, ok := d.index[id]
	if !ok {
		return nil
	}

	last := len(d.order) - 1
	moved := d.order[last]
	d.order[pos] = moved
	d.index[moved] = pos
	d.order = d.order[:last]

	delete(d.agents, id)
	delete(d.index, id)

	return nil
}

// Get returns the agent with the given id, if present.
func (d *Dict) Get(id int) (core.Agent, bool) {
	a, ok := d.agents[id]
	return a, ok
}

// IDs returns a copy of the current ids in native iteration order.
func (d *Dict) IDs() []int {
	ids := make([]int, len(d.order))
	copy(ids, d.order)
	return ids
}

// Len returns the number of stored agents.
func (d *Dict) Len() int { return len(d.agents) }

// NextID returns runningMax + 1. Monotonically non-decreasing: it only
// grows when an added agent's id exceeds the previous maximum, and never
// shrinks on removal.
func (d *Dict) NextID() int { return d.maxID + 1 }
