package move

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// WalkOptions holds configuration overrides for grid walks.
type WalkOptions struct {
	// IfEmpty only moves the agent when the target cell is unoccupied.
	// Enabled by default; disable it explicitly for spaces where multiple
	// agents legitimately share a cell.
	IfEmpty bool
}

// Walk moves the agent from its current cell to normalize(current +
// direction) on the model's grid space. When the if-empty option is on
// (the default) and the target cell is occupied by another agent, the
// agent does not move; that is a well-defined no-op, not an error.
func Walk(a core.GridAgent, dir core.GridPos, m *core.Model, optFns ...func(o *WalkOptions)) error {
	opts := WalkOptions{IfEmpty: true}

	for _, fn := range optFns {
		fn(&opts)
	}

	grid, ok := m.Grid()
	if !ok {
		return fmt.Errorf("%w: model has no grid space", core.ErrInvalidArgument)
	}
	if len(dir) != grid.Dims() {
		return fmt.Errorf("%w: direction dimensionality %d, space has %d", core.ErrInvalidArgument, len(dir), grid.Dims())
	}

	target := grid.Normalize(addOffset(a.Pos(), dir))

	if opts.IfEmpty && occupiedByOther(grid, target, a.ID()) {
		return nil
	}

	return m.MoveGridAgent(a, target)
}

// WalkContinuous moves the agent to normalize(current + displacement) on
// the model's continuous space. Occupancy is ignored and the agent's
// velocity plays no role in the displacement itself.
func WalkContinuous(a core.ContinuousAgent, displacement core.Point, m *core.Model) error {
	sp, ok := m.Continuous()
	if !ok {
		return fmt.Errorf("%w: model has no continuous space", core.ErrInvalidArgument)
	}
	if len(displacement) != sp.Dims() {
		return fmt.Errorf("%w: displacement dimensionality %d, space has %d", core.ErrInvalidArgument, len(displacement), sp.Dims())
	}

	return m.MoveContinuousAgent(a, addPoints(a.Pos(), displacement))
}

// cellKey flattens a normalized cell into a single mixed-radix index.
func cellKey(p core.GridPos, size core.GridPos) int {
	key := 0
	for d, c := range p {
		key = key*size[d] + (c - 1)
	}
	return key
}

func occupiedByOther(grid core.GridSpace, p core.GridPos, selfID int) bool {
	for _, id := range grid.IDsAt(p) {
		if id != selfID {
			return true
		}
	}
	return false
}
