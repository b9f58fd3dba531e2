package space

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// GridOptions holds configuration overrides passed to NewGrid.
type GridOptions struct {
	// Periodic selects wraparound topology. Enabled by default.
	Periodic bool
	// Metric is the distance function for offset queries. Defaults to
	// Chebyshev.
	Metric core.Metric
	// SingleOccupancy restricts every cell to at most one agent. Random
	// walks on single-occupancy grids pick uniformly among the unoccupied
	// target cells only.
	SingleOccupancy bool
}

// Grid is a discrete orthogonal lattice implementing core.GridSpace. Cells
// are 1-based along every dimension. It maintains the cell occupancy index
// the model updates on add, remove and move.
type Grid struct {
	size     core.GridPos
	strides  []int
	periodic bool
	metric   core.Metric
	single   bool
	cells    map[int][]int // flattened cell index -> occupant ids
	offsets  map[int][]core.GridPos
}

// NewGrid constructs a grid with the given per-dimension sizes.
func NewGrid(size core.GridPos, optFns ...func(o *GridOptions)) *Grid {
	opts := GridOptions{Periodic: true, Metric: core.Chebyshev}

	for _, fn := range optFns {
		fn(&opts)
	}

	strides := make([]int, len(size))
	stride := 1
	for d := range size {
		strides[d] = stride
		stride *= size[d]
	}

	return &Grid{
		size:     size.Clone(),
		strides:  strides,
		periodic: opts.Periodic,
		metric:   opts.Metric,
		single:   opts.SingleOccupancy,
		cells:    make(map[int][]int),
		offsets:  make(map[int][]core.GridPos),
	}
}

// Dims returns the grid's dimensionality.
func (g *Grid) Dims() int { return len(g.size) }

// Periodic reports whether positions wrap at the boundary.
func (g *Grid) Periodic() bool { return g.periodic }

// Size returns a copy of the per-dimension sizes.
func (g *Grid) Size() core.GridPos { return g.size.Clone() }

// Metric returns the configured distance metric.
func (g *Grid) Metric() core.Metric { return g.metric }

// SingleOccupancy reports whether cells hold at most one agent.
func (g *Grid) SingleOccupancy() bool { return g.single }

// Normalize maps an arbitrary position onto a legal cell. Periodic grids
// wrap with 1-based modulo arithmetic; bounded grids clamp component-wise
// to the inclusive range [1, size].
func (g *Grid) Normalize(p core.GridPos) core.GridPos {
	n := make(core.GridPos, len(p))
	for d := range p {
		s := g.size[d]
		if g.periodic {
			n[d] = ((p[d]-1)%s+s)%s + 1
		} else {
			switch {
			case p[d] < 1:
				n[d] = 1
			case p[d] > s:
				n[d] = s
			default:
				n[d] = p[d]
			}
		}
	}
	return n
}

// OffsetsAtRadius returns every displacement vector at exact metric
// distance r from the origin. Results are cached per radius; the returned
// slice is shared and must not be mutated.
func (g *Grid) OffsetsAtRadius(r int) ([]core.GridPos, error) {
	if g.metric == core.Euclidean {
		return nil, fmt.Errorf("%w: euclidean offsets on an integer lattice", core.ErrUnsupportedMetric)
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: negative radius %d", core.ErrInvalidArgument, r)
	}

	if cached, ok := g.offsets[r]; ok {
		return cached, nil
	}

	var result []core.GridPos
	offset := make(core.GridPos, g.Dims())
	g.enumerate(offset, 0, r, &result)
	g.offsets[r] = result

	return result, nil
}

// enumerate walks [-r, r] per dimension and keeps offsets whose metric
// distance equals r exactly.
func (g *Grid) enumerate(offset core.GridPos, d, r int, out *[]core.GridPos) {
	if d == len(offset) {
		if g.distance(offset) == r {
			*out = append(*out, offset.Clone())
		}
		return
	}
	for v := -r; v <= r; v++ {
		offset[d] = v
		g.enumerate(offset, d+1, r, out)
	}
}

func (g *Grid) distance(offset core.GridPos) int {
	dist := 0
	for _, v := range offset {
		if v < 0 {
			v = -v
		}
		if g.metric == core.Chebyshev {
			if v > dist {
				dist = v
			}
		} else {
			dist += v
		}
	}
	return dist
}

// IDsAt returns a copy of the occupant ids of the given cell.
func (g *Grid) IDsAt(p core.GridPos) []int {
	occ := g.cells[g.flatten(p)]
	ids := make([]int, len(occ))
	copy(ids, occ)
	return ids
}

// IDAt returns the first occupant of the cell, if any.
func (g *Grid) IDAt(p core.GridPos) (int, bool) {
	occ := g.cells[g.flatten(p)]
	if len(occ) == 0 {
		return 0, false
	}
	return occ[0], true
}

// Place registers an agent id at a cell.
func (g *Grid) Place(id int, p core.GridPos) {
	key := g.flatten(p)
	g.cells[key] = append(g.cells[key], id)
}

// Displace removes an agent id from a cell.
func (g *Grid) Displace(id int, p core.GridPos) {
	key := g.flatten(p)
	occ := g.cells[key]
	for i, occupant := range occ {
		if occupant == id {
			occ[i] = occ[len(occ)-1]
			g.cells[key] = occ[:len(occ)-1]
			break
		}
	}
	if len(g.cells[key]) == 0 {
		delete(g.cells, key)
	}
}

// Move transfers an agent id between cells.
func (g *Grid) Move(id int, from, to core.GridPos) {
	if from.Equal(to) {
		return
	}
	g.Displace(id, from)
	g.Place(id, to)
}

func (g *Grid) flatten(p core.GridPos) int {
	key := 0
	for d := range p {
		key += (p[d] - 1) * g.strides[d]
	}
	return key
}
