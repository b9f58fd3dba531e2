package core

// Metric selects the distance function of a discrete grid space.
type Metric int

const (
	// Chebyshev distance: max over per-dimension absolute differences.
	// Cells at radius 1 include diagonals (Moore neighborhood).
	Chebyshev Metric = iota
	// Manhattan distance: sum of per-dimension absolute differences
	// (von Neumann neighborhood at radius 1).
	Manhattan
	// Euclidean distance. Well-defined for measuring, but admits no
	// fixed-radius offset set on an integer lattice; offset queries under
	// this metric fail with ErrUnsupportedMetric.
	Euclidean
)

// String returns the metric's name.
func (m Metric) String() string {
	switch m {
	case Chebyshev:
		return "chebyshev"
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return "unknown"
	}
}

// Space is the minimal capability shared by all space kinds. The concrete
// implementations live in the space package; the core consumes them purely
// through these interfaces.
type Space interface {
	// Dims returns the dimensionality of the space.
	Dims() int
	// Periodic reports whether positions wrap around at the boundary.
	Periodic() bool
}

// GridSpace is the capability a discrete grid (or graph) space exposes to
// the engine: topology, occupancy bookkeeping and fixed-radius offset sets.
type GridSpace interface {
	Space

	// Size returns the extent of each dimension. Valid coordinates along
	// dimension d are 1..Size()[d].
	Size() GridPos

	// Metric returns the configured distance metric.
	Metric() Metric

	// SingleOccupancy reports whether at most one agent may occupy a cell.
	SingleOccupancy() bool

	// Normalize maps an arbitrary position onto a legal cell: modulo
	// wraparound for periodic spaces, clamping to [1, size] otherwise.
	Normalize(p GridPos) GridPos

	// OffsetsAtRadius returns all integer displacement vectors whose metric
	// distance from the origin equals r. The returned slice is shared and
	// must not be mutated. Fails with ErrUnsupportedMetric for Euclidean
	// and ErrInvalidArgument for negative r.
	OffsetsAtRadius(r int) ([]GridPos, error)

	// IDsAt returns the ids of all agents occupying the given cell.
	IDsAt(p GridPos) []int

	// IDAt returns the single occupant of the cell, if any. Intended for
	// single-occupancy spaces; on shared-occupancy spaces it returns an
	// arbitrary occupant.
	IDAt(p GridPos) (int, bool)

	// Place registers an agent id at a cell. Called by the Model on add.
	Place(id int, p GridPos)

	// Displace removes an agent id from a cell. Called by the Model on
	// agent removal.
	Displace(id int, p GridPos)

	// Move transfers an agent id between cells.
	Move(id int, from, to GridPos)
}

// ContinuousSpace is the capability a continuous space exposes to the
// engine. Neighbor search internals are out of scope here; movement only
// needs extent and normalization.
type ContinuousSpace interface {
	Space

	// Extent returns the length of each dimension. Valid coordinates along
	// dimension d lie in [0, Extent()[d]).
	Extent() Point

	// Normalize maps an arbitrary position into the valid domain:
	// component-wise modulo for periodic spaces, clamping to
	// [0, extent) otherwise (the upper bound is exclusive; clamped values
	// land on the largest representable float below the extent).
	Normalize(p Point) Point
}
