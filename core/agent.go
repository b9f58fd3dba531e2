package core

// GridPos is a discrete position in a grid or graph space. Coordinates are
// 1-based: a grid of size (W, H) has valid cells (1..W, 1..H).
type GridPos []int

// Equal reports whether two grid positions have identical coordinates.
func (p GridPos) Equal(q GridPos) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the position.
func (p GridPos) Clone() GridPos {
	c := make(GridPos, len(p))
	copy(c, p)
	return c
}

// Point is a position (or velocity) in a continuous space. Each coordinate
// lives in [0, extent) along its dimension.
type Point []float64

// Clone returns an independent copy of the point.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Agent is the minimal contract every simulation entity must implement.
//
// An agent's id is a unique positive integer, assigned once when the agent
// is added to a Model and stable for the agent's lifetime. All other state
// is user-defined and opaque to the engine; agents are mutated in place and
// never copied by the core, so implementations should use pointer receivers.
type Agent interface {
	ID() int
	SetID(id int)
}

// GridAgent is an Agent positioned in a discrete grid or graph space.
type GridAgent interface {
	Agent
	Pos() GridPos
	SetPos(p GridPos)
}

// ContinuousAgent is an Agent positioned in a continuous space.
type ContinuousAgent interface {
	Agent
	Pos() Point
	SetPos(p Point)
}

// Kinetic is a ContinuousAgent that additionally carries a velocity vector,
// enabling reorientation-based random walks.
type Kinetic interface {
	ContinuousAgent
	Vel() Point
	SetVel(v Point)
}

// AgentBase is an embeddable identity implementation satisfying Agent.
// Concrete agent types embed it (or one of the spatial bases) and add their
// own fields:
//
//	type Walker struct {
//	    core.GridAgentBase
//	    Energy float64
//	}
type AgentBase struct {
	id int
}

// ID returns the agent's unique identifier.
func (b *AgentBase) ID() int { return b.id }

// SetID assigns the agent's identifier. Called by the Model on add; user
// code only needs it when constructing agents with explicit ids.
func (b *AgentBase) SetID(id int) { b.id = id }

// GridAgentBase is an embeddable base for agents living in grid spaces.
type GridAgentBase struct {
	AgentBase
	pos GridPos
}

// Pos returns the agent's current cell.
func (b *GridAgentBase) Pos() GridPos { return b.pos }

// SetPos moves the agent to the given cell. Position bookkeeping in the
// space index is handled by the Model; user code should move agents through
// Model.MoveGridAgent or the move package.
func (b *GridAgentBase) SetPos(p GridPos) { b.pos = p }

// ContinuousAgentBase is an embeddable base for agents living in continuous
// spaces, carrying position and velocity.
type ContinuousAgentBase struct {
	AgentBase
	pos Point
	vel Point
}

// Pos returns the agent's current position.
func (b *ContinuousAgentBase) Pos() Point { return b.pos }

// SetPos moves the agent to the given position.
func (b *ContinuousAgentBase) SetPos(p Point) { b.pos = p }

// Vel returns the agent's current velocity vector.
func (b *ContinuousAgentBase) Vel() Point { return b.vel }

// SetVel replaces the agent's velocity vector.
func (b *ContinuousAgentBase) SetVel(v Point) { b.vel = v }
