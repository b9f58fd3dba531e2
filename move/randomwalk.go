package move

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// RandomWalk performs a random walk of exact metric radius r on the
// model's grid space.
//
// On shared-occupancy grids it draws one uniform offset among all offsets
// at radius r and walks along it, honoring the if-empty option (on by
// default). On single-occupancy grids it instead computes all offsets at
// radius r, filters to those whose target cell is currently free, and
// picks uniformly among the available ones; with no free target the agent
// stays put.
//
// Offset sets are only defined under the Chebyshev and Manhattan metrics;
// Euclidean fails with core.ErrUnsupportedMetric.
func RandomWalk(a core.GridAgent, m *core.Model, r int, optFns ...func(o *WalkOptions)) error {
	grid, ok := m.Grid()
	if !ok {
		return fmt.Errorf("%w: model has no grid space", core.ErrInvalidArgument)
	}

	offsets, err := grid.OffsetsAtRadius(r)
	if err != nil {
		return err
	}
	if len(offsets) == 0 {
		return nil
	}

	if grid.SingleOccupancy() {
		// Wraparound aliases distinct offsets onto one cell when a periodic
		// dimension is no larger than 2r; sampling must stay uniform over
		// distinct cells, not offsets.
		size := grid.Size()
		seen := make(map[int]struct{}, len(offsets))
		var available []core.GridPos
		for _, off := range offsets {
			target := grid.Normalize(addOffset(a.Pos(), off))
			key := cellKey(target, size)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if !occupiedByOther(grid, target, a.ID()) {
				available = append(available, target)
			}
		}
		if len(available) == 0 {
			return nil
		}
		return m.MoveGridAgent(a, available[m.Rand().Intn(len(available))])
	}

	return Walk(a, offsets[m.Rand().Intn(len(offsets))], m, optFns...)
}

// RandomWalkOptions holds configuration overrides for continuous random
// walks.
type RandomWalkOptions struct {
	// Distance is the walk length. When nil the agent's current speed is
	// preserved; an explicit non-positive value fails with
	// core.ErrInvalidArgument.
	Distance *float64

	// Polar is the distribution of the reorientation (polar) angle.
	// Defaults to uniform over the full circle.
	Polar Sampler

	// Azimuthal is the distribution of the azimuthal angle used by the 3D
	// second-stage rotation. Defaults to arccos-transformed uniform,
	// yielding spherically uniform directions.
	Azimuthal Sampler
}

// WithDistance sets an explicit walk distance.
func WithDistance(r float64) func(o *RandomWalkOptions) {
	return func(o *RandomWalkOptions) { o.Distance = &r }
}

// RandomWalkContinuous reorients the agent's velocity by sampled angles,
// rescales it to the requested distance (or the current speed when no
// distance is given), stores the new velocity and walks by it.
//
// In 2D the velocity is rotated by one polar draw. In 3D the velocity is
// first rotated about an arbitrary vector normal to it by the polar draw,
// then about the original velocity by the azimuthal draw; the angle
// between the resulting direction and the original velocity therefore
// always equals the polar draw, regardless of the azimuthal one.
//
// A zero-magnitude velocity makes the rescale ill-defined and fails with
// core.ErrInvalidArgument, as does a velocity whose dimensionality differs
// from the space's.
func RandomWalkContinuous(a core.Kinetic, m *core.Model, optFns ...func(o *RandomWalkOptions)) error {
	opts := RandomWalkOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	sp, ok := m.Continuous()
	if !ok {
		return fmt.Errorf("%w: model has no continuous space", core.ErrInvalidArgument)
	}
	if dims := sp.Dims(); dims != 2 && dims != 3 {
		return fmt.Errorf("%w: velocity reorientation requires 2 or 3 dimensions, space has %d", core.ErrInvalidArgument, dims)
	}

	if opts.Distance != nil && *opts.Distance <= 0 {
		return fmt.Errorf("%w: walk distance %v must be positive", core.ErrInvalidArgument, *opts.Distance)
	}
	if opts.Polar == nil {
		opts.Polar = UniformCircle()
	}
	if opts.Azimuthal == nil {
		opts.Azimuthal = Arccos()
	}

	vel := a.Vel()
	if len(vel) != sp.Dims() {
		return fmt.Errorf("%w: velocity has %d dimensions, space has %d", core.ErrInvalidArgument, len(vel), sp.Dims())
	}
	speed := norm(vel)
	if speed == 0 {
		return fmt.Errorf("%w: cannot reorient a zero velocity", core.ErrInvalidArgument)
	}

	polar := opts.Polar(m.Rand())

	var direction core.Point
	if sp.Dims() == 2 {
		direction = rotate2D(vel, polar)
	} else {
		tilted := rotateAbout(vel, normalTo(vel), polar)
		direction = rotateAbout(tilted, unit(vel), opts.Azimuthal(m.Rand()))
	}

	distance := speed
	if opts.Distance != nil {
		distance = *opts.Distance
	}

	newVel := scalePoint(unit(direction), distance)
	a.SetVel(newVel)

	return WalkContinuous(a, newVel, m)
}
