package space

import (
	"math"

	"github.com/hupe1980/agentsim/core"
)

// ContinuousOptions holds configuration overrides passed to NewContinuous.
type ContinuousOptions struct {
	// Periodic selects wraparound topology. Enabled by default.
	Periodic bool
}

// Continuous is a rectangular continuous space implementing
// core.ContinuousSpace. Positions live in [0, extent) along every
// dimension.
type Continuous struct {
	extent   core.Point
	periodic bool
}

// NewContinuous constructs a continuous space with the given extent.
func NewContinuous(extent core.Point, optFns ...func(o *ContinuousOptions)) *Continuous {
	opts := ContinuousOptions{Periodic: true}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Continuous{extent: extent.Clone(), periodic: opts.Periodic}
}

// Dims returns the space's dimensionality.
func (c *Continuous) Dims() int { return len(c.extent) }

// Periodic reports whether positions wrap at the boundary.
func (c *Continuous) Periodic() bool { return c.periodic }

// Extent returns a copy of the per-dimension lengths.
func (c *Continuous) Extent() core.Point { return c.extent.Clone() }

// Normalize maps an arbitrary position into the valid domain. Periodic
// spaces wrap component-wise by the extent; bounded spaces clamp to
// [0, extent), where values at or above the extent land on the largest
// representable float strictly below it.
func (c *Continuous) Normalize(p core.Point) core.Point {
	n := make(core.Point, len(p))
	for d := range p {
		ext := c.extent[d]
		if c.periodic {
			v := math.Mod(p[d], ext)
			if v < 0 {
				v += ext
			}
			n[d] = v
		} else {
			switch {
			case p[d] < 0:
				n[d] = 0
			case p[d] >= ext:
				n[d] = math.Nextafter(ext, 0)
			default:
				n[d] = p[d]
			}
		}
	}
	return n
}
