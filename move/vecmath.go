package move

import (
	"math"

	"github.com/hupe1980/agentsim/core"
)

func addPoints(a, b core.Point) core.Point {
	out := make(core.Point, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func scalePoint(p core.Point, s float64) core.Point {
	out := make(core.Point, len(p))
	for i := range p {
		out[i] = p[i] * s
	}
	return out
}

func dot(a, b core.Point) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(p core.Point) float64 {
	return math.Sqrt(dot(p, p))
}

func unit(p core.Point) core.Point {
	return scalePoint(p, 1/norm(p))
}

func cross(a, b core.Point) core.Point {
	return core.Point{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func rotate2D(v core.Point, theta float64) core.Point {
	sin, cos := math.Sincos(theta)
	return core.Point{
		v[0]*cos - v[1]*sin,
		v[0]*sin + v[1]*cos,
	}
}

// rotateAbout rotates v around the unit axis k by theta (Rodrigues
// formula).
func rotateAbout(v, k core.Point, theta float64) core.Point {
	sin, cos := math.Sincos(theta)
	term1 := scalePoint(v, cos)
	term2 := scalePoint(cross(k, v), sin)
	term3 := scalePoint(k, dot(k, v)*(1-cos))
	return addPoints(addPoints(term1, term2), term3)
}

// normalTo returns a unit vector normal to v. The choice of normal is
// arbitrary; the subsequent azimuthal rotation sweeps the full cone.
func normalTo(v core.Point) core.Point {
	ex := core.Point{1, 0, 0}
	n := cross(v, ex)
	if norm(n) < 1e-12 {
		n = cross(v, core.Point{0, 1, 0})
	}
	return unit(n)
}

func addOffset(p core.GridPos, off core.GridPos) core.GridPos {
	out := make(core.GridPos, len(p))
	for i := range p {
		out[i] = p[i] + off[i]
	}
	return out
}
