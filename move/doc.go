// Package move implements the spatial movement layer: plain walks along a
// displacement, and random walks with space-aware direction sampling.
//
// Grid random walks draw a uniform offset at exact metric radius r
// (single-occupancy grids pick among the currently free target cells only).
// Continuous random walks reorient the agent's velocity vector by sampled
// angles (a polar draw in 2D, polar plus azimuthal two-stage rotation in
// 3D) and displace the agent by the new velocity.
//
// Angle distributions are plain Sampler functions over the model's random
// source, so any external distribution library can be plugged in without a
// dependency here.
package move
