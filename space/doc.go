// Package space houses the concrete implementations of the core space
// capabilities: a discrete Grid (periodic or bounded, Chebyshev or
// Manhattan metric, shared or single occupancy) and a Continuous space
// (periodic or bounded extent).
//
// The engine consumes spaces exclusively through the core.GridSpace and
// core.ContinuousSpace interfaces; alternative topologies (graphs, custom
// lattices) can be added here without changing any calling code.
package space
