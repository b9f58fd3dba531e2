// Package core provides the foundational domain types, interfaces and the
// Model container used by AgentSim. It defines the core abstractions for:
//
//   - Agents (uniquely identified, mutable simulation entities, optionally
//     positioned in a discrete or continuous space)
//   - Containers (pluggable storage strategies holding a Model's agents)
//   - Spaces (topological capabilities constraining legal positions and
//     occupancy queries)
//   - Schedulers (policies producing the id sequence processed each step)
//
// The package intentionally keeps implementation concerns (concrete
// containers, spaces, scheduling policies, movement primitives) out of
// scope, exposing small interfaces so backends can be swapped without
// changing calling code. All exported identifiers include concise
// documentation to aid discoverability and external consumption.
package core
