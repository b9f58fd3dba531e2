// Package agentsim provides a high-level façade over the core model and
// capability packages (containers, spaces, schedulers, movement & logging)
// enabling rapid construction of agent-based simulations. Most applications
// interact with this package by:
//  1. Creating a model via New() (optionally overriding the default
//     container, space, scheduler and random seed)
//  2. Adding agents (any type embedding one of the core agent bases)
//  3. Driving steps through runner.Runner, moving agents with the move
//     package primitives
//
// The façade delegates storage and scheduling to the capability packages
// while keeping setup ergonomics concise. All defaults are safe for local
// experimentation and testing; larger studies typically supply an explicit
// scheduler, a seeded random source and a structured logger.
package agentsim

import (
	"github.com/hupe1980/agentsim/container"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// ContainerKind selects the agent storage strategy of a model.
type ContainerKind int

const (
	// ContainerDict is the mapping container: arbitrary insertion and
	// removal, ids never reused. The default.
	ContainerDict ContainerKind = iota
	// ContainerVector is the append-only sequence container: contiguous
	// ids, no removal, cheapest iteration.
	ContainerVector
)

// Options configures a model created through New.
type Options struct {
	// Container selects the storage strategy. Defaults to ContainerDict.
	Container ContainerKind
	// Space is the optional topological structure agents live in.
	Space core.Space
	// Scheduler is the step scheduling policy. Defaults to container
	// iteration order.
	Scheduler core.Scheduler
	// AgentTypes lists one prototype per concrete agent type for schema
	// validation against the space.
	AgentTypes []core.Agent
	// Properties is an arbitrary user-owned blob attached to the model.
	Properties map[string]any
	// Seed seeds the model-scoped random source.
	Seed int64
	// Logger defaults to logging.NoOpLogger.
	Logger logging.Logger
	// Warn toggles advisory structural warnings. Enabled by default.
	Warn bool
}

// New creates a model with optional overrides. Any unset option falls back
// to a safe default.
func New(optFns ...func(o *Options)) (*core.Model, error) {
	opts := Options{
		Properties: map[string]any{},
		Logger:     logging.NoOpLogger{},
		Warn:       true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var c core.Container
	if opts.Container == ContainerVector {
		c = container.NewVector()
	} else {
		c = container.NewDict()
	}

	return core.NewModel(c, func(o *core.Options) {
		o.Space = opts.Space
		o.Scheduler = opts.Scheduler
		o.AgentTypes = opts.AgentTypes
		o.Properties = opts.Properties
		o.Seed = opts.Seed
		o.Logger = opts.Logger
		o.Warn = opts.Warn
	})
}
