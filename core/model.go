package core

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/logging"
)

// Options holds configuration overrides passed to NewModel.
type Options struct {
	// Space is the optional topological structure agents live in. Set once
	// at construction; its concrete capability (GridSpace or
	// ContinuousSpace) determines which spatial operations are legal.
	Space Space

	// Scheduler is the step scheduling policy. Defaults to the container's
	// native iteration order when nil.
	Scheduler Scheduler

	// AgentTypes lists one prototype instance per concrete agent type the
	// model will hold. Each prototype is validated against the configured
	// space at construction; structural mismatches fail with SchemaError.
	// Heterogeneous populations list every member of their union here.
	AgentTypes []Agent

	// Properties is an arbitrary user-owned blob attached to the model.
	Properties map[string]any

	// Seed seeds the model-scoped random source. Ignored when Rand is set.
	Seed int64

	// Rand overrides the model's random source entirely. The source is
	// owned by the model and must not be shared across models that step
	// concurrently.
	Rand *rand.Rand

	// Logger receives structured advisory and lifecycle output. Defaults
	// to logging.NoOpLogger.
	Logger logging.Logger

	// Warn toggles advisory structural warnings (non-fatal validation
	// findings). Enabled by default.
	Warn bool
}

// Model aggregates a container of agents, an optional space, a scheduling
// policy, user properties and a model-scoped random source.
//
// A Model is single-writer: all container and scheduler operations execute
// synchronously on one logical thread of control. Callers adding external
// parallelism must serialize add/remove and scheduler invocations
// themselves; scheduling policies snapshot the population at call time and
// assume no concurrent mutation during a single call.
type Model struct {
	container Container
	space     Space
	scheduler Scheduler
	props     map[string]any
	rng       *rand.Rand
	logger    logging.Logger
	warn      bool
}

// NewModel constructs a Model over the given container with optional
// overrides. The container choice is fixed for the model's lifetime.
//
// When Options.AgentTypes is non-empty every prototype is validated against
// the configured space; incompatible shapes fail with *SchemaError.
func NewModel(container Container, optFns ...func(o *Options)) (*Model, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: nil container", ErrInvalidArgument)
	}

	opts := Options{
		Properties: map[string]any{},
		Logger:     logging.NoOpLogger{},
		Warn:       true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Seed))
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if opts.Properties == nil {
		opts.Properties = map[string]any{}
	}

	for _, proto := range opts.AgentTypes {
		if err := validateAgentType(proto, opts.Space, opts.Warn, opts.Logger); err != nil {
			return nil, err
		}
	}

	return &Model{
		container: container,
		space:     opts.Space,
		scheduler: opts.Scheduler,
		props:     opts.Properties,
		rng:       opts.Rand,
		logger:    opts.Logger,
		warn:      opts.Warn,
	}, nil
}

// AddAgent inserts the agent into the model's container. An agent with a
// zero id is assigned NextID() first. Spatial agents are registered in the
// space's occupancy index at their (normalized) position. Add is atomic:
// on error neither container nor space change.
func (m *Model) AddAgent(a Agent) error {
	if a == nil {
		return fmt.Errorf("%w: nil agent", ErrInvalidArgument)
	}

	if a.ID() == 0 {
		a.SetID(m.container.NextID())
	}

	switch sp := m.space.(type) {
	case GridSpace:
		if ga, ok := a.(GridAgent); ok {
			if len(ga.Pos()) != sp.Dims() {
				return fmt.Errorf("%w: agent position has %d dimensions, space has %d", ErrInvalidArgument, len(ga.Pos()), sp.Dims())
			}

			if err := m.container.Add(a); err != nil {
				return err
			}

			pos := sp.Normalize(ga.Pos())
			ga.SetPos(pos)
			sp.Place(a.ID(), pos)

			m.logger.Debug("agent added", "id", a.ID())

			return nil
		}
	case ContinuousSpace:
		if ca, ok := a.(ContinuousAgent); ok {
			if len(ca.Pos()) != sp.Dims() {
				return fmt.Errorf("%w: agent position has %d dimensions, space has %d", ErrInvalidArgument, len(ca.Pos()), sp.Dims())
			}

			if err := m.container.Add(a); err != nil {
				return err
			}

			ca.SetPos(sp.Normalize(ca.Pos()))

			m.logger.Debug("agent added", "id", a.ID())

			return nil
		}
	}

	if err := m.container.Add(a); err != nil {
		return err
	}

	m.logger.Debug("agent added", "id", a.ID())

	return nil
}

// RemoveAgent deletes the agent with the given id from the container and
// from the space occupancy index. It fails with ErrUnsupportedOperation on
// sequence containers. Removing an absent id is a no-op.
func (m *Model) RemoveAgent(id int) error {
	a, ok := m.container.Get(id)
	if !ok {
		// Still delegate so sequence containers surface their contract
		// violation rather than silently succeeding.
		return m.container.Remove(id)
	}

	if err := m.container.Remove(id); err != nil {
		return err
	}

	if sp, ok := m.space.(GridSpace); ok {
		if ga, ok := a.(GridAgent); ok {
			sp.Displace(id, ga.Pos())
		}
	}

	m.logger.Debug("agent removed", "id", id)

	return nil
}

// Agent returns the agent with the given id, if present.
func (m *Model) Agent(id int) (Agent, bool) { return m.container.Get(id) }

// IDs returns all current agent ids in the container's native iteration
// order.
func (m *Model) IDs() []int { return m.container.IDs() }

// Len returns the current population size.
func (m *Model) Len() int { return m.container.Len() }

// NextID returns the id the next added agent will receive.
func (m *Model) NextID() int { return m.container.NextID() }

// Schedule invokes the model's scheduling policy and returns the agent ids
// to process this step. With no policy configured it falls back to the
// container's native iteration order (the fastest policy).
func (m *Model) Schedule() []int {
	if m.scheduler == nil {
		return m.container.IDs()
	}
	return m.scheduler.Schedule(m)
}

// Space returns the model's space, or nil for non-spatial models.
func (m *Model) Space() Space { return m.space }

// Grid returns the model's space as a GridSpace capability.
func (m *Model) Grid() (GridSpace, bool) {
	sp, ok := m.space.(GridSpace)
	return sp, ok
}

// Continuous returns the model's space as a ContinuousSpace capability.
func (m *Model) Continuous() (ContinuousSpace, bool) {
	sp, ok := m.space.(ContinuousSpace)
	return sp, ok
}

// Rand returns the model-scoped random source. All stochastic policies
// (shuffled schedulers, random walks) draw from it, keeping runs
// reproducible under a fixed seed without any process-global state.
func (m *Model) Rand() *rand.Rand { return m.rng }

// Logger returns the model's logger.
func (m *Model) Logger() logging.Logger { return m.logger }

// Prop reads a user property.
func (m *Model) Prop(key string) (any, bool) {
	v, ok := m.props[key]
	return v, ok
}

// SetProp writes a user property.
func (m *Model) SetProp(key string, value any) { m.props[key] = value }

// MoveGridAgent moves the agent to the normalized target cell, updating the
// space occupancy index. Fails with ErrInvalidArgument when the model has
// no grid space.
func (m *Model) MoveGridAgent(a GridAgent, to GridPos) error {
	sp, ok := m.space.(GridSpace)
	if !ok {
		return fmt.Errorf("%w: model has no grid space", ErrInvalidArgument)
	}

	target := sp.Normalize(to)
	sp.Move(a.ID(), a.Pos(), target)
	a.SetPos(target)

	return nil
}

// MoveContinuousAgent moves the agent to the normalized target position.
// Fails with ErrInvalidArgument when the model has no continuous space.
func (m *Model) MoveContinuousAgent(a ContinuousAgent, to Point) error {
	sp, ok := m.space.(ContinuousSpace)
	if !ok {
		return fmt.Errorf("%w: model has no continuous space", ErrInvalidArgument)
	}

	a.SetPos(sp.Normalize(to))

	return nil
}
