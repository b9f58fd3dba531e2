package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// AgentStepFunc is the per-agent step logic executed for every scheduled
// agent. It may mutate the agent, move it, add or remove agents: ids
// removed mid-step are skipped for the remainder of the step.
type AgentStepFunc func(m *core.Model, a core.Agent) error

// ModelStepFunc is an optional model-level hook executed once per step
// after all agent steps.
type ModelStepFunc func(m *core.Model) error

// Options holds dependency and configuration overrides passed to New.
type Options struct {
	// ModelStep runs once per step after the agent steps. Optional.
	ModelStep ModelStepFunc
	// MaxParallelRuns bounds RunBatch concurrency. Zero means one
	// goroutine per model.
	MaxParallelRuns int
	// Logger receives run and step output. Defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// Result summarizes one completed run.
type Result struct {
	// RunID uniquely identifies the run in log output.
	RunID string
	// Steps is the number of fully executed steps.
	Steps int
	// Population is the model's population after the final step.
	Population int
	// Duration is the wall-clock run time.
	Duration time.Duration
}

// Runner drives models through simulation steps.
type Runner struct {
	agentStep       AgentStepFunc
	modelStep       ModelStepFunc
	maxParallelRuns int
	logger          logging.Logger
}

// New constructs a Runner around the given agent step function with
// optional overrides.
func New(agentStep AgentStepFunc, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		agentStep:       agentStep,
		modelStep:       opts.ModelStep,
		maxParallelRuns: opts.MaxParallelRuns,
		logger:          opts.Logger,
	}
}

// Run advances the model by the given number of steps. The context is
// checked between steps; cancellation mid-run returns ctx.Err() with the
// model left in its end-of-step state.
func (r *Runner) Run(ctx context.Context, m *core.Model, steps int) (*Result, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: negative step count %d", core.ErrInvalidArgument, steps)
	}

	runID := uuid.NewString()
	start := time.Now()

	r.logger.Info("run started", "run_id", runID, "steps", steps, "population", m.Len())

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			r.logger.Warn("run canceled", "run_id", runID, "step", step)
			return nil, ctx.Err()
		default:
		}

		if err := r.step(m); err != nil {
			r.logger.Error("run failed", "run_id", runID, "step", step, "error", err)
			return nil, fmt.Errorf("step %d: %w", step, err)
		}

		r.logger.Debug("step completed", "run_id", runID, "step", step, "population", m.Len())
	}

	res := &Result{
		RunID:      runID,
		Steps:      steps,
		Population: m.Len(),
		Duration:   time.Since(start),
	}

	r.logger.Info("run completed", "run_id", runID, "steps", res.Steps, "population", res.Population, "duration", res.Duration)

	return res, nil
}

// step executes one schedule-then-step cycle.
func (r *Runner) step(m *core.Model) error {
	for _, id := range m.Schedule() {
		a, ok := m.Agent(id)
		if !ok {
			// Removed earlier in this step.
			continue
		}
		if err := r.agentStep(m, a); err != nil {
			return fmt.Errorf("agent %d: %w", id, err)
		}
	}

	if r.modelStep != nil {
		if err := r.modelStep(m); err != nil {
			return fmt.Errorf("model step: %w", err)
		}
	}

	return nil
}

// RunBatch advances independent models (replicates) in parallel, each for
// the given number of steps. Every model is advanced by exactly one
// goroutine, so the single-writer contract holds per model. The first
// error cancels the remaining runs; results are returned in model order.
func (r *Runner) RunBatch(ctx context.Context, models []*core.Model, steps int) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if r.maxParallelRuns > 0 {
		g.SetLimit(r.maxParallelRuns)
	}

	results := make([]*Result, len(models))
	for i, m := range models {
		i, m := i, m
		g.Go(func() error {
			res, err := r.Run(ctx, m, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
