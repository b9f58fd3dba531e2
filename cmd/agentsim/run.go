package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentsim/config"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/move"
	"github.com/hupe1980/agentsim/runner"
)

// gridDrifter random-walks one cell per step.
type gridDrifter struct {
	core.GridAgentBase
}

// freeDrifter reorients its velocity every step.
type freeDrifter struct {
	core.ContinuousAgentBase
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		steps      int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a random-walker scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if steps > 0 {
				cfg.Steps = steps
			}

			level := logging.LogLevelInfo
			if verbose {
				level = logging.LogLevelDebug
			}
			logger := logging.NewLogger(&logging.LoggerConfig{
				Level:     level,
				Format:    "text",
				Output:    cmd.OutOrStdout(),
				Component: "agentsim",
			})

			m, err := buildModel(cfg, logger)
			if err != nil {
				return err
			}

			r := runner.New(stepAgent, func(o *runner.Options) { o.Logger = logger })

			res, err := r.Run(cmd.Context(), m, cfg.Steps)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d steps, %d agents, %s\n", res.RunID, res.Steps, res.Population, res.Duration)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario config file")
	cmd.Flags().IntVar(&steps, "steps", 0, "override the configured step count")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every step")

	return cmd
}

func buildModel(cfg *config.Config, logger logging.Logger) (*core.Model, error) {
	sp := cfg.BuildSpace()

	var proto core.Agent = &gridDrifter{}
	if _, ok := sp.(core.ContinuousSpace); ok {
		proto = &freeDrifter{}
	}

	m, err := core.NewModel(cfg.BuildContainer(), func(o *core.Options) {
		o.Space = sp
		o.Scheduler = cfg.BuildScheduler()
		o.AgentTypes = []core.Agent{proto}
		o.Seed = cfg.Seed
		o.Logger = logger
	})
	if err != nil {
		return nil, err
	}

	for i := 0; i < cfg.Agents; i++ {
		if err := m.AddAgent(spawn(m, sp)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// spawn scatters an agent uniformly over the configured space.
func spawn(m *core.Model, sp core.Space) core.Agent {
	switch s := sp.(type) {
	case core.GridSpace:
		a := &gridDrifter{}
		pos := make(core.GridPos, s.Dims())
		for d, size := range s.Size() {
			pos[d] = 1 + m.Rand().Intn(size)
		}
		a.SetPos(pos)
		return a
	case core.ContinuousSpace:
		a := &freeDrifter{}
		pos := make(core.Point, s.Dims())
		vel := make(core.Point, s.Dims())
		for d, ext := range s.Extent() {
			pos[d] = m.Rand().Float64() * ext
			vel[d] = m.Rand().Float64() - 0.5
		}
		a.SetPos(pos)
		a.SetVel(vel)
		return a
	default:
		return &gridDrifter{}
	}
}

func stepAgent(m *core.Model, a core.Agent) error {
	switch ag := a.(type) {
	case *gridDrifter:
		// Non-spatial scenarios step their agents without movement.
		if _, ok := m.Grid(); !ok {
			return nil
		}
		return move.RandomWalk(ag, m, 1)
	case *freeDrifter:
		return move.RandomWalkContinuous(ag, m, move.WithDistance(0.05))
	default:
		return nil
	}
}
