package core_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/agentsim/container"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/space"
)

// warnRecorder captures advisory warnings emitted during validation.
type warnRecorder struct {
	logging.NoOpLogger
	warnings []string
}

func (r *warnRecorder) Warn(msg string, args ...any) { r.warnings = append(r.warnings, msg) }

// valueWalker satisfies GridAgent with value receivers, so the engine's
// in-place mutations would not stick.
type valueWalker struct {
	id  int
	pos core.GridPos
}

func (v valueWalker) ID() int               { return v.id }
func (v valueWalker) SetID(id int)          { v.id = id }
func (v valueWalker) Pos() core.GridPos     { return v.pos }
func (v valueWalker) SetPos(p core.GridPos) { v.pos = p }

func TestValidation_GridAgentInGridSpace(t *testing.T) {
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{&walker{}}
	})
	if err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}
}

func TestValidation_ContinuousAgentInGridSpace(t *testing.T) {
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{&floater{}}
	})

	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.AgentType != "floater" {
		t.Errorf("expected offending type floater, got %s", schemaErr.AgentType)
	}
}

func TestValidation_GridAgentInContinuousSpace(t *testing.T) {
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewContinuous(core.Point{1, 1})
		o.AgentTypes = []core.Agent{&walker{}}
	})

	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestValidation_DimensionMismatch(t *testing.T) {
	bad := &walker{}
	bad.SetPos(core.GridPos{1, 1, 1})

	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{bad}
	})

	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError for dimension mismatch, got %v", err)
	}
}

func TestValidation_UnionValidatesEveryMember(t *testing.T) {
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{&walker{}, &floater{}}
	})

	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError from the incompatible union member, got %v", err)
	}
}

func TestValidation_ValueTypeAdvisoryWarnsButRuns(t *testing.T) {
	rec := &warnRecorder{}
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{valueWalker{}}
		o.Logger = rec
	})
	if err != nil {
		t.Fatalf("advisory findings must not fail construction, got %v", err)
	}
	if len(rec.warnings) != 1 {
		t.Fatalf("expected one advisory warning for the value-type prototype, got %v", rec.warnings)
	}
}

func TestValidation_VelocityAdvisoryWarnsButRuns(t *testing.T) {
	rec := &warnRecorder{}
	proto := &floater{}
	proto.SetVel(core.Point{1, 0, 0})

	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewContinuous(core.Point{1, 1})
		o.AgentTypes = []core.Agent{proto}
		o.Logger = rec
	})
	if err != nil {
		t.Fatalf("advisory findings must not fail construction, got %v", err)
	}
	if len(rec.warnings) != 1 {
		t.Fatalf("expected one advisory warning for the velocity shape, got %v", rec.warnings)
	}
}

func TestValidation_WarnDisabledSuppressesAdvisories(t *testing.T) {
	rec := &warnRecorder{}
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Space = space.NewGrid(core.GridPos{4, 4})
		o.AgentTypes = []core.Agent{valueWalker{}}
		o.Logger = rec
		o.Warn = false
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.warnings) != 0 {
		t.Fatalf("disabled warnings must suppress advisories, got %v", rec.warnings)
	}
}

func TestValidation_NonSpatialModelSkipsPositionChecks(t *testing.T) {
	_, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.AgentTypes = []core.Agent{&walker{}, &floater{}}
	})
	if err != nil {
		t.Fatalf("non-spatial models accept any agent shape, got %v", err)
	}
}
