package core_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/agentsim/container"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/space"
)

type walker struct {
	core.GridAgentBase
	Energy float64
}

type floater struct {
	core.ContinuousAgentBase
}

func TestModel_AddAssignsNextID(t *testing.T) {
	m, err := core.NewModel(container.NewDict())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := &walker{}
	b := &walker{}
	if err := m.AddAgent(a); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := m.AddAgent(b); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID(), b.ID())
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 agents, got %d", m.Len())
	}
}

func TestModel_AddSpatialRegistersOccupancy(t *testing.T) {
	g := space.NewGrid(core.GridPos{4, 4})
	m, err := core.NewModel(container.NewDict(), func(o *core.Options) { o.Space = g })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := &walker{}
	a.SetPos(core.GridPos{6, 0}) // normalized on add
	if err := m.AddAgent(a); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if !a.Pos().Equal(core.GridPos{2, 4}) {
		t.Fatalf("expected normalized position (2,4), got %v", a.Pos())
	}
	if ids := g.IDsAt(core.GridPos{2, 4}); len(ids) != 1 || ids[0] != a.ID() {
		t.Fatalf("expected occupancy entry for agent, got %v", ids)
	}

	if err := m.RemoveAgent(a.ID()); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if ids := g.IDsAt(core.GridPos{2, 4}); len(ids) != 0 {
		t.Fatalf("expected empty cell after removal, got %v", ids)
	}
}

func TestModel_RemoveOnSequenceContainer(t *testing.T) {
	m, err := core.NewModel(container.NewVector())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.AddAgent(&walker{}); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if err := m.RemoveAgent(1); !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("container should be unchanged, len=%d", m.Len())
	}
}

func TestModel_ScheduleDefaultsToContainerOrder(t *testing.T) {
	m, err := core.NewModel(container.NewDict())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := m.AddAgent(&walker{}); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}

	ids := m.Schedule()
	if len(ids) != 4 {
		t.Fatalf("expected 4 ids, got %v", ids)
	}
	for i, id := range m.IDs() {
		if ids[i] != id {
			t.Fatalf("expected container order %v, got %v", m.IDs(), ids)
		}
	}
}

func TestModel_SeededRandReproducible(t *testing.T) {
	build := func() *core.Model {
		m, err := core.NewModel(container.NewDict(), func(o *core.Options) { o.Seed = 7 })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return m
	}

	m1, m2 := build(), build()
	for i := 0; i < 10; i++ {
		if m1.Rand().Int63() != m2.Rand().Int63() {
			t.Fatal("equal seeds must produce equal streams")
		}
	}
}

func TestModel_Properties(t *testing.T) {
	m, err := core.NewModel(container.NewDict(), func(o *core.Options) {
		o.Properties = map[string]any{"growth": 0.2}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := m.Prop("growth"); !ok || v.(float64) != 0.2 {
		t.Fatalf("expected growth=0.2, got %v (present=%v)", v, ok)
	}

	m.SetProp("season", "winter")
	if v, _ := m.Prop("season"); v != "winter" {
		t.Fatalf("expected season=winter, got %v", v)
	}
}

func TestModel_MoveGridAgentWithoutGrid(t *testing.T) {
	m, err := core.NewModel(container.NewDict())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := &walker{}
	if err := m.AddAgent(a); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if err := m.MoveGridAgent(a, core.GridPos{1, 1}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
