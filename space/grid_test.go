package space

import (
	"errors"
	"testing"

	"github.com/hupe1980/agentsim/core"
)

func TestGrid_NormalizePeriodic(t *testing.T) {
	g := NewGrid(core.GridPos{5, 5})

	tests := []struct {
		in, want core.GridPos
	}{
		{core.GridPos{1, 1}, core.GridPos{1, 1}},
		{core.GridPos{6, 0}, core.GridPos{1, 5}},
		{core.GridPos{0, 6}, core.GridPos{5, 1}},
		{core.GridPos{-4, 11}, core.GridPos{1, 1}},
		{core.GridPos{5, 5}, core.GridPos{5, 5}},
	}
	for _, tc := range tests {
		if got := g.Normalize(tc.in); !got.Equal(tc.want) {
			t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGrid_NormalizeBounded(t *testing.T) {
	g := NewGrid(core.GridPos{5, 5}, func(o *GridOptions) { o.Periodic = false })

	tests := []struct {
		in, want core.GridPos
	}{
		{core.GridPos{0, 3}, core.GridPos{1, 3}},
		{core.GridPos{6, -2}, core.GridPos{5, 1}},
		{core.GridPos{2, 2}, core.GridPos{2, 2}},
	}
	for _, tc := range tests {
		if got := g.Normalize(tc.in); !got.Equal(tc.want) {
			t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGrid_OffsetsAtRadius(t *testing.T) {
	tests := []struct {
		name   string
		metric core.Metric
		r      int
		want   int
	}{
		{"chebyshev r=1", core.Chebyshev, 1, 8},
		{"chebyshev r=2", core.Chebyshev, 2, 16},
		{"manhattan r=1", core.Manhattan, 1, 4},
		{"manhattan r=2", core.Manhattan, 2, 8},
		{"r=0", core.Chebyshev, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(core.GridPos{10, 10}, func(o *GridOptions) { o.Metric = tc.metric })
			offsets, err := g.OffsetsAtRadius(tc.r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(offsets) != tc.want {
				t.Fatalf("expected %d offsets, got %d: %v", tc.want, len(offsets), offsets)
			}
			for _, off := range offsets {
				if g.distance(off) != tc.r {
					t.Errorf("offset %v not at radius %d", off, tc.r)
				}
			}
		})
	}
}

func TestGrid_OffsetsAtRadius3D(t *testing.T) {
	g := NewGrid(core.GridPos{4, 4, 4})

	offsets, err := g.OffsetsAtRadius(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3^3 - 1 cells in the Moore shell.
	if len(offsets) != 26 {
		t.Fatalf("expected 26 offsets, got %d", len(offsets))
	}
}

func TestGrid_OffsetsEuclideanUnsupported(t *testing.T) {
	g := NewGrid(core.GridPos{10, 10}, func(o *GridOptions) { o.Metric = core.Euclidean })

	for i := 0; i < 3; i++ {
		_, err := g.OffsetsAtRadius(1)
		if !errors.Is(err, core.ErrUnsupportedMetric) {
			t.Fatalf("expected ErrUnsupportedMetric, got %v", err)
		}
	}
}

func TestGrid_Occupancy(t *testing.T) {
	g := NewGrid(core.GridPos{3, 3})

	g.Place(1, core.GridPos{2, 2})
	g.Place(2, core.GridPos{2, 2})

	ids := g.IDsAt(core.GridPos{2, 2})
	if len(ids) != 2 {
		t.Fatalf("expected 2 occupants, got %v", ids)
	}

	g.Move(1, core.GridPos{2, 2}, core.GridPos{1, 1})
	if id, ok := g.IDAt(core.GridPos{1, 1}); !ok || id != 1 {
		t.Fatalf("expected occupant 1 at (1,1), got %d (present=%v)", id, ok)
	}

	g.Displace(2, core.GridPos{2, 2})
	if ids := g.IDsAt(core.GridPos{2, 2}); len(ids) != 0 {
		t.Fatalf("expected empty cell, got %v", ids)
	}
}
