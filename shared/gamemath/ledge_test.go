package gamemath

import (
	"testing"

	"github.com/automoto/stonedelve/shared/tilemap"
)

func TestCheckHangGrabsOneTileLip(t *testing.T) {
	// Wall column at x=3 starting at row 2: open above, solid at the row the
	// mover's top edge crossed into.
	w := buildWorld(t, []string{
		"....",
		"....",
		"...#",
		"...#",
	})
	before := BoundingBox{X: 2.35, Y: 1.90, W: 0.6, H: 0.8}
	after := BoundingBox{X: 2.35, Y: 2.05, W: 0.6, H: 0.8}

	pos, ok := CheckHang(before, after, w, tilemap.DirRight)
	if !ok {
		t.Fatal("expected a hang")
	}
	if pos.Y != 2 {
		t.Errorf("snapped Y = %v, want top aligned to lip at 2", pos.Y)
	}
	if pos.X != 2.4 {
		t.Errorf("snapped X = %v, want flush at 2.4", pos.X)
	}
}

func TestCheckHangLeft(t *testing.T) {
	w := buildWorld(t, []string{
		"....",
		"....",
		"#...",
		"#...",
	})
	before := BoundingBox{X: 1.05, Y: 1.95, W: 0.6, H: 0.8}
	after := BoundingBox{X: 1.05, Y: 2.10, W: 0.6, H: 0.8}

	pos, ok := CheckHang(before, after, w, tilemap.DirLeft)
	if !ok {
		t.Fatal("expected a hang")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("snapped to (%v,%v), want (1,2)", pos.X, pos.Y)
	}
}

func TestCheckHangRejects(t *testing.T) {
	lip := []string{
		"....",
		"....",
		"...#",
		"...#",
	}
	tall := []string{
		"....",
		"...#",
		"...#",
		"...#",
	}
	cases := []struct {
		name          string
		rows          []string
		before, after BoundingBox
		dir           tilemap.Dir
	}{
		{
			name:   "rising not falling",
			rows:   lip,
			before: BoundingBox{X: 2.35, Y: 2.05, W: 0.6, H: 0.8},
			after:  BoundingBox{X: 2.35, Y: 1.90, W: 0.6, H: 0.8},
			dir:    tilemap.DirRight,
		},
		{
			name:   "no row boundary crossed",
			rows:   lip,
			before: BoundingBox{X: 2.35, Y: 2.10, W: 0.6, H: 0.8},
			after:  BoundingBox{X: 2.35, Y: 2.30, W: 0.6, H: 0.8},
			dir:    tilemap.DirRight,
		},
		{
			name:   "too far from the wall",
			rows:   lip,
			before: BoundingBox{X: 2.0, Y: 1.90, W: 0.6, H: 0.8},
			after:  BoundingBox{X: 2.0, Y: 2.05, W: 0.6, H: 0.8},
			dir:    tilemap.DirRight,
		},
		{
			name:   "no lip: wall continues above",
			rows:   tall,
			before: BoundingBox{X: 2.35, Y: 1.90, W: 0.6, H: 0.8},
			after:  BoundingBox{X: 2.35, Y: 2.05, W: 0.6, H: 0.8},
			dir:    tilemap.DirRight,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := buildWorld(t, tc.rows)
			if _, ok := CheckHang(tc.before, tc.after, w, tc.dir); ok {
				t.Error("unexpected hang")
			}
		})
	}
}
