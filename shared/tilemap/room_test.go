package tilemap

import (
	"reflect"
	"testing"
)

func TestBoxedRoomLayout(t *testing.T) {
	r := NewBoxedRoom(5, 5)

	for cy := 0; cy < 5; cy++ {
		for cx := 0; cx < 5; cx++ {
			b, o := r.TileAt(cx, cy)
			border := cx == 0 || cy == 0 || cx == 4 || cy == 4
			if border && b != BaseWood {
				t.Errorf("border cell (%d,%d) = %v, want Wood", cx, cy, b)
			}
			if !border && b != BaseEmpty {
				t.Errorf("interior cell (%d,%d) = %v, want Empty", cx, cy, b)
			}
			if o != OverlayNone {
				t.Errorf("cell (%d,%d) overlay = %v, want None", cx, cy, o)
			}
		}
	}
}

func TestTileAtOutOfRangeIsSolidSentinel(t *testing.T) {
	r := NewBoxedRoom(3, 3)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, -5}, {100, 100}} {
		b, o := r.TileAt(p[0], p[1])
		if b != BaseNotPartOfRoom || o != OverlayNone {
			t.Errorf("TileAt(%d,%d) = (%v,%v), want solid sentinel", p[0], p[1], b, o)
		}
		if !b.Solid() {
			t.Errorf("sentinel at (%d,%d) must be solid", p[0], p[1])
		}
	}
}

func TestGrowThenShrinkRoundTrip(t *testing.T) {
	r := NewBoxedRoom(5, 4)
	r.X, r.Y = 7, -2
	r.SetDoor(Door{X: 4, Y: 1, Dir: DirRight})
	r.Spawns = append(r.Spawns, SpawnTemplate{X: 2.5, Y: 1.5, EnemyType: "Slime"})
	want := r.Clone()

	// Grow in every direction, painting nothing, then shrink back.
	r.ResizeToFit(-3, -2)
	r.ResizeToFit(9, 8)
	if r.W != 10 || r.H != 9 {
		t.Fatalf("after grow: size %dx%d, want 10x9", r.W, r.H)
	}
	r.ResizeShrink()

	if r.X != want.X || r.Y != want.Y || r.W != want.W || r.H != want.H {
		t.Fatalf("round trip anchor/size = (%d,%d) %dx%d, want (%d,%d) %dx%d",
			r.X, r.Y, r.W, r.H, want.X, want.Y, want.W, want.H)
	}
	if !reflect.DeepEqual(r.Base, want.Base) || !reflect.DeepEqual(r.Overlay, want.Overlay) {
		t.Error("round trip changed tile contents")
	}
	if !reflect.DeepEqual(r.Doors, want.Doors) {
		t.Errorf("round trip doors = %+v, want %+v", r.Doors, want.Doors)
	}
	if !reflect.DeepEqual(r.Spawns, want.Spawns) {
		t.Errorf("round trip spawns = %+v, want %+v", r.Spawns, want.Spawns)
	}
}

func TestGrowPreservesWorldPositions(t *testing.T) {
	r := NewBoxedRoom(4, 4)
	r.X, r.Y = 10, 20

	before := map[[2]int]BaseTile{}
	for cy := 0; cy < 4; cy++ {
		for cx := 0; cx < 4; cx++ {
			b, _ := r.TileAt(cx, cy)
			before[[2]int{10 + cx, 20 + cy}] = b
		}
	}

	r.SetBase(-2, -1, BaseStone)

	if r.X != 8 || r.Y != 19 {
		t.Fatalf("anchor after grow = (%d,%d), want (8,19)", r.X, r.Y)
	}
	for pos, b := range before {
		got, _ := r.WorldTileAt(pos[0], pos[1])
		if got != b {
			t.Errorf("world tile (%d,%d) = %v after grow, want %v", pos[0], pos[1], got, b)
		}
	}
	if got, _ := r.WorldTileAt(8, 19); got != BaseStone {
		t.Errorf("painted world tile (8,19) = %v, want Stone", got)
	}
}

func TestSetDoorReplacesSameCell(t *testing.T) {
	r := NewBoxedRoom(5, 5)
	r.SetDoor(Door{X: 4, Y: 2, Dir: DirRight})
	r.SetDoor(Door{X: 4, Y: 2, Dir: DirDown})
	r.SetDoor(Door{X: 0, Y: 2, Dir: DirLeft})

	if len(r.Doors) != 2 {
		t.Fatalf("door count = %d, want 2", len(r.Doors))
	}
	d := r.DoorAt(4, 2)
	if d == nil || d.Dir != DirDown {
		t.Errorf("door at (4,2) = %+v, want replaced with Down", d)
	}
}

func TestDoorsStayInBoundsAcrossResizes(t *testing.T) {
	r := NewBoxedRoom(6, 6)
	r.SetDoor(Door{X: 0, Y: 3, Dir: DirLeft})
	r.SetDoor(Door{X: 5, Y: 3, Dir: DirRight})
	r.SetDoor(Door{X: 3, Y: 0, Dir: DirUp})

	ops := []func(){
		func() { r.ResizeToFit(-4, 2) },
		func() { r.ResizeShrink() },
		func() { r.ResizeToFit(8, 9) },
		func() { r.SetBase(-1, -1, BaseStone) },
		func() { r.ResizeShrink() },
		func() { r.SetBase(-1, -1, BaseNotPartOfRoom) },
		func() { r.ResizeShrink() },
	}
	for i, op := range ops {
		op()
		for _, d := range r.Doors {
			if !r.Contains(d.X, d.Y) {
				t.Fatalf("after op %d: door %+v outside %dx%d", i, d, r.W, r.H)
			}
		}
	}
}

func TestShrinkStopsPerSideAtContent(t *testing.T) {
	// Content only at world cell (12, 7): every border strip around it trims.
	r := NewRoom(5, 5)
	r.X, r.Y = 10, 5
	r.SetBase(2, 2, BaseStone)
	r.ResizeShrink()

	if r.W != 1 || r.H != 1 {
		t.Fatalf("shrunk size = %dx%d, want 1x1", r.W, r.H)
	}
	if r.X != 12 || r.Y != 7 {
		t.Fatalf("shrunk anchor = (%d,%d), want (12,7)", r.X, r.Y)
	}
	if b, _ := r.WorldTileAt(12, 7); b != BaseStone {
		t.Errorf("surviving tile = %v, want Stone", b)
	}
}

func TestShrinkFullyEmptyRoomCollapsesToOneCell(t *testing.T) {
	r := NewRoom(4, 3)
	r.ResizeShrink()
	if r.W != 1 || r.H != 1 {
		t.Fatalf("empty room shrunk to %dx%d, want 1x1", r.W, r.H)
	}
}
