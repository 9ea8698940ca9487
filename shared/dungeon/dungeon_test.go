package dungeon

import (
	"testing"

	"github.com/automoto/stonedelve/shared/tilemap"
)

func twoRoomDungeon(t *testing.T) *Dungeon {
	t.Helper()
	a := NewAssembler([]*tilemap.Room{hallTemplate()}, AssemblerConfig{
		TargetRooms: 2,
		MaxAttempts: 100,
		Seed:        5,
	})
	d, err := a.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Rooms) != 2 || len(d.Doors) != 1 {
		t.Fatalf("got %d rooms / %d doors, want 2 / 1", len(d.Rooms), len(d.Doors))
	}
	return d
}

func TestFlattenDefaultsUnclaimedToStone(t *testing.T) {
	d := twoRoomDungeon(t)

	x, y, w, h := d.Bounds()
	if w <= 0 || h <= 0 {
		t.Fatalf("bounds %dx%d, want positive", w, h)
	}

	// Outside the union bounding box everything is solid stone.
	if b, o := d.TileAt(x-1, y-1); b != tilemap.BaseStone || o != tilemap.OverlayNone {
		t.Errorf("outside tile = (%v,%v), want (Stone,None)", b, o)
	}
	if b, _ := d.TileAt(x+w+10, y); b != tilemap.BaseStone {
		t.Errorf("far tile = %v, want Stone", b)
	}
}

func TestFlattenMatchesPerRoomLookup(t *testing.T) {
	// Build the same dungeon twice; flatten one, leave the other unflattened,
	// and compare point queries across the whole bounding box.
	cfg := AssemblerConfig{TargetRooms: 6, MaxAttempts: 300, Seed: 31}
	flat, err := NewAssembler(templates(), cfg).Generate()
	if err != nil {
		t.Fatal(err)
	}

	raw := New()
	for _, r := range flat.Rooms {
		raw.AddRoom(r)
	}
	for _, door := range flat.Doors {
		raw.Doors = append(raw.Doors, door)
	}

	x, y, w, h := flat.Bounds()
	for wy := y; wy < y+h; wy++ {
		for wx := x; wx < x+w; wx++ {
			fb, fo := flat.TileAt(wx, wy)
			rb, ro := raw.TileAt(wx, wy)
			if fb != rb || fo != ro {
				t.Fatalf("tile (%d,%d): flat (%v,%v) vs scan (%v,%v)", wx, wy, fb, fo, rb, ro)
			}
		}
	}
}

func TestClosedDoorBlocksMovement(t *testing.T) {
	d := twoRoomDungeon(t)
	door := d.Doors[0]

	x, y := float64(door.X), float64(door.Y)
	if d.OverlapsAnySolid(x+0.2, y+0.1, 0.6, 0.8) {
		t.Fatal("open door cell blocks")
	}

	door.CloseFor(3)
	if !d.OverlapsAnySolid(x+0.2, y+0.1, 0.6, 0.8) {
		t.Fatal("closed door cell does not block")
	}

	for i := 0; i < 3; i++ {
		if door.Open {
			t.Fatalf("door reopened after %d ticks", i)
		}
		door.Tick()
	}
	if !door.Open {
		t.Error("door still closed after its countdown")
	}
	if d.OverlapsAnySolid(x+0.2, y+0.1, 0.6, 0.8) {
		t.Error("reopened door cell blocks")
	}
}

func TestRoomAtSeamIsUnambiguous(t *testing.T) {
	d := twoRoomDungeon(t)
	a, b := d.Rooms[0], d.Rooms[1]

	// The rooms share a one-tile seam; the half-tile inset keeps every point
	// claim unique.
	seen := 0
	x, y, w, h := d.Bounds()
	for wy := y; wy < y+h; wy++ {
		for wx := x; wx < x+w; wx++ {
			px, py := float64(wx)+0.5, float64(wy)+0.5
			inA := d.RoomAt(px, py) == a
			inB := d.RoomAt(px, py) == b
			if inA && inB {
				t.Fatalf("point (%v,%v) claimed by both rooms", px, py)
			}
			if inA || inB {
				seen++
			}
		}
	}
	if seen == 0 {
		t.Fatal("no point matched either room")
	}
}

func TestEnemySpawnsAreWorldSpace(t *testing.T) {
	d := twoRoomDungeon(t)

	spawns := d.EnemySpawns()
	if len(spawns) != 2 {
		t.Fatalf("got %d spawns, want one per placed hall", len(spawns))
	}
	for i, s := range spawns {
		r := d.Rooms[i]
		if s.X != 3.0+float64(r.X) || s.Y != 3.0+float64(r.Y) {
			t.Errorf("spawn %d at (%v,%v), want room-local (3,3) offset by anchor (%d,%d)",
				i, s.X, s.Y, r.X, r.Y)
		}
		if s.EnemyType != "Slime" {
			t.Errorf("spawn %d type %q, want Slime", i, s.EnemyType)
		}
	}
}
