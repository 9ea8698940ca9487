package dungeon

import (
	"testing"

	"github.com/automoto/stonedelve/shared/tilemap"
)

// hallTemplate is a boxed 7x5 room with doors on both side walls.
func hallTemplate() *tilemap.Room {
	r := tilemap.NewBoxedRoom(7, 5)
	r.SetDoor(tilemap.Door{X: 0, Y: 2, Dir: tilemap.DirLeft})
	r.SetDoor(tilemap.Door{X: 6, Y: 2, Dir: tilemap.DirRight})
	r.Spawns = append(r.Spawns, tilemap.SpawnTemplate{X: 3.0, Y: 3.0, EnemyType: "Slime"})
	return r
}

// shaftTemplate is a boxed 5x7 room with doors on floor and ceiling.
func shaftTemplate() *tilemap.Room {
	r := tilemap.NewBoxedRoom(5, 7)
	r.SetDoor(tilemap.Door{X: 2, Y: 0, Dir: tilemap.DirUp})
	r.SetDoor(tilemap.Door{X: 2, Y: 6, Dir: tilemap.DirDown})
	for cy := 1; cy < 6; cy++ {
		r.SetOverlay(2, cy, tilemap.OverlayLadder)
	}
	return r
}

func templates() []*tilemap.Room {
	return []*tilemap.Room{hallTemplate(), shaftTemplate()}
}

func TestGenerateTerminatesWithinBudget(t *testing.T) {
	a := NewAssembler(templates(), AssemblerConfig{
		TargetRooms: 12,
		MaxAttempts: 300,
		Seed:        7,
	})
	d, err := a.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := len(d.Rooms); n < 1 || n > 12 {
		t.Fatalf("placed %d rooms, want 1..12", n)
	}
}

func TestGenerateNoTemplatesIsError(t *testing.T) {
	a := NewAssembler(nil, AssemblerConfig{TargetRooms: 3, MaxAttempts: 10, Seed: 1})
	if _, err := a.Generate(); err == nil {
		t.Fatal("expected an error with an empty template pool")
	}
}

func TestGenerateHasNoPairwiseTileConflicts(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99, 12345} {
		a := NewAssembler(templates(), AssemblerConfig{
			TargetRooms: 10,
			MaxAttempts: 500,
			Seed:        seed,
		})
		d, err := a.Generate()
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		// Re-scan every overlapping coordinate of every room pair:
		// NotPartOfRoom overlaps freely, anything else must agree exactly.
		for i, ri := range d.Rooms {
			for _, rj := range d.Rooms[i+1:] {
				for cy := 0; cy < ri.H; cy++ {
					for cx := 0; cx < ri.W; cx++ {
						wx, wy := ri.X+cx, ri.Y+cy
						bi, oi := ri.TileAt(cx, cy)
						bj, oj := rj.WorldTileAt(wx, wy)
						if bi == tilemap.BaseNotPartOfRoom || bj == tilemap.BaseNotPartOfRoom {
							continue
						}
						if bi != bj || oi != oj {
							t.Fatalf("seed %d: conflict at (%d,%d): (%v,%v) vs (%v,%v)",
								seed, wx, wy, bi, oi, bj, oj)
						}
					}
				}
			}
		}
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	cfg := AssemblerConfig{TargetRooms: 8, MaxAttempts: 400, Seed: 4242}
	d1, err := NewAssembler(templates(), cfg).Generate()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := NewAssembler(templates(), cfg).Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		a, b := d1.Rooms[i], d2.Rooms[i]
		if a.X != b.X || a.Y != b.Y || a.W != b.W || a.H != b.H {
			t.Errorf("room %d differs: (%d,%d) %dx%d vs (%d,%d) %dx%d",
				i, a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
		}
	}
	if len(d1.Doors) != len(d2.Doors) {
		t.Errorf("door counts differ: %d vs %d", len(d1.Doors), len(d2.Doors))
	}
}

func TestGenerateCarvesMatchedDoors(t *testing.T) {
	// One template with only a Right door, one with only a Left door: any
	// connection joins them side by side with the shared cell carved open.
	right := tilemap.NewBoxedRoom(6, 5)
	right.SetDoor(tilemap.Door{X: 5, Y: 2, Dir: tilemap.DirRight})
	left := tilemap.NewBoxedRoom(6, 5)
	left.SetDoor(tilemap.Door{X: 0, Y: 2, Dir: tilemap.DirLeft})

	a := NewAssembler([]*tilemap.Room{right, left}, AssemblerConfig{
		TargetRooms: 2,
		MaxAttempts: 200,
		Seed:        11,
	})
	d, err := a.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Rooms) != 2 {
		t.Fatalf("placed %d rooms, want 2", len(d.Rooms))
	}
	if len(d.Doors) != 1 {
		t.Fatalf("recorded %d inter-room doors, want 1", len(d.Doors))
	}

	door := d.Doors[0]
	for i, r := range d.Rooms {
		if b, _ := r.WorldTileAt(door.X, door.Y); b != tilemap.BaseEmpty {
			t.Errorf("room %d door cell (%d,%d) = %v, want carved Empty", i, door.X, door.Y, b)
		}
	}
	if b, _ := d.TileAt(door.X, door.Y); b.Solid() {
		t.Errorf("door cell (%d,%d) solid after flatten", door.X, door.Y)
	}
}
