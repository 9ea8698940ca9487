package systems

import (
	"testing"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/dungeon"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/automoto/stonedelve/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newDoorFixture builds a world with one open door at cell (5,2) and a
// player-sized body the tests can move around it.
func newDoorFixture(t *testing.T) (*ecs.ECS, *components.DoorData, *components.BodyData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	doorEntry := e.World.Entry(e.World.Create(components.Door))
	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Body))

	components.Door.SetValue(doorEntry, components.DoorData{
		Door:     &dungeon.Door{X: 5, Y: 2, Dir: tilemap.DirRight, Open: true},
		Openness: 1,
	})
	components.Body.SetValue(playerEntry, components.BodyData{
		Box: gamemath.BoundingBox{X: 4.6, Y: 2.1, W: 0.6, H: 0.8},
	})

	return e, components.Door.Get(doorEntry), components.Body.Get(playerEntry)
}

func TestDoorStaysOpenWhileBodyOverlapsCell(t *testing.T) {
	e, d, body := newDoorFixture(t)

	// Straddling the cell from the left.
	UpdateDoors(e)
	if d.Door.Blocks() {
		t.Fatalf("door closed while the body was entering its cell")
	}

	// The body center has crossed out of the cell but the trailing 0.28
	// tiles of the box are still inside it.
	body.Box.X = 5.72
	UpdateDoors(e)
	if d.Door.Blocks() {
		t.Fatalf("door closed at x=5.72 with the body still overlapping the cell")
	}

	body.Box.X = 5.95
	UpdateDoors(e)
	if d.Door.Blocks() {
		t.Fatalf("door closed at x=5.95 with the body still overlapping the cell")
	}
}

func TestDoorClosesOnceBodyClearsCell(t *testing.T) {
	e, d, body := newDoorFixture(t)

	body.Box.X = 5.72
	UpdateDoors(e)

	body.Box.X = 6.05
	UpdateDoors(e)
	if !d.Door.Blocks() {
		t.Fatalf("door still open after the body cleared its cell")
	}
	if d.Door.ClosedFrames != cfg.Dungeon.DoorClosedFrames {
		t.Errorf("ClosedFrames = %d, want %d", d.Door.ClosedFrames, cfg.Dungeon.DoorClosedFrames)
	}

	// A shut door is solid immediately; the body it closed behind must not
	// overlap its hit-box.
	cell := gamemath.BoundingBox{X: 5, Y: 2, W: 1, H: 1}
	if body.Box.Overlaps(cell) {
		t.Errorf("body at x=%.2f overlaps the freshly shut door cell", body.Box.X)
	}
}

func TestDoorReopensAfterCountdown(t *testing.T) {
	e, d, body := newDoorFixture(t)

	body.Box.X = 5.72
	UpdateDoors(e)
	body.Box.X = 6.05
	UpdateDoors(e)

	for i := 0; i < cfg.Dungeon.DoorClosedFrames; i++ {
		UpdateDoors(e)
	}
	if d.Door.Blocks() {
		t.Fatalf("door still shut after its countdown elapsed")
	}
}
