// Package dungeon assembles authored room templates into a connected level
// and serves tile queries over the result. Like tilemap, it is pure data —
// no rendering or ECS dependencies.
package dungeon

import (
	"github.com/automoto/stonedelve/shared/tilemap"
)

// Door connects two placed rooms at a carved opening. Closed doors act as
// solid geometry through OverlapsAnySolid without rewriting tile data, which
// lets them open and close every frame.
type Door struct {
	X, Y int
	Dir  tilemap.Dir
	Open bool

	// ClosedFrames counts down while the door is shut by the
	// close-behind-the-player mechanic; the door reopens at zero.
	ClosedFrames int
}

// CloseFor shuts the door for the given number of frames.
func (d *Door) CloseFor(frames int) {
	d.Open = false
	d.ClosedFrames = frames
}

// Tick advances the closed-countdown by one frame.
func (d *Door) Tick() {
	if d.ClosedFrames > 0 {
		d.ClosedFrames--
		if d.ClosedFrames == 0 {
			d.Open = true
		}
	}
}

// Blocks reports whether the door currently stops movement.
func (d *Door) Blocks() bool { return !d.Open }

// Dungeon is an assembled collection of placed rooms plus the inter-room
// doors between them. After assembly finishes, Flatten builds a single lookup
// buffer over the union bounding box for O(1) point queries; the buffer is
// read-only from then on (editing happens on the pre-assembly per-room
// representation).
type Dungeon struct {
	Rooms []*tilemap.Room
	Doors []*Door

	flattened  bool
	minX, minY int
	w, h       int
	base       []tilemap.BaseTile
	overlay    []tilemap.OverlayTile
}

// New returns an empty dungeon.
func New() *Dungeon {
	return &Dungeon{}
}

// AddRoom appends a placed room. The room's world anchor is fixed from here
// on.
func (d *Dungeon) AddRoom(r *tilemap.Room) {
	d.Rooms = append(d.Rooms, r)
}

// TileAt implements tilemap.TileWorld over world coordinates. Cells no placed
// room claims read as (Stone, None): unexplored space blocks movement.
func (d *Dungeon) TileAt(x, y int) (tilemap.BaseTile, tilemap.OverlayTile) {
	if d.flattened {
		cx, cy := x-d.minX, y-d.minY
		if cx < 0 || cy < 0 || cx >= d.w || cy >= d.h {
			return tilemap.BaseStone, tilemap.OverlayNone
		}
		i := cy*d.w + cx
		return d.base[i], d.overlay[i]
	}

	for _, r := range d.Rooms {
		if b, o := r.WorldTileAt(x, y); b != tilemap.BaseNotPartOfRoom {
			return b, o
		}
	}
	return tilemap.BaseStone, tilemap.OverlayNone
}

// OverlapsAnySolid implements tilemap.TileWorld: the four-corner probe plus
// the closed-door hit-boxes, which live outside the tile grid.
func (d *Dungeon) OverlapsAnySolid(x, y, w, h float64) bool {
	if tilemap.CornersOnSolid(d, x, y, w, h) {
		return true
	}
	for _, door := range d.Doors {
		if !door.Blocks() {
			continue
		}
		dx, dy := float64(door.X), float64(door.Y)
		if x < dx+1 && x+w > dx && y < dy+1 && y+h > dy {
			return true
		}
	}
	return false
}

// Flatten builds the O(1) lookup buffer sized to the union bounding box of
// all placed rooms, defaulting unclaimed cells to Stone. It runs once,
// immediately after assembly finishes.
func (d *Dungeon) Flatten() {
	if len(d.Rooms) == 0 || d.flattened {
		return
	}

	minX, minY := d.Rooms[0].X, d.Rooms[0].Y
	maxX, maxY := d.Rooms[0].X+d.Rooms[0].W, d.Rooms[0].Y+d.Rooms[0].H
	for _, r := range d.Rooms[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
	}

	d.minX, d.minY = minX, minY
	d.w, d.h = maxX-minX, maxY-minY
	d.base = make([]tilemap.BaseTile, d.w*d.h)
	d.overlay = make([]tilemap.OverlayTile, d.w*d.h)
	for i := range d.base {
		d.base[i] = tilemap.BaseStone
	}

	for _, r := range d.Rooms {
		for cy := 0; cy < r.H; cy++ {
			for cx := 0; cx < r.W; cx++ {
				b, o := r.TileAt(cx, cy)
				if b == tilemap.BaseNotPartOfRoom {
					continue
				}
				i := (r.Y+cy-minY)*d.w + (r.X + cx - minX)
				d.base[i] = b
				d.overlay[i] = o
			}
		}
	}

	d.flattened = true
}

// Bounds returns the world-space bounding rectangle of the placed rooms in
// tiles. Valid after Flatten.
func (d *Dungeon) Bounds() (x, y, w, h int) {
	return d.minX, d.minY, d.w, d.h
}

// RoomAt returns the room claiming the fractional world point, or nil. The
// membership test insets each room by half a tile so the one-tile overlap
// seam between adjacent rooms never matches two rooms.
func (d *Dungeon) RoomAt(wx, wy float64) *tilemap.Room {
	for _, r := range d.Rooms {
		if wx >= float64(r.X)+0.5 && wx < float64(r.X+r.W)-0.5 &&
			wy >= float64(r.Y)+0.5 && wy < float64(r.Y+r.H)-0.5 {
			return r
		}
	}
	return nil
}

// DoorAt returns the inter-room door at the world tile, or nil.
func (d *Dungeon) DoorAt(x, y int) *Door {
	for _, door := range d.Doors {
		if door.X == x && door.Y == y {
			return door
		}
	}
	return nil
}

// EnemySpawns returns every placed room's spawn templates translated into
// world coordinates. The entity layer instantiates them once, at build time.
func (d *Dungeon) EnemySpawns() []tilemap.SpawnTemplate {
	var spawns []tilemap.SpawnTemplate
	for _, r := range d.Rooms {
		for _, s := range r.Spawns {
			spawns = append(spawns, tilemap.SpawnTemplate{
				X:         s.X + float64(r.X),
				Y:         s.Y + float64(r.Y),
				EnemyType: s.EnemyType,
			})
		}
	}
	return spawns
}
