// Package tilemap provides the tile grid data model shared between the game,
// the dungeon assembler and the room tooling. It has no dependencies on
// ebitengine, donburi, or resolv — pure data only.
package tilemap

import "math"

// BaseTile is the structural tile layer of a room. The int kind keeps
// []BaseTile encoding as a JSON array of variant indices (a uint8 kind would
// base64 the whole slice).
type BaseTile int

const (
	// BaseNotPartOfRoom marks cells outside the authored room footprint. It
	// blocks movement, unlike BaseEmpty, which is walkable space inside the
	// footprint.
	BaseNotPartOfRoom BaseTile = iota
	BaseEmpty
	BaseStone
	BaseWood
)

// Solid reports whether the tile blocks movement.
func (b BaseTile) Solid() bool { return b != BaseEmpty }

// OverlayTile is the secondary tile layer, orthogonal to BaseTile. A tile can
// be climbable and landable at the same time.
type OverlayTile int

const (
	OverlayNone OverlayTile = iota
	OverlayLadder
	OverlayPlatform
	OverlayLadderPlatform
)

// Ladder reports whether the overlay is climbable.
func (o OverlayTile) Ladder() bool { return o == OverlayLadder || o == OverlayLadderPlatform }

// Platform reports whether the overlay can be landed on from above.
func (o OverlayTile) Platform() bool { return o == OverlayPlatform || o == OverlayLadderPlatform }

// Dir is a door facing.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

// Opposite returns the facing a connecting door must have.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the unit tile step along the facing.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "down"
	}
}

// Door sits on a room border cell and faces outward, toward the room it could
// connect to. Coordinates are tile cells relative to the owning room.
type Door struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	Dir Dir `json:"dir"`
}

// SpawnTemplate is an authored spawn point for an enemy, in fractional tile
// coordinates relative to the owning room.
type SpawnTemplate struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	EnemyType string  `json:"enemyType"`
}

// TileWorld is read access to a tile grid keyed by integer tile coordinates.
// Out-of-range or unclaimed cells resolve to a solid, no-overlay sentinel:
// unexplored space blocks movement.
type TileWorld interface {
	TileAt(x, y int) (BaseTile, OverlayTile)

	// OverlapsAnySolid reports whether the axis-aligned rectangle, in
	// fractional tile units, overlaps solid geometry. Implementations with
	// doors also test their closed door hit-boxes, since doors flip between
	// open and closed every frame without rewriting tile data.
	OverlapsAnySolid(x, y, w, h float64) bool
}

// IsSolid is the solid predicate over any TileWorld.
func IsSolid(w TileWorld, x, y int) bool {
	b, _ := w.TileAt(x, y)
	return b.Solid()
}

// IsLadder is the climbable predicate over any TileWorld.
func IsLadder(w TileWorld, x, y int) bool {
	_, o := w.TileAt(x, y)
	return o.Ladder()
}

// IsPlatform is the one-way platform predicate over any TileWorld.
func IsPlatform(w TileWorld, x, y int) bool {
	_, o := w.TileAt(x, y)
	return o.Platform()
}

// CornerEpsilon pulls a rectangle's far edges inward before flooring so an
// edge resting exactly on a tile boundary reads the tile it is inside, not
// its neighbor.
const CornerEpsilon = 0.001

// CornersOnSolid reports whether any of the rectangle's four corners, floored
// to tile indices, lands on a solid tile. Shared by the Room and Dungeon
// OverlapsAnySolid implementations.
func CornersOnSolid(w TileWorld, x, y, wd, h float64) bool {
	left := int(math.Floor(x))
	right := int(math.Floor(x + wd - CornerEpsilon))
	top := int(math.Floor(y))
	bottom := int(math.Floor(y + h - CornerEpsilon))

	return IsSolid(w, left, top) ||
		IsSolid(w, right, top) ||
		IsSolid(w, left, bottom) ||
		IsSolid(w, right, bottom)
}
