package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stonedelve/shared/gamemath"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// BodyData carries a tile-space bounding box plus the contact flags from the
// last sweep.
type BodyData struct {
	Box gamemath.BoundingBox

	OnGround  bool
	OnCeiling bool
	OnLeft    bool
	OnRight   bool

	// DropTimer counts frames during which one-way platforms are ignored,
	// set when the player drops through.
	DropTimer int
}

var Body = donburi.NewComponentType[BodyData]()
