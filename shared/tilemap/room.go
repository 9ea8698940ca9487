package tilemap

// Room is a bounded rectangular grid of base and overlay tiles plus a door
// set and spawn-point templates. It implements TileWorld over local
// coordinates; the world anchor (X, Y) maps cell (cx, cy) to world tile
// (X+cx, Y+cy). Invariant: len(Base) == len(Overlay) == W*H.
type Room struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`

	Base    []BaseTile      `json:"base"`
	Overlay []OverlayTile   `json:"overlay"`
	Doors   []Door          `json:"doors"`
	Spawns  []SpawnTemplate `json:"spawns"`
}

// NewRoom returns a w×h room with no authored footprint yet: every cell is
// (BaseNotPartOfRoom, OverlayNone).
func NewRoom(w, h int) *Room {
	return &Room{
		W:       w,
		H:       h,
		Base:    make([]BaseTile, w*h),
		Overlay: make([]OverlayTile, w*h),
	}
}

// NewBoxedRoom returns a w×h room with a Wood border and an Empty interior.
func NewBoxedRoom(w, h int) *Room {
	r := NewRoom(w, h)
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			if cx == 0 || cy == 0 || cx == w-1 || cy == h-1 {
				r.Base[cy*w+cx] = BaseWood
			} else {
				r.Base[cy*w+cx] = BaseEmpty
			}
		}
	}
	return r
}

func (r *Room) idx(cx, cy int) int { return cy*r.W + cx }

// Contains reports whether the local cell lies inside the room rectangle.
func (r *Room) Contains(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < r.W && cy < r.H
}

// TileAt implements TileWorld over local coordinates. Cells outside the
// rectangle read as (BaseNotPartOfRoom, OverlayNone), which is solid.
func (r *Room) TileAt(cx, cy int) (BaseTile, OverlayTile) {
	if !r.Contains(cx, cy) {
		return BaseNotPartOfRoom, OverlayNone
	}
	i := r.idx(cx, cy)
	return r.Base[i], r.Overlay[i]
}

// WorldTileAt reads a tile by world coordinates.
func (r *Room) WorldTileAt(wx, wy int) (BaseTile, OverlayTile) {
	return r.TileAt(wx-r.X, wy-r.Y)
}

// OverlapsAnySolid implements TileWorld. Rooms have no door hit-boxes; only
// the corner probe applies.
func (r *Room) OverlapsAnySolid(x, y, w, h float64) bool {
	return CornersOnSolid(r, x, y, w, h)
}

// SetTile writes both layers of a cell, growing the room first if the cell
// lies outside the current rectangle.
func (r *Room) SetTile(cx, cy int, b BaseTile, o OverlayTile) {
	cx, cy = r.ResizeToFit(cx, cy)
	i := r.idx(cx, cy)
	r.Base[i] = b
	r.Overlay[i] = o
}

// SetBase writes the structural layer of a cell, growing the room if needed.
func (r *Room) SetBase(cx, cy int, b BaseTile) {
	cx, cy = r.ResizeToFit(cx, cy)
	r.Base[r.idx(cx, cy)] = b
}

// SetOverlay writes the overlay layer of a cell, growing the room if needed.
func (r *Room) SetOverlay(cx, cy int, o OverlayTile) {
	cx, cy = r.ResizeToFit(cx, cy)
	r.Overlay[r.idx(cx, cy)] = o
}

// SetDoor adds a door, replacing any existing door at the same cell.
func (r *Room) SetDoor(d Door) {
	for i := range r.Doors {
		if r.Doors[i].X == d.X && r.Doors[i].Y == d.Y {
			r.Doors[i] = d
			return
		}
	}
	r.Doors = append(r.Doors, d)
}

// RemoveDoorAt deletes the door at the cell, if any.
func (r *Room) RemoveDoorAt(cx, cy int) {
	for i := range r.Doors {
		if r.Doors[i].X == cx && r.Doors[i].Y == cy {
			r.Doors = append(r.Doors[:i], r.Doors[i+1:]...)
			return
		}
	}
}

// DoorAt returns the door at the cell, or nil.
func (r *Room) DoorAt(cx, cy int) *Door {
	for i := range r.Doors {
		if r.Doors[i].X == cx && r.Doors[i].Y == cy {
			return &r.Doors[i]
		}
	}
	return nil
}

// ResizeToFit grows the room so the given local cell lies inside it. New
// cells are filled with (BaseNotPartOfRoom, OverlayNone); surviving tiles,
// doors and spawn templates keep their world positions. It returns the cell's
// local coordinates after the grow, which differ from the input when columns
// or rows were added on the left or top.
func (r *Room) ResizeToFit(cx, cy int) (int, int) {
	if r.Contains(cx, cy) {
		return cx, cy
	}

	addLeft, addTop, addRight, addBottom := 0, 0, 0, 0
	if cx < 0 {
		addLeft = -cx
	}
	if cy < 0 {
		addTop = -cy
	}
	if cx >= r.W {
		addRight = cx - r.W + 1
	}
	if cy >= r.H {
		addBottom = cy - r.H + 1
	}

	newW := r.W + addLeft + addRight
	newH := r.H + addTop + addBottom
	base := make([]BaseTile, newW*newH)
	overlay := make([]OverlayTile, newW*newH)
	for oy := 0; oy < r.H; oy++ {
		for ox := 0; ox < r.W; ox++ {
			ni := (oy+addTop)*newW + (ox + addLeft)
			oi := oy*r.W + ox
			base[ni] = r.Base[oi]
			overlay[ni] = r.Overlay[oi]
		}
	}

	r.W, r.H = newW, newH
	r.Base, r.Overlay = base, overlay
	r.X -= addLeft
	r.Y -= addTop
	for i := range r.Doors {
		r.Doors[i].X += addLeft
		r.Doors[i].Y += addTop
	}
	for i := range r.Spawns {
		r.Spawns[i].X += float64(addLeft)
		r.Spawns[i].Y += float64(addTop)
	}
	return cx + addLeft, cy + addTop
}

// ResizeShrink trims border strips whose every cell is
// (BaseNotPartOfRoom, OverlayNone), independently per side, stopping at the
// first non-empty cell. Surviving tiles keep their world positions; door
// coordinates are shifted and clamped into the new bounds. At least one cell
// always remains.
func (r *Room) ResizeShrink() {
	trimLeft, trimRight, trimTop, trimBottom := 0, 0, 0, 0

	for trimLeft < r.W && r.columnEmpty(trimLeft) {
		trimLeft++
	}
	if trimLeft == r.W {
		// Fully empty room: collapse to a single cell.
		trimLeft = r.W - 1
	} else {
		for trimRight < r.W-trimLeft-1 && r.columnEmpty(r.W-1-trimRight) {
			trimRight++
		}
	}
	for trimTop < r.H-1 && r.rowEmpty(trimTop) {
		trimTop++
	}
	for trimBottom < r.H-trimTop-1 && r.rowEmpty(r.H-1-trimBottom) {
		trimBottom++
	}

	if trimLeft == 0 && trimRight == 0 && trimTop == 0 && trimBottom == 0 {
		return
	}

	newW := r.W - trimLeft - trimRight
	newH := r.H - trimTop - trimBottom
	base := make([]BaseTile, newW*newH)
	overlay := make([]OverlayTile, newW*newH)
	for ny := 0; ny < newH; ny++ {
		for nx := 0; nx < newW; nx++ {
			oi := (ny+trimTop)*r.W + (nx + trimLeft)
			base[ny*newW+nx] = r.Base[oi]
			overlay[ny*newW+nx] = r.Overlay[oi]
		}
	}

	r.W, r.H = newW, newH
	r.Base, r.Overlay = base, overlay
	r.X += trimLeft
	r.Y += trimTop
	for i := range r.Doors {
		r.Doors[i].X = clampInt(r.Doors[i].X-trimLeft, 0, newW-1)
		r.Doors[i].Y = clampInt(r.Doors[i].Y-trimTop, 0, newH-1)
	}
	for i := range r.Spawns {
		r.Spawns[i].X -= float64(trimLeft)
		r.Spawns[i].Y -= float64(trimTop)
	}
}

func (r *Room) columnEmpty(cx int) bool {
	for cy := 0; cy < r.H; cy++ {
		i := r.idx(cx, cy)
		if r.Base[i] != BaseNotPartOfRoom || r.Overlay[i] != OverlayNone {
			return false
		}
	}
	return true
}

func (r *Room) rowEmpty(cy int) bool {
	for cx := 0; cx < r.W; cx++ {
		i := r.idx(cx, cy)
		if r.Base[i] != BaseNotPartOfRoom || r.Overlay[i] != OverlayNone {
			return false
		}
	}
	return true
}

// Translate moves the room's world anchor. Local door and spawn coordinates
// are unaffected.
func (r *Room) Translate(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// Clone returns a deep copy.
func (r *Room) Clone() *Room {
	c := &Room{X: r.X, Y: r.Y, W: r.W, H: r.H}
	c.Base = append([]BaseTile(nil), r.Base...)
	c.Overlay = append([]OverlayTile(nil), r.Overlay...)
	c.Doors = append([]Door(nil), r.Doors...)
	c.Spawns = append([]SpawnTemplate(nil), r.Spawns...)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
