package systems

import (
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision boxes when -boxes is set.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}

	camX, camY := cameraTopLeft(e)
	ts := float64(cfg.C.TileSize)

	for entry := range components.Body.Iter(e.World) {
		body := components.Body.Get(entry)
		x := float32(body.Box.X*ts - camX)
		y := float32(body.Box.Y*ts - camY)
		w := float32(body.Box.W * ts)
		h := float32(body.Box.H * ts)
		vector.FillRect(screen, x, y, w, 1, cfg.Green, false)       // Top
		vector.FillRect(screen, x, y+h-1, w, 1, cfg.Green, false)   // Bottom
		vector.FillRect(screen, x, y, 1, h, cfg.Green, false)       // Left
		vector.FillRect(screen, x+w-1, y, 1, h, cfg.Green, false)   // Right
	}
}
