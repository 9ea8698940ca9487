package systems

import (
	"math"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/automoto/stonedelve/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraTopLeft returns the camera's top-left corner in pixels.
func cameraTopLeft(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2,
		camera.Position.Y - float64(cfg.C.Height)/2
}

// DrawDungeon renders the visible slice of the tile grid.
func DrawDungeon(e *ecs.ECS, screen *ebiten.Image) {
	world := getDungeon(e)
	if world == nil {
		return
	}

	screen.Fill(cfg.Render.Background)

	camX, camY := cameraTopLeft(e)
	ts := float64(cfg.C.TileSize)

	startCol := int(math.Floor(camX / ts))
	startRow := int(math.Floor(camY / ts))
	endCol := startCol + cfg.C.Width/cfg.C.TileSize + 2
	endRow := startRow + cfg.C.Height/cfg.C.TileSize + 2

	for y := startRow; y < endRow; y++ {
		for x := startCol; x < endCol; x++ {
			b, o := world.TileAt(x, y)
			sx := float32(float64(x)*ts - camX)
			sy := float32(float64(y)*ts - camY)

			switch b {
			case tilemap.BaseStone:
				vector.FillRect(screen, sx, sy, float32(ts), float32(ts), cfg.Render.StoneColor, false)
			case tilemap.BaseWood:
				vector.FillRect(screen, sx, sy, float32(ts), float32(ts), cfg.Render.WoodColor, false)
			}

			if o.Platform() {
				vector.FillRect(screen, sx, sy, float32(ts), 4, cfg.Render.PlatformColor, false)
			}
			if o.Ladder() {
				drawLadder(screen, sx, sy, float32(ts))
			}
		}
	}
}

// drawLadder renders two rails and three rungs inside one tile.
func drawLadder(screen *ebiten.Image, sx, sy, ts float32) {
	rail := ts / 8
	vector.FillRect(screen, sx+rail, sy, rail, ts, cfg.Render.LadderColor, false)
	vector.FillRect(screen, sx+ts-2*rail, sy, rail, ts, cfg.Render.LadderColor, false)
	for i := 0; i < 3; i++ {
		rungY := sy + ts*float32(2*i+1)/6
		vector.FillRect(screen, sx+rail, rungY, ts-2*rail, 2, cfg.Render.LadderColor, false)
	}
}

// DrawDoors renders door slabs sliding shut from the top of their cell.
func DrawDoors(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraTopLeft(e)
	ts := float64(cfg.C.TileSize)

	components.Door.Each(e.World, func(entry *donburi.Entry) {
		d := components.Door.Get(entry)
		if d.Openness >= 1 {
			return
		}
		sx := float32(float64(d.Door.X)*ts - camX)
		sy := float32(float64(d.Door.Y)*ts - camY)
		slab := float32(ts * (1 - d.Openness))
		vector.FillRect(screen, sx, sy, float32(ts), slab, cfg.Render.DoorColor, false)
	})
}

// DrawEntities renders enemies and the player as tinted boxes.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraTopLeft(e)
	ts := float64(cfg.C.TileSize)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		body := components.Body.Get(entry)

		tint := enemy.TypeConfig.TintColor
		if enemy.HitFlash > 0 {
			tint = cfg.White
		}
		vector.FillRect(screen,
			float32(body.Box.X*ts-camX), float32(body.Box.Y*ts-camY),
			float32(body.Box.W*ts), float32(body.Box.H*ts),
			tint, false)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		body := components.Body.Get(entry)
		move := components.MoveState.Get(entry)

		if move.Kind == components.MoveDead {
			return
		}
		// Blink while invulnerable
		if player.InvulnFrames > 0 && player.InvulnFrames%10 >= 5 {
			return
		}
		vector.FillRect(screen,
			float32(body.Box.X*ts-camX), float32(body.Box.Y*ts-camY),
			float32(body.Box.W*ts), float32(body.Box.H*ts),
			cfg.Render.PlayerColor, false)
	})
}
