package systems

import (
	"fmt"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar and the run seed.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	margin := float32(cfg.UI.HealthBarMargin)
	barW := float32(cfg.UI.HealthBarWidth)
	barH := float32(cfg.UI.HealthBarHeight)

	vector.FillRect(screen, margin, margin, barW, barH, cfg.UI.HealthBarBgColor, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.FillRect(screen, margin, margin, barW*ratio, barH, cfg.UI.HealthBarFgColor, false)

	if dungeonEntry, ok := components.Dungeon.First(e.World); ok {
		data := components.Dungeon.Get(dungeonEntry)
		label := fmt.Sprintf("SEED %d  ROOMS %d", data.Seed, len(data.Dungeon.Rooms))
		text.Draw(screen, label, fonts.MainSmall.Get(),
			int(margin), cfg.C.Height-int(margin), cfg.UI.HUDTextColor)
	}
}
