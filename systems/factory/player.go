package factory

import (
	"github.com/automoto/stonedelve/archetypes"
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet-level top-left corner at the
// given fractional tile coordinates.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ts := float64(cfg.C.TileSize)
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x*ts, y*ts, cfg.Player.Width*ts, cfg.Player.Height*ts)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction:    components.Vector{X: 1, Y: 0},
		InvulnFrames: 0,
		SpawnX:       x,
		SpawnY:       y,
	})
	components.Body.SetValue(player, components.BodyData{
		Box: gamemath.BoundingBox{
			X: x, Y: y,
			W: cfg.Player.Width, H: cfg.Player.Height,
		},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.MoveState.SetValue(player, components.MoveStateData{
		Kind: components.MoveNormal,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
