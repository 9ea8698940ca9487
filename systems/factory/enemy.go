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

// CreateEnemy spawns an enemy of the named type with its top-left corner at
// the given fractional tile coordinates.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) *donburi.Entry {
	// Use the requested enemy type, default to "Slime" if not found
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		enemyTypeName = "Slime"
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	ts := float64(cfg.C.TileSize)
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x*ts, y*ts, enemyType.Width*ts, enemyType.Height*ts)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType,
		Direction:  components.Vector{X: -1, Y: 0}, // Start facing left
	})
	components.Body.SetValue(enemy, components.BodyData{
		Box: gamemath.BoundingBox{
			X: x, Y: y,
			W: enemyType.Width, H: enemyType.Height,
		},
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	return enemy
}
