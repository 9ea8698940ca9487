package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/dungeon"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/automoto/stonedelve/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// slimeAggroRange is how close, in tiles, the player must be before a slime
// hops toward them instead of idling.
const slimeAggroRange = 6.0

func UpdateEnemies(e *ecs.ECS) {
	world := getDungeon(e)
	if world == nil {
		return
	}

	var playerBody *components.BodyData
	if playerEntry, ok := tags.Player.First(e.World); ok {
		playerBody = components.Body.Get(playerEntry)
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		updateSingleEnemy(entry, world, playerBody)
	})
}

func updateSingleEnemy(entry *donburi.Entry, world *dungeon.Dungeon, playerBody *components.BodyData) {
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	state := components.State.Get(entry)
	tc := enemy.TypeConfig

	switch {
	case tc.Flies:
		updateFlier(enemy, body, state)
		stepBody(world, body, false)
		// Bounce off whatever was hit
		if body.OnLeft || body.OnRight {
			enemy.Direction.X = -enemy.Direction.X
		}
		if body.OnCeiling || body.OnGround {
			enemy.Direction.Y = -enemy.Direction.Y
		}

	case tc.Hops:
		updateHopper(enemy, body, state, playerBody)
		before := stepBody(world, body, true)
		landOnPlatforms(world, body, before)
		if body.OnLeft || body.OnRight {
			enemy.Direction.X = -enemy.Direction.X
		}

	default:
		updateCrawler(enemy, body, state, world)
		before := stepBody(world, body, true)
		landOnPlatforms(world, body, before)
		if body.OnLeft || body.OnRight {
			enemy.Direction.X = -enemy.Direction.X
		}
	}

	if enemy.HitFlash > 0 {
		enemy.HitFlash--
	}
}

// updateFlier wanders freely; gravity does not apply.
func updateFlier(enemy *components.EnemyData, body *components.BodyData, state *components.StateData) {
	tc := enemy.TypeConfig

	enemy.WanderTimer--
	if enemy.WanderTimer <= 0 || (enemy.Direction.X == 0 && enemy.Direction.Y == 0) {
		enemy.Direction.X = float64(rand.Intn(3) - 1)
		enemy.Direction.Y = float64(rand.Intn(3) - 1)
		enemy.WanderTimer = 60 + rand.Intn(90)
	}

	body.Box.VX = enemy.Direction.X * tc.Speed
	body.Box.VY = enemy.Direction.Y * tc.Speed * 0.5
	state.CurrentState = cfg.StateWander
}

// updateHopper idles on the ground and lunges at a nearby player in short
// gravity-bound hops.
func updateHopper(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, playerBody *components.BodyData) {
	tc := enemy.TypeConfig

	if !body.OnGround {
		// Keep horizontal momentum for the whole arc
		body.Box.VX = enemy.Direction.X * tc.Speed
		return
	}

	// Slide to a stop after landing
	body.Box.VX = gamemath.ApplyFriction(body.Box.VX, cfg.Enemy.LandingFriction)
	state.CurrentState = cfg.StatePatrol
	if enemy.HopTimer > 0 {
		enemy.HopTimer--
		return
	}
	if playerBody == nil {
		return
	}

	dx := playerBody.Box.Center().X - body.Box.Center().X
	dy := playerBody.Box.Center().Y - body.Box.Center().Y
	if math.Hypot(dx, dy) > slimeAggroRange {
		return
	}

	if dx < 0 {
		enemy.Direction.X = -1
	} else {
		enemy.Direction.X = 1
	}
	body.Box.VX = enemy.Direction.X * tc.Speed
	body.Box.VY = tc.HopSpeed
	enemy.HopTimer = tc.HopCooldown
	state.CurrentState = cfg.StateHop
}

// updateCrawler walks the floor, reversing at walls and, when configured, at
// ledges.
func updateCrawler(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, world *dungeon.Dungeon) {
	tc := enemy.TypeConfig

	if enemy.Direction.X == 0 {
		enemy.Direction.X = 1
	}

	if tc.TurnAtLedges && body.OnGround && crawlerAtLedge(body, world, enemy.Direction.X) {
		enemy.Direction.X = -enemy.Direction.X
	}

	body.Box.VX = enemy.Direction.X * tc.Speed
	state.CurrentState = cfg.StatePatrol
}

// crawlerAtLedge reports whether the tile below the leading edge is open.
func crawlerAtLedge(body *components.BodyData, world *dungeon.Dungeon, dirX float64) bool {
	var probeX float64
	if dirX > 0 {
		probeX = body.Box.Right() + tilemap.CornerEpsilon
	} else {
		probeX = body.Box.X - tilemap.CornerEpsilon
	}
	col := int(math.Floor(probeX))
	row := int(math.Floor(body.Box.Bottom() + 0.5))
	return !tilemap.IsSolid(world, col, row)
}
