package systems

import (
	"math"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/dungeon"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	world := getDungeon(e)
	if world == nil {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		updateSinglePlayer(e, entry, world)
	})
}

func updateSinglePlayer(e *ecs.ECS, entry *donburi.Entry, world *dungeon.Dungeon) {
	input := getOrCreateInput(e)
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)
	state := components.State.Get(entry)
	move := components.MoveState.Get(entry)

	switch move.Kind {
	case components.MoveDead:
		updateDeadPlayer(entry, player, body, move)
	case components.MoveHanging:
		updateHangingPlayer(input, player, body, state, move)
	case components.MoveOnLadder:
		updateLadderPlayer(input, world, body, state, move)
	default:
		updateNormalPlayer(input, world, player, body, state, move)
	}

	state.StateTimer++
	if state.CurrentState != state.PreviousState {
		state.StateTimer = 0
		state.PreviousState = state.CurrentState
	}

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}

func updateNormalPlayer(input *components.InputData, world *dungeon.Dungeon, player *components.PlayerData, body *components.BodyData, state *components.StateData, move *components.MoveStateData) {
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)
	up := GetAction(input, cfg.ActionMoveUp)
	down := GetAction(input, cfg.ActionMoveDown)
	jump := GetAction(input, cfg.ActionJump)

	// Knockback hit-stun: the shove decays before input takes over again
	if player.InvulnFrames > cfg.Player.InvulnFrames-cfg.Player.HitStunFrames {
		body.Box.VX = gamemath.ApplyFriction(body.Box.VX, cfg.Player.KnockbackFriction)
	} else {
		// Horizontal walk
		body.Box.VX = 0
		if left.Pressed && !right.Pressed {
			body.Box.VX = -cfg.Player.WalkSpeed
			player.Direction.X = cfg.DirectionLeft
		}
		if right.Pressed && !left.Pressed {
			body.Box.VX = cfg.Player.WalkSpeed
			player.Direction.X = cfg.DirectionRight
		}
	}

	// Ladder mount: up grabs a ladder at the body center, down grabs one just
	// below the feet (climbing down from a platform top).
	center := body.Box.Center()
	if up.Pressed && tilemap.IsLadder(world, int(math.Floor(center.X)), int(math.Floor(center.Y))) {
		mountLadder(body, move, state)
		return
	}
	if down.Pressed && body.OnGround &&
		tilemap.IsLadder(world, int(math.Floor(center.X)), int(math.Floor(body.Box.Bottom()+0.5))) {
		mountLadder(body, move, state)
		body.Box.VY = cfg.Player.ClimbSpeed
	}

	if jump.JustPressed {
		if down.Pressed && body.OnGround {
			// Drop through a one-way platform
			body.DropTimer = 8
		} else if body.OnGround {
			body.Box.VY = cfg.Player.JumpSpeed
			state.CurrentState = cfg.Jump
		}
	}

	before := stepBody(world, body, true)
	landOnPlatforms(world, body, before)

	// Ledge grab: only while falling, pressing toward a wall
	if !body.OnGround {
		if dir, ok := pressedDir(left, right); ok {
			if pos, grabbed := gamemath.CheckHang(before, body.Box, world, dir); grabbed {
				body.Box.X = pos.X
				body.Box.Y = pos.Y
				body.Box.VX = 0
				body.Box.VY = 0
				move.Kind = components.MoveHanging
				move.HangDir = dir
				state.CurrentState = cfg.LedgeGrab
				return
			}
		}
	}

	switch {
	case !body.OnGround:
		if body.Box.VY < 0 {
			state.CurrentState = cfg.Jump
		} else {
			state.CurrentState = cfg.Fall
		}
	case body.Box.VX != 0:
		state.CurrentState = cfg.Walk
	default:
		state.CurrentState = cfg.Idle
	}
}

func updateHangingPlayer(input *components.InputData, player *components.PlayerData, body *components.BodyData, state *components.StateData, move *components.MoveStateData) {
	jump := GetAction(input, cfg.ActionJump)
	down := GetAction(input, cfg.ActionMoveDown)
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)

	// Hanging pins the body: no gravity, no sweep
	body.Box.VX = 0
	body.Box.VY = 0

	if jump.JustPressed {
		body.Box.VY = cfg.Player.HangJumpSpeed
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Jump
		return
	}
	if down.Pressed {
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Fall
		return
	}

	// Pressing away from the wall lets go
	away := (move.HangDir == tilemap.DirRight && left.Pressed) ||
		(move.HangDir == tilemap.DirLeft && right.Pressed)
	if away {
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Fall
		return
	}

	if move.HangDir == tilemap.DirLeft {
		player.Direction.X = cfg.DirectionLeft
	} else {
		player.Direction.X = cfg.DirectionRight
	}
	state.CurrentState = cfg.LedgeGrab
}

func updateLadderPlayer(input *components.InputData, world *dungeon.Dungeon, body *components.BodyData, state *components.StateData, move *components.MoveStateData) {
	up := GetAction(input, cfg.ActionMoveUp)
	down := GetAction(input, cfg.ActionMoveDown)
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)
	jump := GetAction(input, cfg.ActionJump)

	if jump.JustPressed {
		body.Box.VY = cfg.Player.JumpSpeed
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Jump
		return
	}
	if left.JustPressed || right.JustPressed {
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Fall
		return
	}

	body.Box.VX = 0
	body.Box.VY = 0
	if up.Pressed && !down.Pressed {
		body.Box.VY = -cfg.Player.ClimbSpeed
	}
	if down.Pressed && !up.Pressed {
		body.Box.VY = cfg.Player.ClimbSpeed
	}

	stepBody(world, body, false)

	// Dismount when the body center leaves the ladder column, or when the
	// climb lands on solid ground.
	center := body.Box.Center()
	if !tilemap.IsLadder(world, int(math.Floor(center.X)), int(math.Floor(center.Y))) || body.OnGround {
		move.Kind = components.MoveNormal
		state.CurrentState = cfg.Idle
		return
	}
	state.CurrentState = cfg.Climb
}

func updateDeadPlayer(entry *donburi.Entry, player *components.PlayerData, body *components.BodyData, move *components.MoveStateData) {
	if move.RespawnTimer > 0 {
		move.RespawnTimer--
		return
	}

	// Out of respawns; the scene ends the run
	if player.Deaths >= cfg.Player.MaxDeaths {
		return
	}

	// Respawn at the dungeon entrance
	body.Box.X = player.SpawnX
	body.Box.Y = player.SpawnY
	body.Box.VX = 0
	body.Box.VY = 0
	body.DropTimer = 0

	health := components.Health.Get(entry)
	health.Current = health.Max
	player.InvulnFrames = cfg.Player.InvulnFrames

	move.Kind = components.MoveNormal
	state := components.State.Get(entry)
	state.CurrentState = cfg.Idle
}

// mountLadder snaps the body to the ladder column and switches modes.
func mountLadder(body *components.BodyData, move *components.MoveStateData, state *components.StateData) {
	col := math.Floor(body.Box.Center().X)
	body.Box.X = col + (1-body.Box.W)/2
	body.Box.VX = 0
	body.Box.VY = 0
	move.Kind = components.MoveOnLadder
	state.CurrentState = cfg.Climb
}

// pressedDir maps held directions to a horizontal facing for the ledge probe.
func pressedDir(left, right components.ActionState) (tilemap.Dir, bool) {
	if left.Pressed && !right.Pressed {
		return tilemap.DirLeft, true
	}
	if right.Pressed && !left.Pressed {
		return tilemap.DirRight, true
	}
	return 0, false
}

// KillPlayer starts the death sequence.
func KillPlayer(entry *donburi.Entry) {
	move := components.MoveState.Get(entry)
	if move.Kind == components.MoveDead {
		return
	}
	move.Kind = components.MoveDead
	move.RespawnTimer = cfg.Player.RespawnDelayFrames

	player := components.Player.Get(entry)
	player.Deaths++

	body := components.Body.Get(entry)
	body.Box.VX = 0
	body.Box.VY = 0

	state := components.State.Get(entry)
	state.CurrentState = cfg.Die
}

// getDungeon returns the assembled dungeon, or nil before the scene builds it.
func getDungeon(e *ecs.ECS) *dungeon.Dungeon {
	entry, ok := components.Dungeon.First(e.World)
	if !ok {
		return nil
	}
	return components.Dungeon.Get(entry).Dungeon
}
