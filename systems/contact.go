package systems

import (
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts resolves player/enemy overlaps through the resolv space:
// a falling player squashes the enemy underneath, anything else hurts the
// player. Must run after UpdateObjects.
func UpdateContacts(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerBody := components.Body.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	move := components.MoveState.Get(playerEntry)

	if move.Kind == components.MoveDead {
		return
	}

	check := playerObj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}

		// Stomp: falling, with the player's feet above the enemy's midline
		stomp := playerBody.Box.VY > 0 &&
			playerObj.Y+playerObj.H <= enemyObj.Y+enemyObj.H/2

		if stomp {
			squashEnemy(e, enemyEntry, enemyObj)
			playerBody.Box.VY = cfg.Player.StompBounce
			continue
		}

		hurtPlayer(playerEntry, player, playerBody, enemyEntry)
	}
}

// squashEnemy applies stomp damage, removing the enemy at zero health.
func squashEnemy(e *ecs.ECS, enemyEntry *donburi.Entry, enemyObj *resolv.Object) {
	enemy := components.Enemy.Get(enemyEntry)
	health := components.Health.Get(enemyEntry)

	health.Current -= cfg.Player.StompDamage
	enemy.HitFlash = cfg.Enemy.HitFlashFrames

	if health.Current > 0 {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(enemyObj)
	}
	e.World.Remove(enemyEntry.Entity())
}

// hurtPlayer damages the player and knocks them away from the enemy.
func hurtPlayer(playerEntry *donburi.Entry, player *components.PlayerData, playerBody *components.BodyData, enemyEntry *donburi.Entry) {
	if player.InvulnFrames > 0 {
		return
	}

	enemy := components.Enemy.Get(enemyEntry)
	enemyBody := components.Body.Get(enemyEntry)
	health := components.Health.Get(playerEntry)

	health.Current -= enemy.TypeConfig.Damage
	player.InvulnFrames = cfg.Player.InvulnFrames

	if playerBody.Box.Center().X < enemyBody.Box.Center().X {
		playerBody.Box.VX = -cfg.Player.WalkSpeed
	} else {
		playerBody.Box.VX = cfg.Player.WalkSpeed
	}
	playerBody.Box.VY = cfg.Player.HurtPop

	if health.Current <= 0 {
		KillPlayer(playerEntry)
	}
}
