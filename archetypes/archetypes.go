package archetypes

import (
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Body,
		components.State,
		components.MoveState,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Body,
		components.State,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
	)
	Space = newArchetype(
		components.Space,
	)
	Dungeon = newArchetype(
		components.Dungeon,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
