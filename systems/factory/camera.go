package factory

import (
	"github.com/automoto/stonedelve/archetypes"
	"github.com/automoto/stonedelve/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
