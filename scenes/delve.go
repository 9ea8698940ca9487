package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/stonedelve/assets"
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/systems"
	factory2 "github.com/automoto/stonedelve/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DelveScene runs one dungeon run from assembly to death or quit
type DelveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	seed         int64
	once         sync.Once
}

// NewDelveScene creates a delve scene; the seed comes from the -seed flag or,
// when that is zero, the clock.
func NewDelveScene(sc SceneChanger) *DelveScene {
	return &DelveScene{sceneChanger: sc, seed: cfg.Dungeon.Seed}
}

// NewDelveSceneWithSeed creates a delve scene that replays a known layout
func NewDelveSceneWithSeed(sc SceneChanger, seed int64) *DelveScene {
	return &DelveScene{sceneChanger: sc, seed: seed}
}

func (ds *DelveScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if ds.checkRunOver() {
		ds.sceneChanger.ChangeScene(NewGameOverScene(ds.sceneChanger))
	}
}

// checkRunOver returns true once the player is dead with no respawns left
func (ds *DelveScene) checkRunOver() bool {
	if ds.ecs == nil {
		return false
	}

	playerEntry, ok := components.Player.First(ds.ecs.World)
	if !ok {
		return true
	}
	player := components.Player.Get(playerEntry)
	move := components.MoveState.Get(playerEntry)

	return move.Kind == components.MoveDead &&
		move.RespawnTimer == 0 &&
		player.Deaths >= cfg.Player.MaxDeaths
}

func (ds *DelveScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DelveScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ds.sceneChanger)
	}

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(ds.sceneChanger, createMenuScene))

	// Gameplay systems freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDoors))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateContacts))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawDungeon)
	ecs.AddRenderer(cfg.Default, systems.DrawDoors)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ds.ecs = ecs

	seed := ds.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Assemble the dungeon FIRST; the space is sized from its bounds.
	_, d, err := factory2.CreateDungeon(ds.ecs, assets.FS, seed)
	if err != nil {
		panic("failed to assemble dungeon: " + err.Error())
	}

	_, _, w, h := d.Bounds()
	factory2.CreateSpace(ds.ecs,
		w*cfg.C.TileSize,
		h*cfg.C.TileSize,
		16, 16,
	)

	factory2.CreateCamera(ds.ecs)

	// Player enters standing on the first room's floor
	entrance := d.Rooms[0]
	spawnX := float64(entrance.X) + float64(entrance.W)/2 - cfg.Player.Width/2
	spawnY := float64(entrance.Y+entrance.H-1) - cfg.Player.Height
	factory2.CreatePlayer(ds.ecs, spawnX, spawnY)

	// Snap camera to the player start to prevent panning from (0,0)
	systems.SnapCameraTo(ds.ecs, spawnX+cfg.Player.Width/2, spawnY+cfg.Player.Height/2)

	for _, spawn := range d.EnemySpawns() {
		factory2.CreateEnemy(ds.ecs, spawn.X, spawn.Y, spawn.EnemyType)
	}

	// A failed save is logged inside and never blocks the run
	_ = systems.SaveLastRun(seed, len(d.Rooms))
}
