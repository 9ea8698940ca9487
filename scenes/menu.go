package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/stonedelve/systems"
	"github.com/automoto/stonedelve/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	lastRun      *systems.SavedRun
	once         sync.Once
	shouldDelve  bool
	shouldReplay bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldDelve {
		ms.sceneChanger.ChangeScene(NewDelveScene(ms.sceneChanger))
		return
	}
	if ms.shouldReplay && ms.lastRun != nil {
		ms.sceneChanger.ChangeScene(NewDelveSceneWithSeed(ms.sceneChanger, ms.lastRun.Seed))
		return
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	lastRun, err := systems.LoadLastRun()
	if err == nil {
		ms.lastRun = lastRun
	}

	ms.menuUI = ui.NewMenuUI(
		ms.lastRun,
		func() { ms.shouldDelve = true },
		func() { ms.shouldReplay = true },
		func() { os.Exit(0) },
	)
}
