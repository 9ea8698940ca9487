package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/fonts"
	"github.com/automoto/stonedelve/scenes"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/automoto/stonedelve/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Main, goregular.TTF)
	fonts.LoadFontWithSize(fonts.MainBold, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.MainTitle, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.MainSmall, goregular.TTF, config.UI.HUDFontSize)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDelveScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one from the clock)")
	rooms := flag.Int("rooms", 0, "target room count (0 keeps the default)")
	skipMenu := flag.Bool("skip-menu", false, "jump straight into a delve")
	showBoxes := flag.Bool("boxes", false, "outline collision boxes")
	importTMX := flag.String("import-tmx", "", "convert a Tiled map into a room template and exit")
	roomsDir := flag.String("rooms-dir", "rooms", "room folder for -import-tmx output")
	flag.Parse()

	if *importTMX != "" {
		if err := importRoom(*importTMX, *roomsDir); err != nil {
			log.Fatal(err)
		}
		return
	}

	config.Dungeon.Seed = *seed
	if *rooms > 0 {
		config.Dungeon.TargetRooms = *rooms
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowBoxes = *showBoxes

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowTitle(config.Menu.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
		if saved.ShowBoxes {
			config.Debug.ShowBoxes = true
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

// importRoom converts a Tiled map into the next room_<n>.json under dir.
func importRoom(tmxPath, dir string) error {
	room, err := tilemap.ImportTMX(os.DirFS("."), tmxPath)
	if err != nil {
		return err
	}
	path, err := tilemap.NextRoomPath(dir)
	if err != nil {
		return err
	}
	if err := tilemap.SaveRoom(room, path); err != nil {
		return err
	}
	log.Printf("imported %s -> %s (%dx%d, %d doors)", tmxPath, path, room.W, room.H, len(room.Doors))
	return nil
}
