package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents the available pause menu selections
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuFullscreen
	MenuAbandon
)

// PauseData stores the current state of the pause system
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

// Pause is the component type for pause state
var Pause = donburi.NewComponentType[PauseData]()
