package config

// StateID identifies a logical animation/behavior state
type StateID int

const (
	StateNone StateID = iota

	Idle
	Walk
	Jump
	Fall
	LedgeGrab
	Climb
	Hit
	Die

	StatePatrol
	StateHop
	StateWander
)
