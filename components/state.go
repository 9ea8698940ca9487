package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/tilemap"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

// MoveKind discriminates the player's movement mode. The per-kind fields in
// MoveStateData are only meaningful for their kind.
type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveHanging
	MoveOnLadder
	MoveDead
)

type MoveStateData struct {
	Kind MoveKind

	// MoveHanging
	HangDir tilemap.Dir

	// MoveDead
	RespawnTimer int
}

var MoveState = donburi.NewComponentType[MoveStateData]()
