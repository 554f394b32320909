// State types are defined in elev package to make method receivers possible in fsm.go and elev_state.go.
package elev

import (
	"errors"

	"github.com/rs/zerolog"

	"liftsim/src/config"
	"liftsim/src/orders"
	"liftsim/src/timer"
	"liftsim/src/types"
)

var (
	ErrInvalidFloor = errors.New("invalid floor")
	ErrStopped      = errors.New("lift manager stopped")
)

// Listener receives the car's notifications. Calls happen on the goroutine that drives the car.
type Listener interface {
	DoorOpened()
	DoorClosed()
	FloorEntered(floor int)
}

type nopListener struct{}

func (nopListener) DoorOpened()      {}
func (nopListener) DoorClosed()      {}
func (nopListener) FloorEntered(int) {}

// Lift is a single car. It starts on floor 1 with the doors closed.
// A Lift is not safe for concurrent use: Call, Go, State and every scheduled action must run
// under mutual exclusion. LiftMgr provides it.
type Lift struct {
	cfg       config.Config
	strategy  MoveStrategy
	scheduler timer.Scheduler
	listener  Listener
	log       zerolog.Logger

	floorTime int64

	floor        int
	target       int
	hasTarget    bool
	dir          types.Direction
	behaviour    types.Behaviour
	timerPending bool

	calls *orders.FloorSet
	goes  *orders.FloorSet
}

// LiftCmd is run by the manager goroutine with exclusive access to the car.
type LiftCmd struct {
	Exec func(lift *Lift)
}

// LiftMgr owns a Lift and serializes its access.
type LiftMgr struct {
	Cmds chan LiftCmd
	done chan struct{}
}
