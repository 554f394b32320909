// Package notify holds listeners for car notifications.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"liftsim/src/types"
)

// LogListener writes every notification to a logger.
type LogListener struct {
	Log *zerolog.Logger
}

func (l LogListener) DoorOpened() {
	l.Log.Info().Msg(types.DoorOpened.String())
}

func (l LogListener) DoorClosed() {
	l.Log.Info().Msg(types.DoorClosed.String())
}

func (l LogListener) FloorEntered(floor int) {
	l.Log.Info().Int("floor", floor).Msgf("%v %d", types.FloorEntered, floor)
}

// Recorder keeps every notification stamped with the time returned by Clock.
type Recorder struct {
	Clock func() int64

	mu     sync.Mutex
	events []types.Event
}

func NewRecorder(clock func() int64) *Recorder {
	return &Recorder{Clock: clock}
}

func (r *Recorder) record(eventType types.EventType, floor int) {
	var now int64
	if r.Clock != nil {
		now = r.Clock()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, types.Event{Type: eventType, Floor: floor, Time: now})
}

func (r *Recorder) DoorOpened()            { r.record(types.DoorOpened, 0) }
func (r *Recorder) DoorClosed()            { r.record(types.DoorClosed, 0) }
func (r *Recorder) FloorEntered(floor int) { r.record(types.FloorEntered, floor) }

// Events returns the recorded notifications in order.
func (r *Recorder) Events() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Event(nil), r.events...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Listener mirrors elev.Listener so this package does not depend on elev.
type Listener interface {
	DoorOpened()
	DoorClosed()
	FloorEntered(floor int)
}

// Multi forwards each notification to all listeners in order.
type Multi []Listener

func (m Multi) DoorOpened() {
	for _, l := range m {
		l.DoorOpened()
	}
}

func (m Multi) DoorClosed() {
	for _, l := range m {
		l.DoorClosed()
	}
}

func (m Multi) FloorEntered(floor int) {
	for _, l := range m {
		l.FloorEntered(floor)
	}
}
