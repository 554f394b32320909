// Package timer provides the schedulers that drive a car: a wall-clock one and a virtual one for tests.
package timer

import (
	"sync"
	"time"

	"liftsim/src/logger"
)

var Logger = logger.GetLogger()

// Scheduler runs action once, no earlier than delay time units after the call.
type Scheduler interface {
	Schedule(delay int64, action func())
}

// Real waits delay*unit of wall time per action. Expired actions are not run on the timer goroutine;
// they are handed to the car's owner through Fired so they execute under its mutual exclusion.
type Real struct {
	unit  time.Duration
	fired chan func()
	done  chan struct{}

	mu      sync.Mutex
	nextID  uint64
	timers  map[uint64]*time.Timer
	stopped bool
}

func NewReal(unit time.Duration) *Real {
	return &Real{
		unit:   unit,
		fired:  make(chan func()),
		done:   make(chan struct{}),
		timers: make(map[uint64]*time.Timer),
	}
}

func (r *Real) Schedule(delay int64, action func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		Logger.Debug().Int64("delay", delay).Msg("Scheduler stopped, action dropped")
		return
	}

	id := r.nextID
	r.nextID++
	r.timers[id] = time.AfterFunc(time.Duration(delay)*r.unit, func() {
		r.mu.Lock()
		delete(r.timers, id)
		r.mu.Unlock()

		Logger.Debug().Uint64("timer", id).Msg("Timer timed out")
		select {
		case r.fired <- action:
		case <-r.done:
		}
	})
}

// Fired delivers expired actions. The receiver must run them.
func (r *Real) Fired() <-chan func() {
	return r.fired
}

// Pending is the number of timers that have not expired yet.
func (r *Real) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels every pending timer. Later calls to Schedule are ignored.
func (r *Real) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
	close(r.done)
}
