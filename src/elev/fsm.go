// Contains the state machine of a single car.
package elev

import (
	"fmt"

	"liftsim/src/config"
	"liftsim/src/orders"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// NewLift validates cfg and returns an idle car on floor 1.
// A nil strategy means SimpleNearest and a nil listener drops notifications.
func NewLift(id string, cfg config.Config, strategy MoveStrategy, scheduler timer.Scheduler, listener Listener) (*Lift, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = SimpleNearest
	}
	if listener == nil {
		listener = nopListener{}
	}

	lift := &Lift{
		cfg:       cfg,
		strategy:  strategy,
		scheduler: scheduler,
		listener:  listener,
		log:       Logger.With().Str("lift", id).Logger(),
		floorTime: cfg.FloorTime(),
		floor:     1,
		dir:       types.Stop,
		behaviour: types.Stationary,
		calls:     orders.NewFloorSet(cfg.FloorCount),
		goes:      orders.NewFloorSet(cfg.FloorCount),
	}
	lift.log.Debug().
		Int("floors", cfg.FloorCount).
		Int64("floorTime", lift.floorTime).
		Int64("openCloseTime", cfg.OpenCloseTime).
		Msg("Lift initialized")
	return lift, nil
}

// Call presses the call button on a landing.
func (l *Lift) Call(floor int) error {
	if err := l.checkFloor(floor); err != nil {
		return err
	}
	l.log.Debug().Int("floor", floor).Msg("Hall call")
	l.calls.Set(floor)
	l.operate()
	return nil
}

// Go presses a floor button inside the car.
func (l *Lift) Go(floor int) error {
	if err := l.checkFloor(floor); err != nil {
		return err
	}
	l.log.Debug().Int("floor", floor).Msg("Car request")
	l.goes.Set(floor)
	l.operate()
	return nil
}

// State returns a snapshot of the car. The slices in it are not shared with the car.
func (l *Lift) State() types.LiftState {
	st := types.LiftState{
		Floor:        l.floor,
		Behaviour:    l.behaviour,
		Dir:          l.dir,
		Calls:        l.calls.Floors(),
		Goes:         l.goes.Floors(),
		TimerPending: l.timerPending,
	}
	if l.hasTarget {
		target := l.target
		st.Target = &target
	}
	return st
}

func (l *Lift) checkFloor(floor int) error {
	if floor < 1 || floor > l.cfg.FloorCount {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidFloor, floor, l.cfg.FloorCount)
	}
	return nil
}

// operate decides what to do next. It runs after every request and every finished transition.
func (l *Lift) operate() {
	if l.behaviour == types.Moving {
		return
	}

	// Requests for the current floor are consumed even while the doors are open,
	// so pressing the button again does not reopen them.
	requested := l.calls.Take(l.floor)
	requested = l.goes.Take(l.floor) || requested

	if l.behaviour == types.DoorOpen {
		return
	}

	if requested {
		l.openDoor()
		return
	}

	l.target, l.hasTarget = l.strategy.TargetFloor(l.calls, l.goes, l.floor, l.target, l.hasTarget)
	if !l.hasTarget {
		return
	}
	if l.target == l.floor || l.checkFloor(l.target) != nil {
		l.log.Error().Int("floor", l.floor).Int("target", l.target).Msg("Strategy returned unusable target")
		l.hasTarget = false
		return
	}

	l.dir = types.Down
	if l.target > l.floor {
		l.dir = types.Up
	}
	l.behaviour = types.Moving
	l.log.Debug().
		Int("floor", l.floor).
		Int("target", l.target).
		Stringer("dir", l.dir).
		Msg("Moving")
	l.schedule(l.floorTime, l.enterFloor)
}

func (l *Lift) openDoor() {
	if l.hasTarget && l.target == l.floor {
		l.hasTarget = false
	}
	l.behaviour = types.DoorOpen
	l.log.Debug().Int("floor", l.floor).Msg("Opening door")
	l.listener.DoorOpened()
	l.schedule(l.cfg.OpenCloseTime, l.closeDoor)
}

func (l *Lift) closeDoor() {
	l.behaviour = types.Stationary
	l.log.Debug().Int("floor", l.floor).Msg("Closing door")
	l.listener.DoorClosed()
	l.operate()
}

func (l *Lift) enterFloor() {
	l.floor += int(l.dir)
	l.log.Debug().Int("floor", l.floor).Msg("Entered floor")
	l.listener.FloorEntered(l.floor)
	l.behaviour = types.Stationary
	l.dir = types.Stop
	l.operate()
}

// schedule hands action to the scheduler. The car never has more than one action pending.
func (l *Lift) schedule(delay int64, action func()) {
	if l.timerPending {
		l.log.Error().Stringer("behaviour", l.behaviour).Msg("Timer already pending")
	}
	l.timerPending = true
	l.scheduler.Schedule(delay, func() {
		l.timerPending = false
		action()
	})
}
