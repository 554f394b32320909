package elev

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/config"
	"liftsim/src/orders"
	"liftsim/src/types"
)

var errNotServed = errors.New("strategy never serves floor")

// TimeToServe estimates how long it takes before the car opens its doors at floor if it is called there now.
// Pending door and travel timers are counted in full since their remaining time is not tracked.
func (l *Lift) TimeToServe(floor int) (int64, error) {
	if err := l.checkFloor(floor); err != nil {
		return 0, err
	}
	return simulateServe(l.cfg, l.strategy, l.State(), floor)
}

// simulateServe replays the state machine on a copy of state, one floor at a time.
// The caller's snapshot is left intact.
func simulateServe(cfg config.Config, strategy MoveStrategy, state types.LiftState, floor int) (int64, error) {
	sim := new(types.LiftState)
	if err := deepcopy.Copy(sim, state); err != nil {
		return 0, fmt.Errorf("copy lift state: %w", err)
	}

	floorTime := cfg.FloorTime()
	var duration int64

	switch sim.Behaviour {
	case types.DoorOpen:
		if sim.Floor == floor {
			return 0, nil
		}
		duration += cfg.OpenCloseTime
	case types.Moving:
		sim.Floor += int(sim.Dir)
		duration += floorTime
	}
	if !slices.Contains(sim.Calls, floor) && !slices.Contains(sim.Goes, floor) {
		sim.Calls = append(sim.Calls, floor)
	}

	maxSteps := 2 * cfg.FloorCount * (cfg.FloorCount + 1)
	for i := 0; i < maxSteps; i++ {
		if takeSimFloor(sim) {
			if sim.Floor == floor {
				return duration, nil
			}
			if sim.Target != nil && *sim.Target == sim.Floor {
				sim.Target = nil
			}
			duration += cfg.OpenCloseTime
		}

		calls := orders.NewFloorSet(cfg.FloorCount)
		goes := orders.NewFloorSet(cfg.FloorCount)
		for _, f := range sim.Calls {
			calls.Set(f)
		}
		for _, f := range sim.Goes {
			goes.Set(f)
		}
		target, hasTarget := 0, false
		if sim.Target != nil {
			target, hasTarget = *sim.Target, true
		}

		next, ok := strategy.TargetFloor(calls, goes, sim.Floor, target, hasTarget)
		if !ok || next == sim.Floor {
			break
		}
		sim.Target = &next
		if next > sim.Floor {
			sim.Floor++
		} else {
			sim.Floor--
		}
		duration += floorTime
	}
	return 0, fmt.Errorf("%w: %d", errNotServed, floor)
}

// takeSimFloor removes the simulated car's floor from both request lists.
func takeSimFloor(sim *types.LiftState) bool {
	here := func(f int) bool { return f == sim.Floor }
	requested := slices.ContainsFunc(sim.Calls, here) || slices.ContainsFunc(sim.Goes, here)
	sim.Calls = slices.DeleteFunc(sim.Calls, here)
	sim.Goes = slices.DeleteFunc(sim.Goes, here)
	return requested
}
