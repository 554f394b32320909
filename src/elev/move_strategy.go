package elev

import "liftsim/src/orders"

// MoveStrategy picks the floor the car should travel to without stopping.
// It is asked on every floor the car reaches, so a committed target must be returned unchanged
// until the car gets there. ok is false when the car should stay where it is.
type MoveStrategy interface {
	TargetFloor(calls, goes *orders.FloorSet, current, target int, hasTarget bool) (floor int, ok bool)
}

type MoveStrategyFunc func(calls, goes *orders.FloorSet, current, target int, hasTarget bool) (int, bool)

func (f MoveStrategyFunc) TargetFloor(calls, goes *orders.FloorSet, current, target int, hasTarget bool) (int, bool) {
	return f(calls, goes, current, target, hasTarget)
}

// SimpleNearest sends the car to the nearest requested floor. Down is chosen only when strictly nearer,
// so equal distances go up.
var SimpleNearest MoveStrategy = MoveStrategyFunc(simpleNearest)

func simpleNearest(calls, goes *orders.FloorSet, current, target int, hasTarget bool) (int, bool) {
	if hasTarget && target != current {
		return target, true
	}

	joined := calls.Union(goes)
	up, hasUp := joined.Above(current)
	down, hasDown := joined.Below(current)

	switch {
	case hasUp && hasDown:
		if current-down < up-current {
			return down, true
		}
		return up, true
	case hasUp:
		return up, true
	case hasDown:
		return down, true
	}
	return 0, false
}
