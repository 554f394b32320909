package types

type Direction int

const (
	Down Direction = -1
	Stop Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Stop:
		return "Stop"
	default:
		return "Undefined"
	}
}

// Behaviour is the mode of the car.
type Behaviour int

const (
	Stationary Behaviour = iota
	DoorOpen
	Moving
)

func (b Behaviour) String() string {
	switch b {
	case Stationary:
		return "Stationary"
	case DoorOpen:
		return "DoorOpen"
	case Moving:
		return "Moving"
	default:
		return "Undefined"
	}
}

type EventType int

const (
	DoorOpened EventType = iota
	DoorClosed
	FloorEntered
)

func (e EventType) String() string {
	switch e {
	case DoorOpened:
		return "DOOR OPEN"
	case DoorClosed:
		return "DOOR CLOSE"
	case FloorEntered:
		return "ENTER FLOOR"
	default:
		return "UNKNOWN"
	}
}

// Event is one notification from the car, stamped with the time it was observed at.
// Floor is only set for FloorEntered.
type Event struct {
	Type  EventType
	Floor int
	Time  int64
}

// LiftState is a read-only snapshot of a car.
type LiftState struct {
	Floor        int
	Behaviour    Behaviour
	Dir          Direction
	Target       *int
	Calls        []int
	Goes         []int
	TimerPending bool
}
