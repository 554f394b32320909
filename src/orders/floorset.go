// Package orders keeps pending floor requests.
package orders

// FloorSet is an ordered set of floors 1..floorCount. Floor 0 is never used.
type FloorSet struct {
	floors []bool
}

func NewFloorSet(floorCount int) *FloorSet {
	return &FloorSet{floors: make([]bool, floorCount+1)}
}

// FloorCount is the highest floor the set can hold.
func (fs *FloorSet) FloorCount() int {
	return len(fs.floors) - 1
}

func (fs *FloorSet) valid(floor int) bool {
	return floor >= 1 && floor < len(fs.floors)
}

// Set adds floor. Floors outside the set's range are ignored.
func (fs *FloorSet) Set(floor int) {
	if fs.valid(floor) {
		fs.floors[floor] = true
	}
}

func (fs *FloorSet) Clear(floor int) {
	if fs.valid(floor) {
		fs.floors[floor] = false
	}
}

func (fs *FloorSet) Has(floor int) bool {
	return fs.valid(floor) && fs.floors[floor]
}

// Take clears floor and reports whether it was set.
func (fs *FloorSet) Take(floor int) bool {
	had := fs.Has(floor)
	fs.Clear(floor)
	return had
}

func (fs *FloorSet) Empty() bool {
	for _, set := range fs.floors {
		if set {
			return false
		}
	}
	return true
}

// Union returns a new set holding the floors of both. The result covers the larger range.
func (fs *FloorSet) Union(other *FloorSet) *FloorSet {
	out := NewFloorSet(max(fs.FloorCount(), other.FloorCount()))
	for _, set := range []*FloorSet{fs, other} {
		for floor, on := range set.floors {
			if on {
				out.floors[floor] = true
			}
		}
	}
	return out
}

// Above returns the nearest floor in the set strictly above floor.
func (fs *FloorSet) Above(floor int) (int, bool) {
	for f := max(floor+1, 1); f < len(fs.floors); f++ {
		if fs.floors[f] {
			return f, true
		}
	}
	return 0, false
}

// Below returns the nearest floor in the set strictly below floor.
func (fs *FloorSet) Below(floor int) (int, bool) {
	for f := min(floor-1, len(fs.floors)-1); f >= 1; f-- {
		if fs.floors[f] {
			return f, true
		}
	}
	return 0, false
}

// Floors lists the set in ascending order.
func (fs *FloorSet) Floors() []int {
	var out []int
	for floor, on := range fs.floors {
		if on {
			out = append(out, floor)
		}
	}
	return out
}
