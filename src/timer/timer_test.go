package timer

import (
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"liftsim/src/logger"
)

const TEST_UNIT = 5 * time.Millisecond

func init() {
	logger.GetLoggerConfigured(zerolog.Disabled, "")
}

func TestVirtualOrdering(t *testing.T) {
	v := NewVirtual()
	var ran []string
	record := func(name string) func() {
		return func() { ran = append(ran, name) }
	}

	v.Schedule(10, record("c"))
	v.Schedule(3, record("a"))
	v.Schedule(10, record("d"))
	v.Schedule(5, record("b"))
	v.RunUntilIdle()

	if !slices.Equal(ran, []string{"a", "b", "c", "d"}) {
		t.Errorf("actions ran as %v, expected [a b c d]", ran)
	}
	if v.Now() != 10 {
		t.Errorf("Now() = %d, expected 10", v.Now())
	}
}

func TestVirtualNestedSchedule(t *testing.T) {
	v := NewVirtual()
	var times []int64
	v.Schedule(4, func() {
		times = append(times, v.Now())
		v.Schedule(0, func() { times = append(times, v.Now()) })
		v.Schedule(6, func() { times = append(times, v.Now()) })
	})
	v.RunUntilIdle()

	if !slices.Equal(times, []int64{4, 4, 10}) {
		t.Errorf("fire times = %v, expected [4 4 10]", times)
	}
}

func TestVirtualAdvanceTo(t *testing.T) {
	v := NewVirtual()
	fired := 0
	v.Schedule(5, func() { fired++ })
	v.Schedule(8, func() { fired++ })

	v.AdvanceTo(4)
	if fired != 0 || v.Now() != 4 {
		t.Errorf("after AdvanceTo(4): fired=%d now=%d", fired, v.Now())
	}
	v.Advance(1)
	if fired != 1 || v.Pending() != 1 {
		t.Errorf("after Advance(1): fired=%d pending=%d", fired, v.Pending())
	}
	v.AdvanceTo(20)
	if fired != 2 || v.Now() != 20 {
		t.Errorf("after AdvanceTo(20): fired=%d now=%d", fired, v.Now())
	}
	if v.Step() {
		t.Errorf("Step() on empty queue returned true")
	}
}

func TestRealDeliversOnFired(t *testing.T) {
	r := NewReal(TEST_UNIT)
	defer r.Stop()

	start := time.Now()
	ran := false
	r.Schedule(2, func() { ran = true })

	select {
	case action := <-r.Fired():
		action()
	case <-time.After(time.Second):
		t.Fatalf("scheduled action never fired")
	}
	if !ran {
		t.Errorf("fired action was not the scheduled one")
	}
	if elapsed := time.Since(start); elapsed < 2*TEST_UNIT {
		t.Errorf("action fired after %v, expected at least %v", elapsed, 2*TEST_UNIT)
	}
}

func TestRealStopDropsPending(t *testing.T) {
	r := NewReal(TEST_UNIT)
	r.Schedule(100, func() {})
	if r.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", r.Pending())
	}

	r.Stop()
	r.Stop()
	if r.Pending() != 0 {
		t.Errorf("Pending() after Stop = %d, expected 0", r.Pending())
	}

	r.Schedule(0, func() {})
	select {
	case <-r.Fired():
		t.Errorf("action scheduled after Stop fired")
	case <-time.After(10 * TEST_UNIT):
	}
}
