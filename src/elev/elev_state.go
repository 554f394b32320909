package elev

import (
	"context"

	"liftsim/src/logger"
	"liftsim/src/types"
)

var Logger = logger.GetLogger()

// StartLiftMgr starts the goroutine that owns lift. Every command and every action received on fired
// runs on it, one at a time, until ctx is cancelled. fired may be nil when the scheduler runs actions itself.
func StartLiftMgr(ctx context.Context, lift *Lift, fired <-chan func()) *LiftMgr {
	liftMgr := &LiftMgr{
		Cmds: make(chan LiftCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(liftMgr.done)
		for {
			select {
			case cmd := <-liftMgr.Cmds:
				cmd.Exec(lift)
			case action := <-fired:
				action()
			case <-ctx.Done():
				lift.log.Debug().Msg("Lift manager stopped")
				return
			}
		}
	}()
	return liftMgr
}

// Exec runs fn on the manager goroutine and waits for it to finish.
func (liftMgr *LiftMgr) Exec(fn func(lift *Lift)) error {
	finished := make(chan struct{})
	select {
	case liftMgr.Cmds <- LiftCmd{Exec: func(lift *Lift) {
		defer close(finished)
		fn(lift)
	}}:
	case <-liftMgr.done:
		return ErrStopped
	}
	<-finished
	return nil
}

// Done is closed once the manager goroutine has returned.
func (liftMgr *LiftMgr) Done() <-chan struct{} {
	return liftMgr.done
}

func (liftMgr *LiftMgr) Call(floor int) error {
	var err error
	if execErr := liftMgr.Exec(func(lift *Lift) { err = lift.Call(floor) }); execErr != nil {
		return execErr
	}
	return err
}

func (liftMgr *LiftMgr) Go(floor int) error {
	var err error
	if execErr := liftMgr.Exec(func(lift *Lift) { err = lift.Go(floor) }); execErr != nil {
		return execErr
	}
	return err
}

func (liftMgr *LiftMgr) TimeToServe(floor int) (int64, error) {
	var (
		duration int64
		err      error
	)
	if execErr := liftMgr.Exec(func(lift *Lift) { duration, err = lift.TimeToServe(floor) }); execErr != nil {
		return 0, execErr
	}
	return duration, err
}

// GetState returns a snapshot taken on the manager goroutine.
func (liftMgr *LiftMgr) GetState() (types.LiftState, error) {
	var st types.LiftState
	if err := liftMgr.Exec(func(lift *Lift) { st = lift.State() }); err != nil {
		return types.LiftState{}, err
	}
	return st, nil
}
