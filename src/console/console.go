// Package console reads text commands for a car.
//
// Commands, N being a floor number:
//
//	qN    call the car to floor N from the landing
//	wN    press button N inside the car
//	eN    estimate the time until the car could open on floor N
//	s     print the car status
//	exit  quit
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"liftsim/src/logger"
	"liftsim/src/types"
	"liftsim/src/utils"
)

var Logger = logger.GetLogger()

var ErrUnknownCommand = errors.New("unknown command")

// Lift is what the console drives. elev.LiftMgr implements it.
type Lift interface {
	Call(floor int) error
	Go(floor int) error
	TimeToServe(floor int) (int64, error)
	GetState() (types.LiftState, error)
}

type CmdKind int

const (
	CmdEmpty CmdKind = iota
	CmdCall
	CmdGo
	CmdEstimate
	CmdStatus
	CmdExit
)

func (k CmdKind) String() string {
	switch k {
	case CmdEmpty:
		return "Empty"
	case CmdCall:
		return "Call"
	case CmdGo:
		return "Go"
	case CmdEstimate:
		return "Estimate"
	case CmdStatus:
		return "Status"
	case CmdExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

type Command struct {
	Kind  CmdKind
	Floor int
}

func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Command{Kind: CmdEmpty}, nil
	case strings.EqualFold(line, "exit"):
		return Command{Kind: CmdExit}, nil
	case line == "s":
		return Command{Kind: CmdStatus}, nil
	}

	var kind CmdKind
	switch line[0] {
	case 'q':
		kind = CmdCall
	case 'w':
		kind = CmdGo
	case 'e':
		kind = CmdEstimate
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, line)
	}

	floor, err := strconv.Atoi(line[1:])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %s: bad floor number", ErrUnknownCommand, line)
	}
	return Command{Kind: kind, Floor: floor}, nil
}

// Run reads commands from in until exit, end of input or ctx is done.
// Rejected commands are reported and reading continues.
func Run(ctx context.Context, in io.Reader, out io.Writer, lift Lift) error {
	Logger.Info().Msg("LIFT IS READY")
	defer func() { Logger.Info().Msg("GOODBYE") }()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := Parse(scanner.Text())
		if err != nil {
			Logger.Warn().Err(err).Msg("Rejected command")
			continue
		}
		if cmd.Kind == CmdExit {
			return nil
		}
		if err := execute(cmd, out, lift); err != nil {
			Logger.Error().Err(err).Stringer("cmd", cmd.Kind).Int("floor", cmd.Floor).Msg("Error")
		}
	}
}

func execute(cmd Command, out io.Writer, lift Lift) error {
	switch cmd.Kind {
	case CmdCall:
		return lift.Call(cmd.Floor)
	case CmdGo:
		return lift.Go(cmd.Floor)
	case CmdEstimate:
		duration, err := lift.TimeToServe(cmd.Floor)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "floor %d in %d\n", cmd.Floor, duration)
	case CmdStatus:
		st, err := lift.GetState()
		if err != nil {
			return err
		}
		utils.PrintStatus(out, st)
	}
	return nil
}
