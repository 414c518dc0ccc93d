// Package sim drives a car from a line-oriented script, the way a test
// harness or a terminal user would.
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"elevatorcar/controller"
	"elevatorcar/types"
)

// Scheduler is the car surface a script can reach.
type Scheduler interface {
	types.CarState
	RequestHallCall(floor types.Floor) error
	RequestDestination(floor types.Floor) error
	DestinationStops() []types.Floor
	NextStop() (types.Floor, bool)
	Advance()
}

type Runner struct {
	car     Scheduler
	out     io.Writer
	session string
}

func NewRunner(car Scheduler, out io.Writer) *Runner {
	return &Runner{
		car:     car,
		out:     out,
		session: "run_" + uuid.New().String()[:8],
	}
}

func (r *Runner) Session() string {
	return r.session
}

// Run executes every command read from in. Out-of-range floors are reported
// and skipped; a syntax error stops the run.
func (r *Runner) Run(in io.Reader) error {
	glog.V(1).Infof("[%s] Script started", r.session)

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		cmd, ok, err := Parse(scanner.Text())
		if err != nil {
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) {
				syntaxErr.Line = lineNum
			}
			glog.Errorf("[%s] %v", r.session, err)
			return err
		}
		if !ok {
			continue
		}
		if err := r.Exec(cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	glog.V(1).Infof("[%s] Script finished after %d lines", r.session, lineNum)
	return nil
}

// Exec runs one command and writes its result line.
func (r *Runner) Exec(cmd Command) error {
	switch cmd.Op {
	case OP_Hall:
		return r.request(cmd.Floor, "hall call", r.car.RequestHallCall)

	case OP_Car:
		return r.request(cmd.Floor, "destination", r.car.RequestDestination)

	case OP_Next:
		if next, ok := r.car.NextStop(); ok {
			return r.printf("next stop: %s floor (heading %s)", ordinal(next), r.car.GetDirection())
		}
		return r.printf("next stop: none")

	case OP_Advance:
		from := r.car.GetFloor()
		if _, ok := r.car.NextStop(); !ok {
			return r.printf("no pending stops, staying at %s floor", ordinal(from))
		}
		r.car.Advance()
		return r.printf("moved %s from %s to %s floor", r.car.GetDirection(), ordinal(from), ordinal(r.car.GetFloor()))

	case OP_List:
		return r.printf("destinations: %s", joinFloors(r.car.DestinationStops()))

	case OP_Status:
		pending := r.car.GetPendingStops()
		parts := make([]string, 0, len(pending))
		for _, stop := range pending {
			parts = append(parts, fmt.Sprintf("%s(%s)", ordinal(stop.Floor), stop.Kind))
		}
		pendingText := "none"
		if len(parts) > 0 {
			pendingText = strings.Join(parts, ", ")
		}
		return r.printf("at %s floor, heading %s, pending: %s",
			ordinal(r.car.GetFloor()), r.car.GetDirection(), pendingText)
	}
	return fmt.Errorf("unsupported command %d", cmd.Op)
}

func (r *Runner) request(floor types.Floor, what string, fn func(types.Floor) error) error {
	if floor == r.car.GetFloor() {
		// the car ignores requests for where it already is
		fn(floor)
		return r.printf("%s at %s floor: already there", what, ordinal(floor))
	}

	err := fn(floor)
	var floorErr *controller.InvalidFloorError
	if errors.As(err, &floorErr) {
		glog.Warningf("[%s] %v", r.session, err)
		return r.printf("rejected: %v", err)
	}
	if err != nil {
		return err
	}
	return r.printf("%s at %s floor queued", what, ordinal(floor))
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format+"\n", args...)
	return err
}

func ordinal(f types.Floor) string {
	return humanize.Ordinal(int(f))
}

func joinFloors(floors []types.Floor) string {
	if len(floors) == 0 {
		return "none"
	}
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = ordinal(f)
	}
	return strings.Join(parts, ", ")
}
