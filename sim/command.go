package sim

import (
	"fmt"
	"strconv"
	"strings"

	"elevatorcar/types"
)

type Op int

const (
	OP_Hall Op = iota
	OP_Car
	OP_Next
	OP_Advance
	OP_List
	OP_Status
)

var opNames = map[string]Op{
	"hall":    OP_Hall,
	"car":     OP_Car,
	"next":    OP_Next,
	"advance": OP_Advance,
	"list":    OP_List,
	"status":  OP_Status,
}

func (o Op) takesFloor() bool {
	return o == OP_Hall || o == OP_Car
}

// Command is one parsed script line.
type Command struct {
	Op    Op
	Floor types.Floor
}

// SyntaxError reports a script line that could not be parsed.
type SyntaxError struct {
	Line   int
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

// Parse reads a single command. Blank lines and '#' comments yield ok == false.
func Parse(line string) (cmd Command, ok bool, err error) {
	text := line
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	op, known := opNames[strings.ToLower(fields[0])]
	if !known {
		return Command{}, false, &SyntaxError{Text: line, Reason: "unknown command"}
	}

	if !op.takesFloor() {
		if len(fields) != 1 {
			return Command{}, false, &SyntaxError{Text: line, Reason: "unexpected argument"}
		}
		return Command{Op: op}, true, nil
	}

	if len(fields) != 2 {
		return Command{}, false, &SyntaxError{Text: line, Reason: "expected one floor number"}
	}
	floor, convErr := strconv.Atoi(fields[1])
	if convErr != nil {
		return Command{}, false, &SyntaxError{Text: line, Reason: "floor is not a number"}
	}
	return Command{Op: op, Floor: types.Floor(floor)}, true, nil
}
