package types

import "strings"

// Floor is a floor number. Numbering starts at the configured lowest floor.
type Floor int

type Direction int

const (
	MD_Up   Direction = 1
	MD_Down Direction = -1
)

func (d Direction) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	}
	return "invalid"
}

// RequestKind is a set of request tags. A stop requested both from the hall
// and from inside the car carries both.
type RequestKind uint8

const (
	RK_HallCall RequestKind = 1 << iota
	RK_CarDestination
)

// Merge returns the union of both tag sets.
func (k RequestKind) Merge(other RequestKind) RequestKind {
	return k | other
}

// Has reports whether every tag in kind is present in k.
func (k RequestKind) Has(kind RequestKind) bool {
	return kind != 0 && k&kind == kind
}

func (k RequestKind) String() string {
	var tags []string
	if k.Has(RK_HallCall) {
		tags = append(tags, "hall")
	}
	if k.Has(RK_CarDestination) {
		tags = append(tags, "car")
	}
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, "+")
}

type PendingStop struct {
	Floor Floor
	Kind  RequestKind
}

// Snapshot is a point-in-time copy of a car's scheduling state.
type Snapshot struct {
	Floor     Floor
	Direction Direction
	Pending   []PendingStop
}

// CarState is the read-only view of a car handed to hosts.
type CarState interface {
	GetFloor() Floor
	GetDirection() Direction
	GetPendingStops() []PendingStop
}
