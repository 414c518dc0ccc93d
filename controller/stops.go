package controller

import (
	"cmp"
	"slices"

	"elevatorcar/types"
)

// stopSet holds at most one pending stop per floor, sorted by floor.
type stopSet struct {
	stops []types.PendingStop
}

// search returns the index of the first stop at or above floor.
func (s *stopSet) search(floor types.Floor) (int, bool) {
	return slices.BinarySearchFunc(s.stops, floor, func(p types.PendingStop, f types.Floor) int {
		return cmp.Compare(p.Floor, f)
	})
}

// add inserts a stop or merges kind into the existing stop for floor.
// Reports whether a new entry was created.
func (s *stopSet) add(floor types.Floor, kind types.RequestKind) bool {
	i, found := s.search(floor)
	if found {
		s.stops[i].Kind = s.stops[i].Kind.Merge(kind)
		return false
	}
	s.stops = slices.Insert(s.stops, i, types.PendingStop{Floor: floor, Kind: kind})
	return true
}

func (s *stopSet) remove(floor types.Floor) (types.PendingStop, bool) {
	i, found := s.search(floor)
	if !found {
		return types.PendingStop{}, false
	}
	stop := s.stops[i]
	s.stops = slices.Delete(s.stops, i, i+1)
	return stop, true
}

func (s *stopSet) len() int {
	return len(s.stops)
}

// nearestAbove returns the lowest pending floor strictly above floor.
func (s *stopSet) nearestAbove(floor types.Floor) (types.Floor, bool) {
	i, found := s.search(floor)
	if found {
		i++
	}
	if i >= len(s.stops) {
		return 0, false
	}
	return s.stops[i].Floor, true
}

// nearestBelow returns the highest pending floor strictly below floor.
func (s *stopSet) nearestBelow(floor types.Floor) (types.Floor, bool) {
	i, _ := s.search(floor)
	if i == 0 {
		return 0, false
	}
	return s.stops[i-1].Floor, true
}

// floorsWith returns the ascending floors whose stop carries kind.
func (s *stopSet) floorsWith(kind types.RequestKind) []types.Floor {
	floors := make([]types.Floor, 0, len(s.stops))
	for _, stop := range s.stops {
		if stop.Kind.Has(kind) {
			floors = append(floors, stop.Floor)
		}
	}
	return floors
}
