package controller

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/tiendc/go-deepcopy"

	"elevatorcar/config"
	"elevatorcar/types"
)

// InvalidFloorError is returned for a request outside the car's floor range.
// The car is left unchanged.
type InvalidFloorError struct {
	Floor   types.Floor
	Lowest  types.Floor
	Highest types.Floor
}

func (e *InvalidFloorError) Error() string {
	return fmt.Sprintf("invalid floor %d: outside [%d, %d]", e.Floor, e.Lowest, e.Highest)
}

// NewCar builds a car parked at its start floor, heading up, with no stops.
func NewCar(cfg *config.Car) (*Car, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	car := &Car{
		cfg:       *cfg,
		floor:     cfg.InitialFloor(),
		direction: types.MD_Up,
	}
	glog.V(1).Infof("Car ready at floor %d, range [%d, %d]", car.floor, cfg.LowestFloor, cfg.HighestFloor)
	return car, nil
}

// RequestHallCall records a call for the car from a hallway button.
func (c *Car) RequestHallCall(floor types.Floor) error {
	return c.addStop(floor, types.RK_HallCall)
}

// RequestDestination records a destination pressed inside the car.
func (c *Car) RequestDestination(floor types.Floor) error {
	return c.addStop(floor, types.RK_CarDestination)
}

func (c *Car) addStop(floor types.Floor, kind types.RequestKind) error {
	if !c.cfg.Contains(floor) {
		glog.Warningf("Rejected %s request for floor %d", kind, floor)
		return &InvalidFloorError{Floor: floor, Lowest: c.cfg.LowestFloor, Highest: c.cfg.HighestFloor}
	}

	// already there
	if floor == c.floor {
		glog.V(1).Infof("Ignored %s request for current floor %d", kind, floor)
		return nil
	}

	if c.stops.add(floor, kind) {
		glog.V(1).Infof("Added %s stop at floor %d", kind, floor)
	} else {
		glog.V(1).Infof("Merged %s request into stop at floor %d", kind, floor)
	}
	return nil
}

// DestinationStops returns, in ascending order, the floors passengers inside
// the car have asked for. Hall-call-only stops are left out.
func (c *Car) DestinationStops() []types.Floor {
	return c.stops.floorsWith(types.RK_CarDestination)
}

// NextStop returns the floor the car should visit next, or false when nothing
// is pending. The car keeps its direction while stops remain on that side and
// reverses otherwise; a reversal is kept even though the car has not moved.
func (c *Car) NextStop() (types.Floor, bool) {
	if c.stops.len() == 0 {
		return 0, false
	}

	above, hasAbove := c.stops.nearestAbove(c.floor)
	below, hasBelow := c.stops.nearestBelow(c.floor)

	if c.direction == types.MD_Down && !hasBelow {
		c.setDirection(types.MD_Up)
	}
	if c.direction == types.MD_Up && !hasAbove {
		c.setDirection(types.MD_Down)
	}

	if c.direction == types.MD_Down {
		return below, hasBelow
	}
	return above, hasAbove
}

// Advance moves the car to its next stop and clears that stop. It does
// nothing when no stop is pending.
func (c *Car) Advance() {
	target, ok := c.NextStop()
	if !ok {
		return
	}

	stop, _ := c.stops.remove(target)
	glog.Infof("Moved from floor %d to floor %d (%s, %s)", c.floor, target, c.direction, stop.Kind)
	c.floor = target
}

// Snapshot returns a deep copy of the car's scheduling state.
func (c *Car) Snapshot() (types.Snapshot, error) {
	src := types.Snapshot{
		Floor:     c.floor,
		Direction: c.direction,
		Pending:   c.stops.stops,
	}
	var snap types.Snapshot
	if err := deepcopy.Copy(&snap, src); err != nil {
		return types.Snapshot{}, fmt.Errorf("snapshot car state: %w", err)
	}
	return snap, nil
}

func (c *Car) setDirection(d types.Direction) {
	if c.direction == d {
		return
	}
	glog.Infof("Direction changed %s -> %s at floor %d", c.direction, d, c.floor)
	c.direction = d
}
