package controller

import (
	"elevatorcar/config"
	"elevatorcar/types"
)

// Car schedules the stops of a single elevator car. It is not safe for
// concurrent use; callers must serialize access to one instance.
type Car struct {
	cfg       config.Car
	floor     types.Floor
	direction types.Direction
	stops     stopSet
}

var _ types.CarState = (*Car)(nil)

func (c *Car) GetFloor() types.Floor {
	return c.floor
}

func (c *Car) GetDirection() types.Direction {
	return c.direction
}

func (c *Car) GetConfig() config.Car {
	return c.cfg
}

// GetPendingStops returns a copy of the pending stops in ascending floor order.
func (c *Car) GetPendingStops() []types.PendingStop {
	stopsCopy := make([]types.PendingStop, len(c.stops.stops))
	copy(stopsCopy, c.stops.stops)
	return stopsCopy
}
