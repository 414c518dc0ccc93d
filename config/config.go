package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"elevatorcar/types"
)

// Car is the operational range of one elevator car. It is read once when the
// car is built and never changes afterwards.
type Car struct {
	LowestFloor  types.Floor  `yaml:"lowest_floor"`
	HighestFloor types.Floor  `yaml:"highest_floor"`
	StartFloor   *types.Floor `yaml:"start_floor,omitempty"`
}

// ConfigurationError is returned when a car cannot be built from a configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid car configuration: " + e.Reason
}

func Default() Car {
	return Car{
		LowestFloor:  1,
		HighestFloor: 10,
	}
}

// Validate checks the floor range. A nil configuration is invalid.
func (c *Car) Validate() error {
	if c == nil {
		return &ConfigurationError{Reason: "configuration is required"}
	}
	if c.LowestFloor > c.HighestFloor {
		return &ConfigurationError{
			Reason: fmt.Sprintf("lowest floor %d is above highest floor %d", c.LowestFloor, c.HighestFloor),
		}
	}
	if c.StartFloor != nil && !c.Contains(*c.StartFloor) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("start floor %d outside [%d, %d]", *c.StartFloor, c.LowestFloor, c.HighestFloor),
		}
	}
	return nil
}

// Contains reports whether floor lies within [LowestFloor, HighestFloor].
func (c *Car) Contains(floor types.Floor) bool {
	return floor >= c.LowestFloor && floor <= c.HighestFloor
}

// InitialFloor is the floor a new car starts on.
func (c *Car) InitialFloor() types.Floor {
	if c.StartFloor != nil {
		return *c.StartFloor
	}
	return c.LowestFloor
}

// Load reads a YAML car configuration from path and validates it.
func Load(path string) (*Car, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML car configuration. Unknown keys are rejected so a
// misspelled floor key does not silently fall back to zero.
func Parse(data []byte) (*Car, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Car
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigurationError{Reason: "configuration is empty"}
		}
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
