package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinFloors = 5
	MaxFloors = 20

	DefaultFloorCount    = 10
	DefaultFloorHeight   = 275
	DefaultLiftSpeed     = 90
	DefaultOpenCloseTime = 15
	DefaultTimeUnit      = time.Second
)

var (
	ErrFloorCount    = errors.New("wrong floor count")
	ErrFloorHeight   = errors.New("floor height must be positive")
	ErrLiftSpeed     = errors.New("lift speed must be positive")
	ErrOpenCloseTime = errors.New("open-close time must not be negative")
)

// Config holds the building and car parameters.
// All arithmetic is integer only, so rounding errors are possible. Pick values and units accordingly.
type Config struct {
	FloorCount    int           `yaml:"floorCount"`
	FloorHeight   int           `yaml:"floorHeight"`
	LiftSpeed     int           `yaml:"liftSpeed"`
	OpenCloseTime int64         `yaml:"openCloseTime"`
	TimeUnit      time.Duration `yaml:"timeUnit"`
}

func DefaultConfig() Config {
	return Config{
		FloorCount:    DefaultFloorCount,
		FloorHeight:   DefaultFloorHeight,
		LiftSpeed:     DefaultLiftSpeed,
		OpenCloseTime: DefaultOpenCloseTime,
		TimeUnit:      DefaultTimeUnit,
	}
}

// Validate checks every field against its allowed range.
func (cfg Config) Validate() error {
	if cfg.FloorCount < MinFloors || cfg.FloorCount > MaxFloors {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrFloorCount, cfg.FloorCount, MinFloors, MaxFloors)
	}
	if cfg.FloorHeight <= 0 {
		return fmt.Errorf("%w: %d", ErrFloorHeight, cfg.FloorHeight)
	}
	if cfg.LiftSpeed <= 0 {
		return fmt.Errorf("%w: %d", ErrLiftSpeed, cfg.LiftSpeed)
	}
	if cfg.OpenCloseTime < 0 {
		return fmt.Errorf("%w: %d", ErrOpenCloseTime, cfg.OpenCloseTime)
	}
	return nil
}

// FloorTime is the time needed to pass one floor. The division truncates.
func (cfg Config) FloorTime() int64 {
	return int64(cfg.FloorHeight / cfg.LiftSpeed)
}
