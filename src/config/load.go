package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFloorCount    = "LIFT_FLOOR_COUNT"
	EnvFloorHeight   = "LIFT_FLOOR_HEIGHT"
	EnvLiftSpeed     = "LIFT_SPEED"
	EnvOpenCloseTime = "LIFT_OPEN_CLOSE_TIME"
	EnvTimeUnit      = "LIFT_TIME_UNIT"
)

// LoadFile decodes a YAML file over cfg. Keys missing from the file keep their current value.
func LoadFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv reads a dotenv file and applies the LIFT_* keys it contains.
func LoadEnv(cfg *Config, path string) error {
	envFile, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}
	return ApplyEnv(cfg, envFile)
}

func ApplyEnv(cfg *Config, env map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvFloorCount, &cfg.FloorCount},
		{EnvFloorHeight, &cfg.FloorHeight},
		{EnvLiftSpeed, &cfg.LiftSpeed},
	}
	for _, field := range ints {
		value, ok := env[field.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.key, err)
		}
		*field.dst = n
	}

	if value, ok := env[EnvOpenCloseTime]; ok {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOpenCloseTime, err)
		}
		cfg.OpenCloseTime = n
	}
	if value, ok := env[EnvTimeUnit]; ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeUnit, err)
		}
		cfg.TimeUnit = d
	}
	return nil
}

// ApplyArgs takes the positional launcher arguments: floorCount floorHeight liftSpeed openCloseTime.
// Fewer than four arguments override only the leading fields.
func ApplyArgs(cfg *Config, args []string) error {
	if len(args) > 4 {
		return fmt.Errorf("too many arguments: %d", len(args))
	}
	dsts := []*int{&cfg.FloorCount, &cfg.FloorHeight, &cfg.LiftSpeed}
	for i, arg := range args {
		if i == 3 {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("open-close time %q: %w", arg, err)
			}
			cfg.OpenCloseTime = n
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("argument %d %q: %w", i+1, arg, err)
		}
		*dsts[i] = n
	}
	return nil
}
