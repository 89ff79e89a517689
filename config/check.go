package config

import (
	"fmt"
	"strings"

	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/run"
)

type checkFunc func(conf *Config) error

// Check validates conf, returning the first failure.
func Check(conf *Config) error {
	checkFuncs := []checkFunc{
		checkLoggingLevel,
		checkExport,
		checkGeometry,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkLoggingLevel(conf *Config) error {
	conf.LogLevel = strings.ToLower(conf.LogLevel)
	if !log.ValidateLevel(conf.LogLevel) {
		return fmt.Errorf("invalid logLevel %q, one of: %s",
			conf.LogLevel, strings.Join(log.AvailableLevels, ", "))
	}
	return nil
}

func checkExport(conf *Config) error {
	if conf.Export.Dir == "" {
		return fmt.Errorf("export.dir cannot be empty")
	}
	for _, name := range run.BackendNames() {
		if name == conf.Export.Format {
			return nil
		}
	}
	return fmt.Errorf("invalid export.format %q, one of: %s",
		conf.Export.Format, strings.Join(run.BackendNames(), ", "))
}

func checkGeometry(conf *Config) error {
	if err := conf.Geometry.Validate(); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	return nil
}
