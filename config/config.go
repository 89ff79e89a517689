// Package config provides configuration read from a YAML file, environment
// and command-line.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hanc4-git/B1/construction"
)

// Config represent whole application configuration.
type Config struct {
	LogLevel string              `yaml:"logLevel"`
	Export   ExportConfig        `yaml:"export"`
	Geometry construction.Params `yaml:"geometry"`
}

// ExportConfig selects backend and output directory.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// Default returns configuration of the B1 geometry exported for SHIELD-HIT12A.
func Default() Config {
	return Config{
		LogLevel: "info",
		Export: ExportConfig{
			Dir:    "out",
			Format: "shield",
		},
		Geometry: construction.DefaultParams(),
	}
}

// Load reads path on top of defaults, then applies environment overrides.
// Unknown keys are an error. An empty path reads nothing from disk.
func Load(path string) (Config, error) {
	conf := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, &conf); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	readEnv(&conf)
	return conf, nil
}

// Decode strictly decodes YAML data into conf, keeping fields absent from data.
func Decode(data []byte, conf *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil {
		return err
	}
	return nil
}

// Encode renders conf as YAML.
func Encode(conf Config) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(conf); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
