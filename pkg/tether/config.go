package tether

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Config represents the optional tether.yaml configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	// Version pins the engine version snapshots are tagged with
	// ("v"-prefixed semver).
	Version string `yaml:"version,omitempty"`
}

// LogConfig contains error-log settings.
type LogConfig struct {
	// Verbose enables stack traces in reported errors.
	Verbose bool `yaml:"verbose,omitempty"`
	// TraceSignals emits a debug log line for every raised signal.
	TraceSignals bool `yaml:"trace_signals,omitempty"`
}

// LoadOptional reads tether.yaml from dir if present. A missing file yields
// a zero Config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "tether.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read tether.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tether.yaml: %w", err)
	}

	if v := cfg.Engine.Version; v != "" && !semver.IsValid(v) {
		return nil, fmt.Errorf("tether.yaml: engine.version %q is not valid semver", v)
	}
	return &cfg, nil
}
