// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/starlane/config"
	"github.com/katalvlaran/starlane/strategy"
)

// Unset marks From and To when no vertex id was given.
const Unset = strategy.NoTarget

// Config holds everything an App needs for one invocation.
type Config struct {
	// Graph source; exactly one of these, unless only List is requested.
	GraphPaths []string // hcl files or directories
	LoadName   string   // stored graph name
	Chain      int      // generated skip chain order

	Storage string // overrides the source's storage variant when set

	Algorithm string
	From      int
	To        int
	Route     string

	DSN      string
	SaveName string
	List     bool

	Bench int // runs per strategy; 0 disables the benchmark

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	sources := 0
	if len(cfg.GraphPaths) > 0 {
		sources++
	}
	if cfg.LoadName != "" {
		sources++
	}
	if cfg.Chain != 0 {
		sources++
	}
	switch {
	case sources > 1:
		return nil, errors.New("choose one graph source: paths, -load or -chain")
	case sources == 0 && !cfg.List:
		return nil, errors.New("a graph source is required: paths, -load or -chain")
	case cfg.Chain < 0:
		return nil, fmt.Errorf("-chain must be positive, got %d", cfg.Chain)
	case cfg.Bench < 0:
		return nil, fmt.Errorf("-bench must not be negative, got %d", cfg.Bench)
	}

	if cfg.Storage != "" && cfg.Storage != config.StorageList && cfg.Storage != config.StorageMatrix {
		return nil, fmt.Errorf("invalid storage %q: must be %q or %q", cfg.Storage, config.StorageList, config.StorageMatrix)
	}
	if cfg.DSN == "" && (cfg.LoadName != "" || cfg.SaveName != "" || cfg.List) {
		return nil, errors.New("-save, -load and -list need -db")
	}

	if cfg.Algorithm != "" {
		if cfg.Route != "" {
			return nil, errors.New("-algo and -route are mutually exclusive")
		}
		if !validAlgorithm(cfg.Algorithm) {
			return nil, fmt.Errorf("invalid algorithm %q", cfg.Algorithm)
		}
		if cfg.From == Unset {
			return nil, errors.New("-algo needs -from")
		}
		if needsTarget(cfg.Algorithm) && cfg.To == Unset {
			return nil, fmt.Errorf("-algo %s needs -to", cfg.Algorithm)
		}
	}
	if cfg.Route != "" && len(cfg.GraphPaths) == 0 {
		return nil, errors.New("-route needs a graph definition")
	}

	return &cfg, nil
}

// Algorithms lists the names accepted by -algo.
func Algorithms() []string {
	return append(strategy.Names(), config.AlgorithmPath)
}

func validAlgorithm(name string) bool {
	return slices.Contains(Algorithms(), name)
}

func needsTarget(name string) bool {
	return name == strategy.NameDijkstra || name == config.AlgorithmPath
}
