package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"

	"github.com/zephyrtronium/rpncalc"
)

// config holds the settings that may come from a config file. Flags given on
// the command line override them.
type config struct {
	X      float64 `json:"x" toml:"x"`
	Format string  `json:"format" toml:"format"`
	Prec   uint    `json:"prec" toml:"prec"`
	Echo   bool    `json:"echo" toml:"echo"`
	Plot   string  `json:"plot" toml:"plot"`
}

func defaultConfig() config {
	return config{Format: "%g"}
}

// loadConfig reads a config file over the defaults. The format is chosen by
// extension: .toml, or .yaml, .yml, and .json.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml", ".json":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("%s: unknown config format %q", name, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	if cfg.Plot != "" {
		if _, err := parseRange(cfg.Plot); err != nil {
			return cfg, fmt.Errorf("%s: %w", name, err)
		}
	}
	return cfg, nil
}

// sampling is a range to sample expressions over.
type sampling struct {
	from, to float64
	n        int
}

// parseRange parses "from:to:n". The bounds may be expressions in x=0, so
// e.g. "-2*3.14159:2*3.14159:100" works.
func parseRange(s string) (sampling, error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return sampling{}, fmt.Errorf(`plot range must be "from:to:n", not %q`, s)
	}
	from, err := rpncalc.Evaluate(f[0], 0)
	if err != nil {
		return sampling{}, fmt.Errorf("plot range start: %w", err)
	}
	to, err := rpncalc.Evaluate(f[1], 0)
	if err != nil {
		return sampling{}, fmt.Errorf("plot range end: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(f[2]))
	if err != nil || n < 1 {
		return sampling{}, fmt.Errorf("plot point count must be a positive integer, not %q", f[2])
	}
	return sampling{from: from, to: to, n: n}, nil
}
