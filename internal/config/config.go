// Package config loads the settings shared by cmd/gocodegen's
// subcommands: default indentation, end-of-line convention, and the
// manifest path. Values come from (in increasing priority) built-in
// defaults, an optional YAML file, and environment variables; flags
// are applied by the caller afterward since urfave/cli/v3 already owns
// flag precedence.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds settings read by cmd/gocodegen before command-line flags
// are applied.
type Config struct {
	Indent       string `yaml:"indent"`
	EOL          string `yaml:"eol"`
	ManifestPath string `yaml:"manifest"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Indent:       "    ",
		EOL:          "\n",
		ManifestPath: "manifest.yaml",
	}
}

// Load overlays an optional YAML file and environment variables onto
// the defaults. A missing file at path is not an error: it simply
// leaves the defaults (and later env overrides) in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "config: parse %s", path)
			}
		case os.IsNotExist(err):
			// fine, defaults + env stand
		default:
			return cfg, errors.Wrapf(err, "config: read %s", path)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("GOCODEGEN_INDENT"); ok {
		cfg.Indent = v
	}
	if v, ok := os.LookupEnv("GOCODEGEN_EOL"); ok {
		cfg.EOL = v
	}
	if v, ok := os.LookupEnv("GOCODEGEN_MANIFEST"); ok {
		cfg.ManifestPath = v
	}
}
