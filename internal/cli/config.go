package cli

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the defaults read from --config. Flags given on the command
// line override them.
//
// Example file:
//
//	strict = false
//	group_pattern = true
type Config struct {
	// Strict compares radicals, lone pairs and charge during isomorphism.
	Strict bool `toml:"strict"`
	// GroupPattern reads the second file of "iso" as a group pattern.
	GroupPattern bool `toml:"group_pattern"`
}

// DefaultConfig returns the configuration used without --config.
func DefaultConfig() Config {
	return Config{Strict: true}
}

// LoadConfig reads a TOML file over DefaultConfig. An empty path returns the
// defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}

	return DefaultConfig()
}
