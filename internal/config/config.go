// Package config loads runtime settings from flags with environment fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/benbeisheim/hotseat-chess/internal/console"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// SpectateAddr is the listen address of the spectator server. Empty
	// disables it.
	SpectateAddr string
	// AllowOrigins is passed to the CORS middleware of the spectator server.
	AllowOrigins string
	// Color is one of auto, always or never.
	Color string
}

// Load parses args. getenv supplies the fallback for each flag; pass os.Getenv.
func Load(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("hotseat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.SpectateAddr, "spectate", envOr(getenv, "HOTSEAT_SPECTATE", ""), "listen address for the read-only spectator server, e.g. :3000 (disabled when empty)")
	fs.StringVar(&cfg.AllowOrigins, "origins", envOr(getenv, "HOTSEAT_ORIGINS", "*"), "comma-separated CORS origins for the spectator server")
	fs.StringVar(&cfg.Color, "color", envOr(getenv, "HOTSEAT_COLOR", console.ColorAuto), "colorize glyphs: auto, always or never")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Color {
	case console.ColorAuto, console.ColorAlways, console.ColorNever:
	default:
		return fmt.Errorf("%w: color %q, want auto, always or never", ErrInvalidConfig, c.Color)
	}
	if c.SpectateAddr != "" && c.AllowOrigins == "" {
		return fmt.Errorf("%w: origins must not be empty when spectating", ErrInvalidConfig)
	}
	return nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
