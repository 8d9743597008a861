// Package config loads game settings from defaults, an optional JSON file
// and command line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	"grid-snake/game/types"
)

const (
	FrontendWindow = "window"
	FrontendTerm   = "term"

	OnGameOverExit  = "exit"
	OnGameOverReset = "reset"
)

var ErrInvalid = errors.New("invalid config")

var logLevels = []string{"all", "debug", "info", "warning", "error", "none"}

type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Block  int `json:"block"`
	Border int `json:"border"`
	// Speed is the number of ticks per second.
	Speed      int    `json:"speed"`
	Frontend   string `json:"frontend"`
	OnGameOver string `json:"onGameOver"`
	// ResetDelay is the pause in milliseconds between a game over and
	// the next round in reset mode.
	ResetDelay int    `json:"resetDelay"`
	Seed       uint64 `json:"seed"`
	Snapshot   string `json:"snapshot"`
	LogLevel   string `json:"logLevel"`
}

func Default() Config {
	return Config{
		Width:      types.DefaultWidth,
		Height:     types.DefaultHeight,
		Block:      types.DefaultBlockSize,
		Border:     types.DefaultBorderSize,
		Speed:      types.DefaultSpeed,
		Frontend:   FrontendWindow,
		OnGameOver: OnGameOverExit,
		ResetDelay: 500,
		LogLevel:   "info",
	}
}

// LoadFile decodes the JSON file at path over cfg. Keys missing from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()

	if err := decode(file, cfg); err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	return nil
}

func decode(r io.Reader, cfg *Config) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

// RegisterFlags binds the game flags to cfg. Current cfg values become the
// flag defaults.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells")
	fs.IntVar(&cfg.Block, "block", cfg.Block, "Cell size in pixels")
	fs.IntVar(&cfg.Border, "border", cfg.Border, "Snake cell border in pixels")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Ticks per second")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend: window or term")
	fs.StringVar(&cfg.OnGameOver, "on-game-over", cfg.OnGameOver, "On game over: exit or reset")
	fs.IntVar(&cfg.ResetDelay, "reset-delay", cfg.ResetDelay, "Delay before the next round in reset mode, in milliseconds")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Apple placement seed (0 = time based)")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "Write the final frame to this PNG file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: all, debug, info, warning, error or none")
}

// Load builds the config for args: defaults, then the -config file if
// given, then the remaining flags.
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", "", "Path to a JSON config file")
	RegisterFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *path != "" {
		if err := LoadFile(*path, &cfg); err != nil {
			return cfg, err
		}
		// Parse again so explicit flags win over the file.
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 1:
		return errors.Wrapf(ErrInvalid, "board %dx%d is smaller than 4x1", c.Width, c.Height)
	case c.Block < 1:
		return errors.Wrapf(ErrInvalid, "block size %d", c.Block)
	case c.Border < 0 || 2*c.Border >= c.Block:
		return errors.Wrapf(ErrInvalid, "border %d does not fit block size %d", c.Border, c.Block)
	case c.Speed < 1:
		return errors.Wrapf(ErrInvalid, "speed %d", c.Speed)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerm:
		return errors.Wrapf(ErrInvalid, "unknown frontend %q", c.Frontend)
	case c.OnGameOver != OnGameOverExit && c.OnGameOver != OnGameOverReset:
		return errors.Wrapf(ErrInvalid, "unknown game over mode %q", c.OnGameOver)
	case c.ResetDelay < 0:
		return errors.Wrapf(ErrInvalid, "reset delay %d", c.ResetDelay)
	}
	for _, level := range logLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalid, "unknown log level %q", c.LogLevel)
}

// ResetTicks converts ResetDelay to whole ticks at Speed, rounding up, with
// a minimum of one tick.
func (c Config) ResetTicks() int {
	ticks := (c.ResetDelay*c.Speed + 999) / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

func (c Config) AutoReset() bool {
	return c.OnGameOver == OnGameOverReset
}
