package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"duel-pong/internal/game"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvConfigPath names the environment variable holding the default config
// file path. It may also come from a .env file in the working directory.
const EnvConfigPath = "PONG_CONFIG"

// ArenaConfig is the arena geometry section of the config file.
type ArenaConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	BallSize     float64 `toml:"ball_size"`
}

// InputConfig is the input section of the config file.
type InputConfig struct {
	RefireOnRelease bool `toml:"refire_on_release"`
}

// Config represents the command-line and file parameters for the application.
type Config struct {
	Path  string      `toml:"-"`
	Title string      `toml:"title"`
	Scale float64     `toml:"scale"`
	TPS   int         `toml:"tps"`
	Debug bool        `toml:"debug"`
	Arena ArenaConfig `toml:"arena"`
	Input InputConfig `toml:"input"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	g := game.DefaultConfig()
	return &Config{
		Title: "duel-pong",
		Scale: 1,
		TPS:   60,
		Arena: ArenaConfig{
			Width:        g.ArenaWidth,
			Height:       g.ArenaHeight,
			PaddleWidth:  g.PaddleWidth,
			PaddleHeight: g.PaddleHeight,
			BallSize:     g.BallSize,
		},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "TOML config file (default from $"+EnvConfigPath+")")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the hitbox overlay visible")
	fs.BoolVar(&c.Input.RefireOnRelease, "refire-on-release", c.Input.RefireOnRelease, "fire again when a shoot key is released")
}

// LoadFile overlays the TOML file at path onto c. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

// Validate rejects values the shell cannot run with.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("arena must have a positive size, got %vx%v", a.Width, a.Height)
	}
	if a.PaddleWidth <= 0 || a.PaddleHeight <= 0 {
		return fmt.Errorf("paddle must have a positive size, got %vx%v", a.PaddleWidth, a.PaddleHeight)
	}
	if a.BallSize <= 0 {
		return fmt.Errorf("ball size must be positive, got %v", a.BallSize)
	}
	if a.PaddleHeight > a.Height {
		return fmt.Errorf("paddle height %v exceeds arena height %v", a.PaddleHeight, a.Height)
	}
	if a.BallSize*2+a.PaddleWidth*2 > a.Width {
		return fmt.Errorf("arena width %v too narrow for paddles and balls", a.Width)
	}
	return nil
}

// GameConfig converts the arena section into match geometry.
func (c *Config) GameConfig() game.Config {
	return game.Config{
		ArenaWidth:   c.Arena.Width,
		ArenaHeight:  c.Arena.Height,
		PaddleWidth:  c.Arena.PaddleWidth,
		PaddleHeight: c.Arena.PaddleHeight,
		BallSize:     c.Arena.BallSize,
	}
}

// KeyMap converts the input section into match key handling.
func (c *Config) KeyMap() game.KeyMap {
	return game.KeyMap{RefireOnRelease: c.Input.RefireOnRelease}
}

// Load builds a Config from defaults, then the config file, then the flags
// in args. Flags given on the command line win over the file.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := NewConfig()
	c.Path = os.Getenv(EnvConfigPath)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.Path != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

		if err := c.LoadFile(c.Path); err != nil {
			return nil, err
		}
		log.Printf("loaded config from %s", c.Path)

		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, fmt.Errorf("reapply -%s: %w", name, err)
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
