package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TPS != 60 || cfg.Scale != 1 || cfg.Debug {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	g := cfg.GameConfig()
	if g.ArenaWidth != 800 || g.ArenaHeight != 600 || g.PaddleHeight != 200 {
		t.Fatalf("game config %+v", g)
	}
	if cfg.KeyMap().RefireOnRelease {
		t.Fatal("refire should default to off")
	}
}

func TestLoadFileThenFlags(t *testing.T) {
	path := writeConfig(t, `
title = "court"
tps = 30
scale = 2.0

[arena]
width = 1000.0
height = 500.0
paddle_height = 120.0

[input]
refire_on_release = true
`)
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(newFlagSet(), []string{"-config", path, "-tps", "120"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "court" || cfg.Scale != 2 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TPS != 120 {
		t.Fatalf("flag should override file, tps=%d", cfg.TPS)
	}
	if cfg.Arena.Width != 1000 || cfg.Arena.Height != 500 || cfg.Arena.PaddleHeight != 120 {
		t.Fatalf("arena %+v", cfg.Arena)
	}
	if cfg.Arena.BallSize != 50 {
		t.Fatalf("keys missing from the file should keep defaults, ball=%v", cfg.Arena.BallSize)
	}
	if !cfg.KeyMap().RefireOnRelease {
		t.Fatal("input section not applied")
	}
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeConfig(t, "debug = true\n")
	t.Setenv(EnvConfigPath, path)
	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug || cfg.Path != path {
		t.Fatalf("env config not used: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "win_score = 3\n")
	t.Setenv(EnvConfigPath, "")
	_, err := Load(newFlagSet(), []string{"-config", path})
	if err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.toml")})
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"tps":           func(c *Config) { c.TPS = 0 },
		"scale":         func(c *Config) { c.Scale = -1 },
		"arena":         func(c *Config) { c.Arena.Height = 0 },
		"paddle":        func(c *Config) { c.Arena.PaddleHeight = 700 },
		"narrow":        func(c *Config) { c.Arena.Width = 100 },
		"paddle width":  func(c *Config) { c.Arena.PaddleWidth = -5 },
		"paddle height": func(c *Config) { c.Arena.PaddleHeight = 0 },
		"ball":          func(c *Config) { c.Arena.BallSize = -1 },
	}
	for name, mutate := range cases {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadRejectsNegativeBallSize(t *testing.T) {
	path := writeConfig(t, "[arena]\nball_size = -10.0\n")
	t.Setenv(EnvConfigPath, "")
	_, err := Load(newFlagSet(), []string{"-config", path})
	if err == nil || !strings.Contains(err.Error(), "ball size") {
		t.Fatalf("expected ball size error, got %v", err)
	}
}
