package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/shapelab/pkg/mesh"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Shape defaults match the classic 32x16 unit sphere
	if cfg.Shape.Kind != ShapeSphere {
		t.Errorf("expected shape sphere, got %s", cfg.Shape.Kind)
	}
	if cfg.Shape.Radius != 1 || cfg.Shape.Slices != 32 || cfg.Shape.Stacks != 16 {
		t.Errorf("unexpected shape defaults: %+v", cfg.Shape)
	}

	// View defaults
	if cfg.View.FOV != 70 {
		t.Errorf("expected fov 70, got %v", cfg.View.FOV)
	}
	if cfg.View.Distance != 5 {
		t.Errorf("expected distance 5, got %v", cfg.View.Distance)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  wireframe: true

shape:
  kind: cone
  radius: 0.5
  height: 3
  slices: 12
  stacks: 4

view:
  fov: 60
  distance: 8
  spin_speed: 0

logging:
  level: "debug"
  log_file: "shapelab.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be true")
	}

	want := ShapeConfig{Kind: ShapeCone, Radius: 0.5, Height: 3, Slices: 12, Stacks: 4}
	if cfg.Shape != want {
		t.Errorf("expected shape %+v, got %+v", want, cfg.Shape)
	}

	if cfg.View.FOV != 60 || cfg.View.Distance != 8 || cfg.View.SpinSpeed != 0 {
		t.Errorf("unexpected view: %+v", cfg.View)
	}
	// Unset keys keep their defaults
	if cfg.View.Near != 0.1 || cfg.View.Far != 100 {
		t.Errorf("expected default clip planes, got near=%v far=%v", cfg.View.Near, cfg.View.Far)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "shapelab.log" {
		t.Errorf("expected log file 'shapelab.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "shape flags",
			setup: func() {
				*flagShape = ShapeCone
				*flagSlices = 8
				*flagStacks = 2
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Shape.Kind != ShapeCone || cfg.Shape.Slices != 8 || cfg.Shape.Stacks != 2 {
					t.Errorf("unexpected shape %+v", cfg.Shape)
				}
			},
			teardown: func() {
				*flagShape = ""
				*flagSlices = 0
				*flagStacks = 0
			},
		},
		{
			name:  "wireframe flag",
			setup: func() { *flagWireframe = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Wireframe {
					t.Error("expected wireframe with wireframe flag")
				}
			},
			teardown: func() { *flagWireframe = false },
		},
		{
			name:  "shading flag",
			setup: func() { *flagShading = "texcoords" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Shading != "texcoords" {
					t.Errorf("expected texcoords shading, got %s", cfg.Graphics.Shading)
				}
			},
			teardown: func() { *flagShading = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidShape(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("shape:\n  kind: cone\n  slices: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	_, err := Load()
	if !errors.Is(err, mesh.ErrInvalidSlices) {
		t.Errorf("expected ErrInvalidSlices, got %v", err)
	}
}

func TestShapeBuild(t *testing.T) {
	tests := []struct {
		name     string
		shape    ShapeConfig
		wantName string
		wantLen  int
		wantErr  error
	}{
		{"sphere", ShapeConfig{Kind: ShapeSphere, Radius: 1, Slices: 32, Stacks: 16}, "sphere", 6 * 32 * 16, nil},
		{"cone", ShapeConfig{Kind: ShapeCone, Radius: 1, Height: 2, Slices: 4, Stacks: 1}, "cone", 24, nil},
		{"unknown", ShapeConfig{Kind: "torus", Radius: 1, Slices: 8, Stacks: 8}, "", 0, ErrUnknownShape},
		{"cone without height", ShapeConfig{Kind: ShapeCone, Radius: 1, Slices: 8, Stacks: 1}, "", 0, mesh.ErrInvalidHeight},
		{"sphere one stack", ShapeConfig{Kind: ShapeSphere, Radius: 1, Slices: 8, Stacks: 1}, "", 0, mesh.ErrInvalidStacks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := tt.shape.Build()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if shape.Name() != tt.wantName {
				t.Errorf("expected %s, got %s", tt.wantName, shape.Name())
			}
			if got := len(shape.Vertices()); got != tt.wantLen {
				t.Errorf("expected %d vertices, got %d", tt.wantLen, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"fov too wide", func(c *Config) { c.View.FOV = 180 }},
		{"nan fov", func(c *Config) { c.View.FOV = float32(math.NaN()) }},
		{"nan near", func(c *Config) { c.View.Near = float32(math.NaN()) }},
		{"nan distance", func(c *Config) { c.View.Distance = float32(math.NaN()) }},
		{"far before near", func(c *Config) { c.View.Far = 0.05 }},
		{"negative distance", func(c *Config) { c.View.Distance = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad shape", func(c *Config) { c.Shape.Kind = "cube" }},
		{"bad shading", func(c *Config) { c.Graphics.Shading = "phong" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestDefaultShading(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Graphics.Shading != "normals" {
		t.Errorf("expected normals shading by default, got %s", cfg.Graphics.Shading)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Shape.Kind = ShapeCone
	cfg.Shape.Slices = 9
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Shape != cfg.Shape {
		t.Errorf("expected shape %+v after reload, got %+v", cfg.Shape, loaded.Shape)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)

	cfg := Default()
	cfg.Graphics.Shading = "texcoords"
	cfg.Shape.Stacks = 5
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(ConfigDir(), "config.yaml")
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading %s: %v", path, err)
	}
	if loaded.Graphics.Shading != "texcoords" || loaded.Shape.Stacks != 5 {
		t.Errorf("saved settings not restored: %+v %+v", loaded.Graphics, loaded.Shape)
	}
}
