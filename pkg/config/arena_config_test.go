package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultArenaConfig(t *testing.T) {
	cfg := DefaultArenaConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	center := cfg.Center()
	if center.X != 600 || center.Y != 600 {
		t.Errorf("center = %v, want (600,600)", center)
	}
	if cfg.Player.Speed != 0.1 {
		t.Errorf("player speed = %v, want 0.1", cfg.Player.Speed)
	}
	if cfg.Enemies.GreyGooSpawnsLeft != 10 {
		t.Errorf("greyGooSpawnsLeft = %d, want 10", cfg.Enemies.GreyGooSpawnsLeft)
	}
}

func TestRadiusForSize(t *testing.T) {
	got := RadiusForSize(32)
	want := 16 * math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("RadiusForSize(32) = %v, want %v", got, want)
	}
}

func TestParseArenaConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *ArenaConfig)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *ArenaConfig) {
				if cfg.OuterRadius != 500 || cfg.InnerRadius != 50 {
					t.Errorf("radii = %v/%v, want 500/50", cfg.OuterRadius, cfg.InnerRadius)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
outerRadius: 400
player:
  speed: 0.2
enemies:
  greyGooSpawnsLeft: 3
`,
			validate: func(t *testing.T, cfg *ArenaConfig) {
				if cfg.OuterRadius != 400 {
					t.Errorf("outerRadius = %v, want 400", cfg.OuterRadius)
				}
				if cfg.Player.Speed != 0.2 {
					t.Errorf("player.speed = %v, want 0.2", cfg.Player.Speed)
				}
				// 未覆盖的同级字段保留默认值
				if cfg.Player.StartOffset != 50 {
					t.Errorf("player.startOffset = %v, want 50", cfg.Player.StartOffset)
				}
				if cfg.Enemies.GreyGooSpawnsLeft != 3 {
					t.Errorf("greyGooSpawnsLeft = %d, want 3", cfg.Enemies.GreyGooSpawnsLeft)
				}
				if cfg.Enemies.BasicSpeed != 0.05 {
					t.Errorf("basicSpeed = %v, want 0.05", cfg.Enemies.BasicSpeed)
				}
			},
		},
		{
			name:        "inner radius not smaller than outer",
			yamlContent: "innerRadius: 600\nouterRadius: 500\n",
			wantErr:     true,
			errContains: "must be greater than innerRadius",
		},
		{
			name:        "outer ring outside canvas",
			yamlContent: "canvasSize: 800\n",
			wantErr:     true,
			errContains: "does not fit in canvas",
		},
		{
			name:        "zero tick rate",
			yamlContent: "tickRateHz: 0\n",
			wantErr:     true,
			errContains: "tickRateHz must be > 0",
		},
		{
			name:        "negative spawns left",
			yamlContent: "enemies:\n  greyGooSpawnsLeft: -1\n",
			wantErr:     true,
			errContains: "greyGooSpawnsLeft must be >= 0",
		},
		{
			name:        "malformed yaml",
			yamlContent: "outerRadius: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse arena config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArenaConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadArenaConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("starCount: 10\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadArenaConfig(path)
	if err != nil {
		t.Fatalf("LoadArenaConfig failed: %v", err)
	}
	if cfg.StarCount != 10 {
		t.Errorf("starCount = %d, want 10", cfg.StarCount)
	}

	if _, err := LoadArenaConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedArenaConfigMatchesDefaults 随程序发布的配置文件与内置默认值一致
func TestShippedArenaConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadArenaConfig("../../data/arena.yaml")
	if err != nil {
		t.Fatalf("LoadArenaConfig: %v", err)
	}
	if *cfg != *DefaultArenaConfig() {
		t.Errorf("data/arena.yaml differs from defaults: %+v", cfg)
	}
}

func TestLoadArenaConfigOrDefault(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("innerRadius: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	partial := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(partial, []byte("starCount: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantStars int
	}{
		{"empty path", "", 1000},
		{"missing file", filepath.Join(dir, "missing.yaml"), 1000},
		{"invalid values", broken, 1000},
		{"partial override", partial, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadArenaConfigOrDefault(tt.path)
			if cfg.StarCount != tt.wantStars || cfg.InnerRadius != 50 {
				t.Errorf("starCount=%d innerRadius=%v, want %d/50", cfg.StarCount, cfg.InnerRadius, tt.wantStars)
			}
		})
	}
}
