package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cave-miner.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FrameTime() != time.Second/30 {
		t.Errorf("Expected 30 fps frame time, got %v", cfg.FrameTime())
	}
	if cfg.Narrator.Enabled() {
		t.Errorf("Expected narrator disabled without a key")
	}
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	path := writeFile(t, "width: 1600\nheight: 1200\nseed: 9\nnarrator:\n  model: gemini-test\n")
	t.Setenv("CAVE_MINER_HEIGHT", "900")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Width != 1600 {
		t.Errorf("Expected width from file, got %d", cfg.Width)
	}
	if cfg.Height != 900 {
		t.Errorf("Expected height from env, got %d", cfg.Height)
	}
	if cfg.Seed != 9 {
		t.Errorf("Expected seed 9, got %d", cfg.Seed)
	}
	if cfg.Narrator.Model != "gemini-test" || !cfg.Narrator.Enabled() {
		t.Errorf("Expected narrator enabled with gemini-test, got %+v", cfg.Narrator)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  string
	}{
		{"zero width", "width: 0\n", ""},
		{"fps too high", "fps: 1000\n", ""},
		{"bad yaml", "width: [\n", ""},
		{"bad env", "", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CAVE_MINER_WIDTH", tt.env)
			if _, err := LoadConfig(writeFile(t, tt.body)); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestOverride(t *testing.T) {
	cfg := Default()
	cfg.Seed = 5

	if err := cfg.Override(0, 0, 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Seed != 5 {
		t.Errorf("Expected zero overrides to keep 800x600 seed 5, got %dx%d seed %d", cfg.Width, cfg.Height, cfg.Seed)
	}

	if err := cfg.Override(1024, 768, 77); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.Seed != 77 {
		t.Errorf("Expected 1024x768 seed 77, got %dx%d seed %d", cfg.Width, cfg.Height, cfg.Seed)
	}

	if err := cfg.Override(-1, 0, 0); err == nil {
		t.Errorf("Expected negative width to be rejected")
	}
}
