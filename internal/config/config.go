package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadConfig looks when no path is given.
const DefaultPath = "cave-miner.yaml"

// Config holds the application configuration.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Seed    int64  `yaml:"seed"`
	FPS     int    `yaml:"fps"`
	LogFile string `yaml:"log_file"`

	Narrator NarratorConfig `yaml:"narrator"`
}

// NarratorConfig controls the optional flavour-text generator.
type NarratorConfig struct {
	APIKey string `yaml:"-"` // only from the environment
	Model  string `yaml:"model"`
}

// Enabled reports whether an API key is available.
func (n NarratorConfig) Enabled() bool { return n.APIKey != "" }

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Width:   800,
		Height:  600,
		Seed:    time.Now().UnixNano(),
		FPS:     30,
		LogFile: "debug.log",
		Narrator: NarratorConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// FrameTime is the wall-clock duration of one frame.
func (c *Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// LoadConfig builds the configuration from defaults, then the YAML file at
// path if it exists, then environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"CAVE_MINER_WIDTH", &cfg.Width},
		{"CAVE_MINER_HEIGHT", &cfg.Height},
		{"CAVE_MINER_FPS", &cfg.FPS},
	}
	for _, v := range ints {
		s := os.Getenv(v.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = n
	}

	if s := os.Getenv("CAVE_MINER_SEED"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("CAVE_MINER_SEED: %w", err)
		}
		cfg.Seed = n
	}
	cfg.Narrator.APIKey = os.Getenv("GEMINI_API_KEY")
	return nil
}

// Override applies command-line values on top of the loaded configuration.
// Zero values keep the current setting.
func (c *Config) Override(width, height int, seed int64) error {
	if width != 0 {
		c.Width = width
	}
	if height != 0 {
		c.Height = height
	}
	if seed != 0 {
		c.Seed = seed
	}
	return c.Validate()
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", c.FPS)
	}
	return nil
}
