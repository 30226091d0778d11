package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tatianab/cave-miner/internal/config"
	"github.com/tatianab/cave-miner/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	seed := flag.Int64("seed", 0, "world seed (0 keeps the configured seed)")
	width := flag.Int("width", 0, "map width in pixels (0 keeps the configured width)")
	height := flag.Int("height", 0, "map height in pixels (0 keeps the configured height)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Override(*width, *height, *seed); err != nil {
		fmt.Printf("Invalid flags: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Start(cfg); err != nil {
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
}
