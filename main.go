package main

import (
	"fmt"
	"os"

	"github.com/tatianab/cave-miner/internal/config"
	"github.com/tatianab/cave-miner/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Start(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
