package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Println("Failed to initialize game:", err)
		os.Exit(1)
	}

	displayGameInfo(config, grid)
	renderer.Display(grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastFrameTime := time.Now()

	for generation := 1; generation <= config.Generations; generation++ {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			displayFinalStats(stats)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		grid.Advance()
		stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		renderer.Clear()
		displayGameStatus(generation, grid, stats)
		renderer.Display(grid)

		// Wait before the next frame, animation cadence only
		time.Sleep(config.FrameRate)
	}

	fmt.Printf("\n🏁 Reached generation limit (%d)\n", config.Generations)
	displayFinalStats(stats)
}
