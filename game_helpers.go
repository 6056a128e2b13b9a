package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state: an all-dead grid of the
// configured dimensions, seeded with a glider at the origin
func initializeGame(config utils.Config) (
	*model.LifeGrid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	if err := config.Validate(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] invalid config")
	}

	grid := model.New(config.Width, config.Height)
	if err := grid.SetPattern(rules.Glider()); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed glider")
	}

	renderer := model.NewTerminalRenderer()
	stats := utils.NewStats()

	return grid, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.LifeGrid) {
	fmt.Printf("Grid: %dx%d | Generations: %d | Frame rate: %v\n",
		grid.Width(), grid.Height(), config.Generations, config.FrameRate)
	fmt.Printf("Initial living cells: %d\n", grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, grid *model.LifeGrid, stats *utils.Stats) {
	var (
		livingCells = grid.CountLivingCells()
		density     = float64(livingCells) / float64(grid.Width()*grid.Height()) * 100
	)

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, livingCells, density)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// displayFinalStats prints the closing summary line
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
