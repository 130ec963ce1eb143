package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaketris/internal/core"
	"github.com/vovakirdan/snaketris/internal/games/snaketris"
	"github.com/vovakirdan/snaketris/internal/storage"
	"github.com/vovakirdan/snaketris/internal/telemetry"
)

var (
	flagFrames     uint64
	flagWidth      int
	flagHeight     int
	flagTelemetry  string
	flagWindow     uint64
	flagAutoSpawn  bool
	flagSaveResult bool
	flagClassic    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless match",
	Long: `Run a match without a terminal UI. The player idles and, with
--respawn, comes back every time it dies, so the run exercises the AI snakes,
food, and the block game. Window statistics can be written as CSV.

Examples:
  snaketris simulate --frames 36000 --seed 7
  snaketris simulate --telemetry ./runs/seed7.csv --window 600
  snaketris simulate --classic --save`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 120, "Virtual screen width in characters")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 40, "Virtual screen height in characters")
	simulateCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Write window statistics to this CSV file")
	simulateCmd.Flags().Uint64Var(&flagWindow, "window", 600, "Frames per telemetry window")
	simulateCmd.Flags().BoolVar(&flagAutoSpawn, "respawn", true, "Respawn the player whenever it dies")
	simulateCmd.Flags().BoolVar(&flagSaveResult, "save", false, "Record the result in the scores database")
	simulateCmd.Flags().BoolVar(&flagClassic, "classic", false, "Simulate the classic mode")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	out, err := telemetry.Create(flagTelemetry)
	if err != nil {
		return err
	}
	defer out.Close()

	game := snaketris.New()
	if flagClassic {
		game = snaketris.NewClassic()
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, TickRate: flagFPS, Seed: seed})
	if !game.World().Board().Ready() {
		return fmt.Errorf("screen %dx%d is too small for the board", flagWidth, flagHeight)
	}
	logger.Info("simulation started", "mode", game.ID(), "seed", seed, "frames", flagFrames)

	collector := telemetry.NewCollector(flagWindow)
	input := core.NewInputFrame()
	start := time.Now()
	for range flagFrames {
		input.Clear()
		if flagAutoSpawn && game.State().GameOver {
			input.Set(core.ActionRespawn)
		}
		game.Step(input)
		if collector.Record(game.LastReport()) {
			stats := collector.Flush(game.World())
			logger.Debug("window", "n", stats.Window, "snakes", stats.Snakes, "blocks", stats.Blocks, "settled", stats.Settled)
			if err := out.Write(stats); err != nil {
				return err
			}
		}
	}
	if collector.Pending() {
		if err := out.Write(collector.Flush(game.World())); err != nil {
			return err
		}
	}

	match := game.Match()
	logger.Info("simulation finished", "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Printf("%s  seed %d  %d frames\n\n", game.Title(), seed, match.Frames)
	fmt.Printf("  %-4s  %-14s  %-6s  %s\n", "Rank", "Name", "Score", "State")
	fmt.Printf("  %-4s  %-14s  %-6s  %s\n", "----", "----", "-----", "-----")
	for i, s := range game.Standings(0) {
		name := s.Name
		if s.Player {
			name += " *"
		}
		fmt.Printf("  %-4d  %-14s  %-6d  %s\n", i+1, name, s.Score, s.Status)
	}
	fmt.Printf("\nPlayer: score %d, best length %d, %d kills, %d deaths, %d meals\n",
		match.Score, match.MaxLength, match.Kills, match.Deaths, match.Meals)

	if flagSaveResult {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.SaveMatch(storage.NewMatchRecord(game.ID(), "simulation", match)); err != nil {
			return err
		}
	}
	return nil
}
