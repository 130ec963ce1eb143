// snaketris is a terminal snake arena where fallen snakes return as
// falling blocks.
//
// Usage:
//
//	snaketris list             - List game modes
//	snaketris play [mode]      - Play a mode (default: snaketris)
//	snaketris menu             - Pick modes interactively
//	snaketris serve            - Start SSH server for remote play
//	snaketris scores [mode]    - Show high scores and recent matches
//	snaketris simulate         - Run a headless match, optionally to CSV
//	snaketris config [mode]    - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snaketris/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaketris/internal/games/snaketris"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketris",
	Short: "Snaketris - snakes, rivals, and falling blocks in your terminal",
	Long: `Snaketris is a snake arena for the terminal. You share a wrapping board
with AI snakes that hunt food and each other. When a snake dies it comes back
as a falling block; blocks settle at the bottom and full rows clear.

Examples:
  snaketris play
  snaketris play snaketris_classic --difficulty easy
  snaketris menu
  snaketris serve --ssh :2222
  snaketris simulate --frames 36000 --telemetry ./run.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		snaketris.SetConfigPath(flagConfig)
		snaketris.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snaketris/snaketris.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable the grow (+) and shrink (-) keys")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
