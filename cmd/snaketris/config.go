package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snaketris/internal/config"
	"github.com/vovakirdan/snaketris/internal/games/snaketris"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the configuration",
	Long: `Print the built-in default configuration, ready to copy into
~/.snaketris/configs/snaketris.yaml. With --resolved, print the configuration
a match would actually use after --config and --difficulty are applied.

Examples:
  snaketris config > ~/.snaketris/configs/snaketris.yaml
  snaketris config snaketris_classic --resolved --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, args []string) error {
	game := snaketris.New()
	if len(args) == 1 {
		switch args[0] {
		case string(snaketris.ModeArcade):
		case string(snaketris.ModeClassic):
			game = snaketris.NewClassic()
		default:
			return fmt.Errorf("unknown mode %q", args[0])
		}
	}

	if !flagResolved && game.ID() == string(snaketris.ModeArcade) {
		fmt.Print(string(config.GetDefaultYAML(game.ID())))
		return nil
	}

	data, err := yaml.Marshal(game.LoadConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
