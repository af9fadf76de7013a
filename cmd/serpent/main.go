// serpent is a toroidal snake game for the terminal: steer a growing chain
// around a wrap-around 60x20 board, eat food, avoid your own tail.
//
// Usage:
//
//	serpent play     - Play in the local terminal
//	serpent scores   - Show the high-score table
//	serpent serve    - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Settings file (default: ~/.serpent/config.yaml)
//	--db <path>      - Scores database (default: ~/.serpent/scores.db)
//	--seed <value>   - RNG seed for reproducible food placement (0 = random)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDB     string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "serpent - a wrap-around snake game in your terminal",
	Long: `serpent is a terminal snake game on a toroidal board: leaving one
edge re-enters at the opposite edge. Eat food to grow and score; running
into your own body ends the game.

Controls:
  Arrows/WASD  - Steer
  Q/Esc/Ctrl+C - Quit

Examples:
  serpent play
  serpent scores
  serpent serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to scores database (overrides settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
