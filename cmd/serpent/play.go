package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakeoillabs/serpent/internal/config"
	"github.com/snakeoillabs/serpent/internal/platform/tui"
	"github.com/snakeoillabs/serpent/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play serpent in the local terminal",
	Long: `Start a game in the current terminal using the alternate screen.

The snake drifts in its last direction between key presses. The game ends
when the head runs into the body; the final score is saved to the
high-score table.

Examples:
  serpent play
  serpent play --seed 12345
  serpent play --config ./my-theme.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(settings))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil // game still works, scores aren't kept
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(store, settings, width, height, flagSeed)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// dbPath resolves the database path: the --db flag wins over settings.
func dbPath(settings config.Settings) string {
	if flagDB != "" {
		return flagDB
	}
	return settings.Storage.Path
}
