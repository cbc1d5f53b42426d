// asteroids plays the classic vector arcade game in the terminal.
//
// Usage:
//
//	asteroids play           - Play in this terminal
//	asteroids serve          - Start SSH server for remote play
//	asteroids scores         - Show high scores and score history
//	asteroids state show     - Inspect the saved game
//	asteroids state reset    - Clear the saved game (--all drops high scores too)
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const defaultSavePath = "~/.asteroids/save.yaml"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - the vector arcade classic in your terminal",
	Long: `Asteroids is a terminal rendition of the vector arcade game: steer the
ship, shoot the rocks, and watch out for flying saucers.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  state    - Inspect or reset the saved game

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids serve --ssh :2222
  asteroids scores --tui`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stateCmd)
}

// newLogger builds the CLI logger. With an empty path the logger writes to
// fallback; the returned close function is always safe to call.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          asteroids.ID,
	})
	return logger, closeFn, nil
}

// gameTitle returns the display title of a registered game, or its ID.
func gameTitle(id string) string {
	for _, info := range registry.List() {
		if info.ID == id {
			return info.Title
		}
	}
	return id
}

// openSave opens the save file or exits with an error.
func openSave(path string) *storage.SnapshotFile {
	f, err := storage.OpenSnapshot(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return f
}

// loadSave reads the saved game. A missing save yields an empty, finished game.
func loadSave(f *storage.SnapshotFile) (asteroids.Snapshot, error) {
	snap := asteroids.Snapshot{GameOver: true}
	if err := f.Load(&snap); err != nil && !errors.Is(err, storage.ErrNoSnapshot) {
		return snap, err
	}
	return snap, nil
}
