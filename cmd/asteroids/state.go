package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagStateSave string
	flagResetAll  bool
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the saved game",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the saved game",
	Args:  cobra.NoArgs,
	Run:   runStateShow,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved game",
	Long: `Clear the running game from the save file. High scores are kept unless
--all is given, which also clears the score history in the database.

Examples:
  asteroids state reset
  asteroids state reset --all`,
	Args: cobra.NoArgs,
	Run:  runStateReset,
}

func init() {
	stateCmd.PersistentFlags().StringVar(&flagStateSave, "save", defaultSavePath, "Save file")
	stateResetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Also clear high scores and score history")

	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}

func runStateShow(_ *cobra.Command, _ []string) {
	f := openSave(flagStateSave)
	snap, err := loadSave(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Save file: %s (%s)\n", f.Path(), f.Codec().Name())
	fmt.Println()
	if snap.GameOver {
		fmt.Println("No game in progress.")
	} else {
		fmt.Printf("Score:      %d\n", snap.Score)
		fmt.Printf("Lives:      %d\n", snap.Lives)
		fmt.Printf("Played:     %s\n", (time.Duration(snap.PlayingTicks) * time.Second / time.Duration(max(flagFPS, 1))).Round(time.Second))
		fmt.Printf("Asteroids:  %d\n", len(snap.Asteroids))
		fmt.Printf("Saucer:     %t\n", snap.Saucer != nil)
	}
	fmt.Println()
	fmt.Println(asteroids.HighScoresText(snap.HighScores, time.Local))
}

func runStateReset(_ *cobra.Command, _ []string) {
	f := openSave(flagStateSave)

	if flagResetAll {
		if err := f.Remove(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if store, err := storage.Open(flagDBPath); err == nil {
			defer store.Close()
			if err := store.ClearScores(asteroids.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
		fmt.Println("Save file removed and score history cleared.")
		return
	}

	snap, err := loadSave(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Save(asteroids.Snapshot{GameOver: true, HighScores: snap.HighScores}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Game state cleared, high scores kept.")
}
