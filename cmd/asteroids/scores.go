package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagScoresSave   string
	flagScoresTUI    bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table of the saved game, followed by the ten best
finished games from the score history.

With --tui the score history opens in an interactive table with Top and
Recent tabs.

Examples:
  asteroids scores
  asteroids scores --save ./game.json
  asteroids scores --tui
  asteroids scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSave, "save", defaultSavePath, "Save file to read high scores from")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the score history interactively")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only list games of this player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, asteroids.ID, gameTitle(asteroids.ID), width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	snap, err := loadSave(openSave(flagScoresSave))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Println("High Scores")
	fmt.Println()
	fmt.Println(asteroids.HighScoresText(snap.HighScores, time.Local))
	fmt.Println()

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(asteroids.ID, flagScoresPlayer, 10)
	} else {
		scores, err = store.TopScores(asteroids.ID, 10)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("History")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No finished games recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(asteroids.ID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Players: %d  Best: %d  Average: %.0f\n",
			stats.GamesCount, stats.Players, stats.HighScore, stats.AvgScore)
	}
}
