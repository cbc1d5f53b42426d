package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSave       string
	flagAudioLog   bool
	flagLog        string
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game. It opens on the main menu; a saved game can be continued.

Controls:
  Up/W        - Thrust (menu up)
  Down/S      - Menu down
  Left/A      - Turn left
  Right/D     - Turn right
  Space       - Fire
  Enter       - Select menu entry
  Esc/P       - Pause, back
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit (the game is saved)

Terminals report key repeats but no key releases. A key counts as held
until no repeat arrived for --hold-ticks ticks.

Difficulty options:
  easy   - Fewer rocks, 5 lives
  normal - Default settings
  hard   - More rocks, 2 lives
  fixed  - No progression, spawn rate stays at the first tier

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --save ./game.json
  asteroids play --config ./my-asteroids.yaml --log ./asteroids.log --audio-log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSave, "save", defaultSavePath, "Save file (.yaml, .json or .msgpack)")
	playCmd.Flags().BoolVar(&flagAudioLog, "audio-log", false, "Log sound cues at debug level")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key stays held after its last repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(flagLog, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var player audio.Player = audio.Nop{}
	if flagAudioLog {
		logger.SetLevel(log.DebugLevel)
		player = audio.NewLogPlayer(logger)
	}

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(asteroids.ID, registry.Env{
		Logger:   logger,
		Audio:    player,
		Snapshot: openSave(flagSave),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagHoldTicks, os.Getenv("USER"))

	if store != nil {
		if best, err := store.HighScore(asteroids.ID); err == nil && best > 0 {
			fmt.Printf("Best score: %d\n", best)
		}
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
