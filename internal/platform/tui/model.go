package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Default play area when a game does not report its own.
const (
	defaultWorldW = 800
	defaultWorldH = 600
)

type worldSizer interface {
	WorldSize() (float64, float64)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	tick       int
	quitting   bool
	player     string // name stored with finished games
	scoreSaved bool   // Whether the score of the current finished game is recorded
}

// NewModel resets game with cfg and wraps it in a model.
// holdTicks is the window of the hold tracker; zero selects DefaultHoldTicks.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(holdTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// WithPlayer names the player the score history credits.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a key event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.MapKey(msg)
	switch {
	case a == core.ActionNone:
	case holdable(a):
		m.hold.Press(a, m.tick, &m.inputFrame)
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleTick runs one simulation tick. The game decides when to quit so the
// tick that carries the quit request still completes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(m.tick, &m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame = core.NewInputFrame()
	m.tick++

	m.recordScore()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the score of each finished game once.
func (m *Model) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	if m.store != nil && m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score)
	}
	m.scoreSaved = true
}

func (m *Model) render() {
	w, h := float64(defaultWorldW), float64(defaultWorldH)
	if s, ok := m.game.(worldSizer); ok {
		w, h = s.WorldSize()
	}
	m.game.Render(core.NewScreenCanvas(m.screen, w, h))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Run plays game in the terminal until it asks to quit, then shuts it down.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int, player string) error {
	model := NewModel(game, store, cfg, holdTicks).WithPlayer(player)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if pg, ok := game.(registry.Persistent); ok {
		if serr := pg.Shutdown(); serr != nil {
			err = errors.Join(err, serr)
		}
	}
	return err
}
