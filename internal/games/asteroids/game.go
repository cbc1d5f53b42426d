// Package asteroids implements the asteroids simulation: a ship, drifting
// rocks, flying saucers, scoring and the menus around them. The package has
// no terminal or audio dependencies; hosts drive it through Step and Render.
package asteroids

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// ID is the registry identifier of the game.
const ID = "asteroids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game owns one World and advances it tick by tick.
type Game struct {
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	table   *config.DifficultyTable
	menus   *menuSet
	world   *World

	spawnDistance   float64
	despawnDistance float64

	controls Controls
	quit     bool

	logger   *log.Logger
	sound    audio.Player
	save     *storage.SnapshotFile
	clock    func() time.Time
	override *config.AsteroidsConfig
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Nil keeps the default, which discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAudio sets the sound player.
func WithAudio(p audio.Player) Option {
	return func(g *Game) {
		if p != nil {
			g.sound = p
		}
	}
}

// WithSnapshot sets the save file loaded by Reset and written by Shutdown.
func WithSnapshot(f *storage.SnapshotFile) Option {
	return func(g *Game) { g.save = f }
}

// WithClock sets the time source used for high-score timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.clock = now
		}
	}
}

// WithConfig uses cfg instead of loading configuration files.
func WithConfig(cfg config.AsteroidsConfig) Option {
	return func(g *Game) { g.override = &cfg }
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
		sound:  audio.Nop{},
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(ID, func(env registry.Env) registry.Game {
		return New(
			WithLogger(env.Logger),
			WithAudio(env.Audio),
			WithSnapshot(env.Snapshot),
			WithClock(env.Clock),
		)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// World exposes the state for rendering and inspection.
func (g *Game) World() *World { return g.world }

// WorldSize returns the play area in world units. Valid after Reset.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Reset loads configuration and the saved game, then opens the main menu.
// A missing or unreadable save starts from an empty world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	if runtime.TickRate > 0 {
		g.cfg = g.cfg.AtRate(runtime.TickRate)
	}

	g.rng = newRNG(runtime.Seed)
	g.table = config.NewDifficultyTable(g.cfg.Difficulty, g.cfg.World.FPS)
	halfDiag := math.Hypot(g.cfg.World.Width/2, g.cfg.World.Height/2)
	g.spawnDistance = halfDiag + g.cfg.Asteroids.SpawnMargin
	g.despawnDistance = g.spawnDistance + g.cfg.Asteroids.DespawnMargin
	g.controls = Controls{}
	g.quit = false

	g.world = emptyWorld(nil, g.table.Tier(0))
	g.load()
	g.world.Tier = g.table.Tier(g.world.PlayingTicks)

	g.menus = newMenuSet(g.world.GameOver)
	g.openMenu(MenuMain)
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.logger.Warn("config rejected, using defaults", "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	return cfg
}

func (g *Game) load() {
	if g.save == nil {
		return
	}
	var snap Snapshot
	if err := g.save.Load(&snap); err != nil {
		if errors.Is(err, storage.ErrNoSnapshot) {
			g.logger.Debug("no saved game", "path", g.save.Path())
		} else {
			g.logger.Warn("cannot load saved game, starting fresh", "path", g.save.Path(), "err", err)
		}
		return
	}
	if err := g.ApplySnapshot(snap); err != nil {
		g.logger.Warn("saved game rejected, starting fresh", "path", g.save.Path(), "err", err)
	}
}

// Save writes the current state to the save file, if one is configured.
func (g *Game) Save() error {
	if g.save == nil {
		return nil
	}
	if err := g.save.Save(g.Snapshot()); err != nil {
		g.logger.Error("save failed", "path", g.save.Path(), "err", err)
		return fmt.Errorf("asteroids: save game: %w", err)
	}
	g.logger.Debug("game saved", "path", g.save.Path())
	return nil
}

// Shutdown finishes the session. A finished game is cleared so only its high
// score survives; a running one banks its pending points. The state is saved.
func (g *Game) Shutdown() error {
	if g.world.GameOver {
		g.resetGameState()
	} else {
		g.world.bank()
	}
	g.updateHighScores()
	return g.Save()
}

// Step handles the frame's input and advances the simulation one tick.
// A quit request still completes the tick; the host then calls Shutdown.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.handleInput(in)
	if g.world.Menu == MenuNone || g.world.Menu == MenuGameOver {
		g.update()
	}
	return core.StepResult{State: g.State(), Quit: g.quit}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Lives:    g.world.Lives,
		GameOver: g.world.GameOver,
		Paused:   !g.world.Playing(),
	}
}

func (g *Game) fps() int { return g.cfg.World.FPS }

func (g *Game) center() core.Vector {
	return core.Vec(g.cfg.World.Width/2, g.cfg.World.Height/2)
}

func (g *Game) openMenu(id MenuID) {
	g.world.Menu = id
	if m := g.menus.get(id); m != nil {
		m.SelectTop()
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	g.controls = Controls{
		Thrust: in.Held(core.ActionUp),
		Left:   in.Held(core.ActionLeft),
		Right:  in.Held(core.ActionRight),
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	// Menu actions may replace the world, so g.world is read after each one.
	if in.Has(core.ActionFire) && g.world.Playing() && g.world.Player != nil {
		g.world.FireRequested = true
	}
	if in.Has(core.ActionConfirm) && !g.world.Playing() {
		g.action()
	}
	if in.Has(core.ActionBack) {
		g.escape()
	}
	if in.Has(core.ActionUp) || in.Repeated(core.ActionUp) {
		if g.world.Playing() {
			if in.Has(core.ActionUp) && g.world.Player != nil {
				g.sound.Play(audio.Thrust, true)
			}
		} else if g.menus.get(g.world.Menu).SelectAbove() {
			g.sound.Play(audio.MenuSelect, false)
		}
	}
	if (in.Has(core.ActionDown) || in.Repeated(core.ActionDown)) && !g.world.Playing() {
		if g.menus.get(g.world.Menu).SelectBelow() {
			g.sound.Play(audio.MenuSelect, false)
		}
	}
	if in.Released(core.ActionUp) {
		g.sound.Stop(audio.Thrust)
	}
}

func (g *Game) escape() {
	w := g.world
	switch {
	case w.Playing():
		w.bank()
		g.menus.get(MenuPause).Text = "\n" + g.scoreLine()
		g.openMenu(MenuPause)
		g.sound.Stop(audio.Thrust)
		g.stopSaucerSounds()
	case w.Menu == MenuPause:
		g.continueGame()
	default:
		if parent := g.menus.get(w.Menu).Parent; parent != MenuNone {
			g.openMenu(parent)
		}
	}
}

func (g *Game) scoreLine() string {
	suffix := ""
	if g.world.NewHighScore {
		suffix = " (new high score)"
	}
	return fmt.Sprintf("%d%s", g.world.Score, suffix)
}

// action runs the selected button of the open menu.
func (g *Game) action() {
	m := g.menus.get(g.world.Menu)
	i := m.SelectedIndex()
	if i < 0 {
		return
	}
	g.run(m.Buttons[i].Command)
	g.sound.Play(audio.MenuAction, false)
}

func (g *Game) run(cmd Command) {
	switch cmd {
	case CmdContinue:
		g.continueGame()
	case CmdNewGame:
		g.NewGame()
	case CmdStartFresh:
		stampHighScore(g.world.HighScores, g.clock())
		g.NewGame()
	case CmdHighScores:
		g.menus.get(MenuHighScores).Text = HighScoresText(g.world.HighScores, g.clock().Location())
		g.openMenu(MenuHighScores)
	case CmdSettings:
		g.openMenu(MenuSettings)
	case CmdQuit:
		g.quit = true
	case CmdMainMenu:
		g.openMenu(MenuMain)
	case CmdLeaveGame:
		g.updateHighScores()
		g.openMenu(MenuMain)
	case CmdResetState:
		g.resetFromMenu()
	case CmdAskResetAll:
		g.openMenu(MenuResetConfirm)
	case CmdResetAll:
		g.ResetAll()
	}
}

func (g *Game) continueGame() {
	g.openMenu(MenuNone)
	if s := g.world.Saucer; s != nil && g.world.SaucerOnScreen {
		g.sound.Play(audio.Saucers[s.Size.Index], true)
	}
}

func (g *Game) setButtons(active bool, buttons ...*Button) {
	for _, b := range buttons {
		b.Active = active
	}
}

func (g *Game) continueButton() *Button   { return &g.menus[MenuMain].Buttons[0] }
func (g *Game) resetStateButton() *Button { return &g.menus[MenuSettings].Buttons[0] }
func (g *Game) resetAllButton() *Button   { return &g.menus[MenuSettings].Buttons[1] }

// NewGame starts a fresh game with a new ship and the initial rocks.
func (g *Game) NewGame() {
	w := emptyWorld(g.world.HighScores, g.table.Tier(0))
	w.GameOver = false
	w.Player = NewPlayer(g.center(), true, g.cfg.Player.InvincibilityTicks)
	for range g.cfg.Asteroids.InitialCount {
		w.Asteroids = append(w.Asteroids, SpawnAsteroid(g.rng, g.center(), g.spawnDistance))
	}
	w.Lives = g.cfg.Player.Lives
	g.world = w

	g.openMenu(MenuNone)
	g.setButtons(true, g.continueButton(), g.resetStateButton(), g.resetAllButton())
	g.logger.Info("new game", "lives", w.Lives)
}

// resetGameState clears the running game. High scores are kept.
func (g *Game) resetGameState() {
	menu := g.world.Menu
	g.world = emptyWorld(g.world.HighScores, g.table.Tier(0))
	g.world.Menu = menu
}

func (g *Game) resetFromMenu() {
	g.resetGameState()
	g.setButtons(false, g.continueButton(), g.resetStateButton())
	settings := g.menus.get(MenuSettings)
	settings.deselectAll()
	settings.Buttons[len(settings.Buttons)-1].Selected = true
	g.logger.Info("game state reset")
}

// ResetAll clears the game state and the high scores.
func (g *Game) ResetAll() {
	g.resetGameState()
	g.world.HighScores = nil
	g.setButtons(false, g.continueButton(), g.resetStateButton(), g.resetAllButton())
	g.openMenu(MenuSettings)
	g.logger.Info("game state and high scores reset")
}

func (g *Game) updateHighScores() {
	w := g.world
	w.HighScores = updateHighScores(w.HighScores, w.Score, w.GameOver, g.clock(), g.cfg.Scoring.MaxHighScores)
}

// award banks the previous pending points and makes points pending.
func (g *Game) award(points int) {
	w := g.world
	w.bank()
	w.Pending = points
	if w.Score+w.Pending > TopScore(w.HighScores) {
		w.NewHighScore = true
	}
}

func (g *Game) stopSaucerSounds() {
	for _, s := range audio.Saucers {
		g.sound.Stop(s)
	}
}

// playerDie takes a life and wrecks the ship. Losing the last life ends the game.
func (g *Game) playerDie() {
	w := g.world
	if w.Player == nil || w.GameOver {
		return
	}
	w.Lives--
	if w.Lives <= 0 {
		w.Lives = 0
		w.bank()
		w.GameOver = true
		g.menus.get(MenuGameOver).Text = g.scoreLine()
		g.openMenu(MenuGameOver)
		g.continueButton().Active = false
		g.updateHighScores()
		g.stopSaucerSounds()
		g.logger.Info("game over", "score", w.Score, "new_high_score", w.NewHighScore)
	}
	w.Fragment = NewPlayerFragment(g.rng, w.Player)
	g.sound.Stop(audio.Thrust)
	w.Player = nil
}

// saucerDie wrecks the saucer.
func (g *Game) saucerDie() {
	w := g.world
	s := w.Saucer
	if s == nil {
		return
	}
	if w.Playing() {
		g.sound.Play(audio.Bangs[s.Size.Index], false)
	}
	w.SaucerFragments = append(w.SaucerFragments, NewSaucerFragment(g.rng, s))
	w.Saucer = nil
	w.SaucerOnScreen = false
	g.stopSaucerSounds()
}
