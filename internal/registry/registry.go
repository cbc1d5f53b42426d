// Package registry maps game IDs to factories. Game packages register from
// init, and the CLI and SSH server create games by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Game is a fixed-timestep simulation the host drives. A game owns no
// terminal, timer or goroutine: the host feeds it input one tick at a time,
// asks it to draw, and reads its State.
type Game interface {
	ID() string    // stable key for the CLI and the score history
	Title() string // display name

	// Reset prepares a game for play. A game with a save file restores it here.
	Reset(cfg core.RuntimeConfig)

	// Step runs exactly one tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. It does not change the game.
	Render(dst core.Canvas)

	State() core.GameState
}

// Persistent is implemented by games that keep state between sessions.
// The platform calls Shutdown once, after the last Step.
type Persistent interface {
	Shutdown() error
}

// Env carries the collaborators a game is built with.
// Zero fields select the game's defaults: no logging, silence, no save file
// and the wall clock.
type Env struct {
	Logger   *log.Logger
	Audio    audio.Player
	Snapshot *storage.SnapshotFile
	Clock    func() time.Time
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game from its collaborators.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Env{}).Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new game of the given id.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
