package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// scriptGame replays a fixed list of states and records the input it saw.
type scriptGame struct {
	states []core.GameState
	quitAt int
	step   int
	inputs []core.InputFrame
	resets int
}

func (g *scriptGame) ID() string { return "script" }
func (g *scriptGame) Title() string { return "Script" }
func (g *scriptGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptGame) State() core.GameState { return g.states[min(g.step, len(g.states)-1)] }
func (g *scriptGame) WorldSize() (float64, float64) { return 80, 24 }

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.step++
	return core.StepResult{State: g.State(), Quit: g.quitAt > 0 && g.step >= g.quitAt}
}

func (g *scriptGame) Render(dst core.Canvas) {
	dst.Clear()
	dst.DrawText(core.Vec(0, 0), "score", core.TextStyle{Color: core.ColorWhite})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestKeyMapping(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{"s", core.ActionDown},
		{" ", core.ActionFire},
		{"enter", core.ActionConfirm},
		{"p", core.ActionBack},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("%q -> %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(3)

	f := core.NewInputFrame()
	h.Press(core.ActionLeft, 0, &f)
	h.Apply(0, &f)
	if !f.Has(core.ActionLeft) || !f.Held(core.ActionLeft) {
		t.Fatal("first event is a press and holds the key")
	}

	f = core.NewInputFrame()
	h.Apply(2, &f)
	if f.Has(core.ActionLeft) || !f.Held(core.ActionLeft) {
		t.Fatal("inside the window the key stays held without a new edge")
	}

	f = core.NewInputFrame()
	h.Press(core.ActionLeft, 2, &f)
	if !f.Repeated(core.ActionLeft) || f.Has(core.ActionLeft) {
		t.Fatal("a second event while held is a repeat")
	}

	f = core.NewInputFrame()
	h.Apply(5, &f)
	if !f.Released(core.ActionLeft) || f.Held(core.ActionLeft) {
		t.Fatal("the key is released once the window passes")
	}

	f = core.NewInputFrame()
	h.Press(core.ActionLeft, 6, &f)
	if !f.Has(core.ActionLeft) {
		t.Error("after a release the next event is a press again")
	}
}

func TestModelFeedsHeldInput(t *testing.T) {
	g := &scriptGame{states: []core.GameState{{}}}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, 2)
	if g.resets != 1 {
		t.Fatalf("NewModel should reset the game once, got %d", g.resets)
	}

	next, _ := m.Update(keyMsg("up"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	for range 3 {
		m = tick(t, m)
	}

	if len(g.inputs) != 3 {
		t.Fatalf("%d steps, want 3", len(g.inputs))
	}
	first, second, third := g.inputs[0], g.inputs[1], g.inputs[2]
	if !first.Has(core.ActionUp) || !first.Has(core.ActionConfirm) {
		t.Error("first tick carries both presses")
	}
	if second.Has(core.ActionConfirm) || !second.Held(core.ActionUp) {
		t.Error("edges last one tick, holds continue")
	}
	if !third.Released(core.ActionUp) {
		t.Error("up should be released after the hold window")
	}
}

func TestModelRecordsScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &scriptGame{
		states: []core.GameState{
			{GameOver: true},
			{Score: 10},
			{Score: 70, GameOver: true},
			{Score: 70, GameOver: true},
			{Score: 0},
			{Score: 30, GameOver: true},
		},
		quitAt: 6,
	}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, 0).WithPlayer("ann")

	var cmd tea.Cmd
	for range 6 {
		var next tea.Model
		next, cmd = m.Update(TickMsg{})
		m = next.(Model)
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("the game's quit request should end the program")
	}

	scores, err := store.RecentScores("script", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("%d scores recorded, want 2", len(scores))
	}
	if scores[0].Score != 30 || scores[1].Score != 70 || scores[0].Player != "ann" {
		t.Errorf("recorded %+v", scores)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.DrawText(0, 1, "cd", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("default-colored cells are written as is, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "cd") {
		t.Errorf("styled run lost its text: %q", lines[1])
	}
}
