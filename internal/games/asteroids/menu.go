package asteroids

import "strings"

// MenuID names one of the game's menus. MenuNone means the game is being played.
type MenuID int

const (
	MenuNone MenuID = iota
	MenuMain
	MenuPause
	MenuGameOver
	MenuSettings
	MenuResetConfirm
	MenuHighScores
	menuCount
)

// Command is what a button does when confirmed.
type Command int

const (
	CmdContinue Command = iota
	CmdNewGame
	CmdStartFresh // stamps the running high score, then starts a new game
	CmdHighScores
	CmdSettings
	CmdQuit
	CmdMainMenu
	CmdLeaveGame // records high scores, then opens the main menu
	CmdResetState
	CmdAskResetAll
	CmdResetAll
)

// Button is one entry of a menu. Inactive buttons cannot be selected.
type Button struct {
	Label    string
	Command  Command
	Active   bool
	Selected bool
}

// Menu is a list of buttons with an optional title text.
// Transparent menus are drawn over the running game.
type Menu struct {
	ID          MenuID
	Title       string
	Text        string
	Transparent bool
	Parent      MenuID
	Buttons     []Button
}

// Layout in world units.
const (
	menuTitleY      = 100
	menuTextY       = 205
	menuTextLineH   = 30
	menuButtonY     = 225
	menuButtonGap   = 50
	menuButtonAfter = 50
)

func (m *Menu) deselectAll() {
	for i := range m.Buttons {
		m.Buttons[i].Selected = false
	}
}

// SelectTop selects the topmost active button.
func (m *Menu) SelectTop() {
	m.deselectAll()
	for i := range m.Buttons {
		if m.Buttons[i].Active {
			m.Buttons[i].Selected = true
			return
		}
	}
}

// SelectedIndex returns the index of the selected button, or -1.
func (m *Menu) SelectedIndex() int {
	for i, b := range m.Buttons {
		if b.Selected {
			return i
		}
	}
	return -1
}

func (m *Menu) move(step int) bool {
	cur := m.SelectedIndex()
	if cur < 0 {
		return false
	}
	for i := cur + step; i >= 0 && i < len(m.Buttons); i += step {
		if m.Buttons[i].Active {
			m.Buttons[cur].Selected = false
			m.Buttons[i].Selected = true
			return true
		}
	}
	return false
}

// SelectAbove moves the selection to the nearest active button above.
// It reports whether the selection changed.
func (m *Menu) SelectAbove() bool { return m.move(-1) }

// SelectBelow moves the selection to the nearest active button below.
func (m *Menu) SelectBelow() bool { return m.move(1) }

// TextLines returns the body text split into lines.
func (m *Menu) TextLines() []string {
	if m.Text == "" {
		return nil
	}
	return strings.Split(m.Text, "\n")
}

// ButtonY returns the vertical position of button i. Buttons follow the text.
func (m *Menu) ButtonY(i int) float64 {
	start := menuButtonY
	if n := len(m.TextLines()); n > 0 {
		start = menuTextY + n*menuTextLineH + menuButtonAfter
	}
	return float64(start + i*menuButtonGap)
}

// menuSet holds every menu, indexed by MenuID.
type menuSet [menuCount]*Menu

func newMenuSet(gameOver bool) *menuSet {
	var ms menuSet
	ms[MenuMain] = &Menu{ID: MenuMain, Title: "Asteroids", Buttons: []Button{
		{Label: "Continue", Command: CmdContinue, Active: !gameOver},
		{Label: "New Game", Command: CmdStartFresh, Active: true},
		{Label: "High Scores", Command: CmdHighScores, Active: true},
		{Label: "Settings", Command: CmdSettings, Active: true},
		{Label: "Quit Game", Command: CmdQuit, Active: true},
	}}
	ms[MenuPause] = &Menu{ID: MenuPause, Title: "Paused", Transparent: true, Buttons: []Button{
		{Label: "Continue", Command: CmdContinue, Active: true},
		{Label: "Main Menu", Command: CmdLeaveGame, Active: true},
	}}
	ms[MenuGameOver] = &Menu{ID: MenuGameOver, Title: "Game Over!", Transparent: true, Buttons: []Button{
		{Label: "New Game", Command: CmdNewGame, Active: true},
		{Label: "Main Menu", Command: CmdMainMenu, Active: true},
	}}
	ms[MenuSettings] = &Menu{ID: MenuSettings, Title: "Settings", Parent: MenuMain, Buttons: []Button{
		{Label: "Reset Game State", Command: CmdResetState, Active: true},
		{Label: "Reset All", Command: CmdAskResetAll, Active: true},
		{Label: "Back", Command: CmdMainMenu, Active: true},
	}}
	ms[MenuResetConfirm] = &Menu{
		ID:     MenuResetConfirm,
		Title:  "Confirm Reset",
		Text:   "Are you sure you want to reset\nthe game state and high scores?",
		Parent: MenuSettings,
		Buttons: []Button{
			{Label: "Confirm", Command: CmdResetAll, Active: true},
			{Label: "Back", Command: CmdSettings, Active: true},
		},
	}
	ms[MenuHighScores] = &Menu{ID: MenuHighScores, Title: "High Scores", Parent: MenuMain, Buttons: []Button{
		{Label: "Back", Command: CmdMainMenu, Active: true},
	}}
	return &ms
}

// get returns the menu for id, or nil for MenuNone.
func (ms *menuSet) get(id MenuID) *Menu {
	if id <= MenuNone || id >= menuCount {
		return nil
	}
	return ms[id]
}
