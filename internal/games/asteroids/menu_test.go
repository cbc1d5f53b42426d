package asteroids

import "testing"

func TestMenuSelection(t *testing.T) {
	m := &Menu{Buttons: []Button{
		{Label: "a", Active: false},
		{Label: "b", Active: true},
		{Label: "c", Active: false},
		{Label: "d", Active: true},
	}}

	m.SelectTop()
	if m.SelectedIndex() != 1 {
		t.Fatalf("top = %d, want 1", m.SelectedIndex())
	}
	if m.SelectAbove() {
		t.Error("nothing active above b")
	}
	if !m.SelectBelow() || m.SelectedIndex() != 3 {
		t.Errorf("below should skip the inactive c, got %d", m.SelectedIndex())
	}
	if m.SelectBelow() {
		t.Error("d is the last button")
	}
	if !m.SelectAbove() || m.SelectedIndex() != 1 {
		t.Errorf("above should return to b, got %d", m.SelectedIndex())
	}

	selected := 0
	for _, b := range m.Buttons {
		if b.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("%d buttons selected", selected)
	}
}

func TestMenuWithoutActiveButtons(t *testing.T) {
	m := &Menu{Buttons: []Button{{Label: "a"}, {Label: "b"}}}
	m.SelectTop()
	if m.SelectedIndex() != -1 {
		t.Error("no active button means no selection")
	}
	if m.SelectBelow() || m.SelectAbove() {
		t.Error("moving without a selection does nothing")
	}
}

func TestMenuLayout(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 225},
		{"one line", 285},
		{"two\nlines", 315},
		{"\n100", 315},
	}
	for _, tt := range tests {
		m := &Menu{Text: tt.text}
		if got := m.ButtonY(0); got != tt.want {
			t.Errorf("ButtonY(0) with %q = %v, want %v", tt.text, got, tt.want)
		}
		if got := m.ButtonY(2); got != tt.want+100 {
			t.Errorf("ButtonY(2) with %q = %v, want %v", tt.text, got, tt.want+100)
		}
	}
}

func TestMenuSet(t *testing.T) {
	ms := newMenuSet(true)
	if ms.get(MenuNone) != nil {
		t.Error("MenuNone has no menu")
	}
	for id := MenuMain; id < menuCount; id++ {
		m := ms.get(id)
		if m == nil || m.ID != id {
			t.Fatalf("menu %d missing or mislabeled", id)
		}
	}
	if ms.get(MenuMain).Buttons[0].Active {
		t.Error("Continue is inactive when no game runs")
	}
	if !newMenuSet(false).get(MenuMain).Buttons[0].Active {
		t.Error("Continue is active for a running game")
	}
	if !ms.get(MenuPause).Transparent || !ms.get(MenuGameOver).Transparent || ms.get(MenuMain).Transparent {
		t.Error("only pause and game over are drawn over the field")
	}
	if ms.get(MenuResetConfirm).Parent != MenuSettings || ms.get(MenuSettings).Parent != MenuMain {
		t.Error("escape targets are wrong")
	}
}
