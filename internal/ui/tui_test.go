package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSelectModelEnterChoosesItem(t *testing.T) {
	var m tea.Model = newSelectModel("Select", []string{"a", "b", "c"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sm := m.(selectModel)
	if sm.chosen != 1 {
		t.Errorf("chosen = %d, want 1", sm.chosen)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should quit the program")
	}
}

func TestSelectModelStartsUnchosen(t *testing.T) {
	m := newSelectModel("Select", []string{"a"})
	if m.chosen != -1 {
		t.Errorf("chosen = %d, want -1", m.chosen)
	}
}

func TestInputModel(t *testing.T) {
	var m tea.Model = newInputModel("Anime title")
	for _, r := range "naruto" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	im := m.(inputModel)
	if !im.done {
		t.Error("enter should finish input")
	}
	if im.input.Value() != "naruto" {
		t.Errorf("value = %q, want naruto", im.input.Value())
	}
}

func TestInputModelEscCancels(t *testing.T) {
	var m tea.Model = newInputModel("Anime title")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(inputModel).done {
		t.Error("esc should not finish input")
	}
}
