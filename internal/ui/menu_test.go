package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demohost/pkg/harness"
)

func testView() harness.MenuView {
	return harness.MenuView{
		Title: "Demos",
		Entries: []harness.MenuEntry{
			{Key: "1", Label: "counting", Kind: harness.EntryScenario},
			{Key: "2", Label: "sleep", Kind: harness.EntryScenario},
			{Key: "h", Label: "Help", Kind: harness.EntryAction},
			{Key: "q", Label: "Quit", Kind: harness.EntryQuit},
		},
	}
}

func TestMenuModel_Selection(t *testing.T) {
	model := NewMenuModel(testView())

	// Initial state
	assert.Equal(t, "", model.Selected)
	assert.False(t, model.Interrupted)

	// Send Enter on first item
	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := updatedModel.(MenuModel)
	assert.Equal(t, "1", m.Selected)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestMenuModel_Navigation(t *testing.T) {
	model := NewMenuModel(testView())

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	updatedModel, _ = updatedModel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := updatedModel.(MenuModel)
	assert.Equal(t, "2", m.Selected)
}

func TestMenuModel_Shortcut(t *testing.T) {
	model := NewMenuModel(testView())

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.Equal(t, "h", updatedModel.(MenuModel).Selected)

	updatedModel, _ = NewMenuModel(testView()).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "q", updatedModel.(MenuModel).Selected)
}

func TestMenuModel_Interrupt(t *testing.T) {
	model := NewMenuModel(testView())

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	m := updatedModel.(MenuModel)
	assert.True(t, m.Interrupted)
	assert.Empty(t, m.Selected)
	assert.NotNil(t, cmd)
}

func TestMenuModel_View(t *testing.T) {
	model := NewMenuModel(testView())
	view := model.View()

	assert.Contains(t, view, "Demos")
	assert.Contains(t, view, "[1] counting")
}

func TestSelectionOf(t *testing.T) {
	m := NewMenuModel(testView())

	m.Selected = "2"
	sel, err := selectionOf(m)
	require.NoError(t, err)
	assert.Equal(t, "2", sel)

	m.Selected = ""
	sel, err = selectionOf(m)
	require.NoError(t, err)
	assert.Equal(t, harness.QuitKey, sel)

	m.Interrupted = true
	_, err = selectionOf(m)
	assert.ErrorIs(t, err, harness.ErrInterrupted)
}
