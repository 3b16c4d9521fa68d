package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"demohost/pkg/harness"
)

var (
	listTitleStyle      = lipgloss.NewStyle().MarginLeft(2)
	listPaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	listHelpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// MenuItem is one selectable line of the list menu.
type MenuItem struct {
	Key, Name, Desc string
}

func (i MenuItem) Title() string       { return "[" + i.Key + "] " + i.Name }
func (i MenuItem) Description() string { return i.Desc }
func (i MenuItem) FilterValue() string { return i.Name }

// MenuModel is a bubbletea model choosing one menu entry. Entry keys work as
// shortcuts; enter picks the highlighted entry.
type MenuModel struct {
	list        list.Model
	keys        map[string]bool
	Selected    string
	Interrupted bool
}

// NewMenuModel builds the list for a menu view.
func NewMenuModel(view harness.MenuView) MenuModel {
	items := make([]list.Item, len(view.Entries))
	keys := make(map[string]bool, len(view.Entries))
	for i, e := range view.Entries {
		items[i] = MenuItem{Key: e.Key, Name: e.Label, Desc: describeEntry(e)}
		keys[e.Key] = true
	}

	const defaultWidth = 40
	const listHeight = 16

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = view.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = listTitleStyle
	l.Styles.PaginationStyle = listPaginationStyle
	l.Styles.HelpStyle = listHelpStyle
	l.AdditionalShortHelpKeys = menuKeys.ShortHelp
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalFullHelpKeys = menuKeys.ShortHelp

	return MenuModel{list: l, keys: keys}
}

func describeEntry(e harness.MenuEntry) string {
	switch e.Kind {
	case harness.EntryScenario:
		return "Run scenario"
	case harness.EntryQuit:
		return "Leave the menu"
	default:
		return "Menu action"
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Interrupt):
			m.Interrupted = true
			return m, tea.Quit

		case key.Matches(msg, menuKeys.Choose):
			if i, ok := m.list.SelectedItem().(MenuItem); ok {
				m.Selected = i.Key
			}
			return m, tea.Quit

		case m.keys[msg.String()]:
			m.Selected = msg.String()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.Selected != "" || m.Interrupted {
		return ""
	}
	return "\n" + m.list.View()
}
