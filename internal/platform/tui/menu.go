package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/games/t2048"
	"github.com/Watersilver/2powN/internal/registry"
)

// MenuItem represents a selectable preset in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// Custom reports whether the item opens the options form.
func (i MenuItem) Custom() bool {
	return i.GameID == t2048.CustomID
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a menu listing every registered preset followed
// by a custom entry.
func NewMenuModel(reg *registry.Registry, cfg core.RuntimeConfig) MenuModel {
	games := reg.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}
	items = append(items, MenuItem{
		GameID:      t2048.CustomID,
		Title:       "Custom…",
		Description: "choose size and target",
	})

	m := MenuModel{
		items:  items,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the preset table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Preset", Width: 12},
		{Title: "Name", Width: 10},
		{Title: "Description", Width: 26},
	}

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		id := item.GameID
		if item.Custom() {
			id = ""
		}
		rows[i] = table.Row{id, item.Title, item.Description}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-8, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(min(len(m.items)+1, max(m.height-8, 3)))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 p o w N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hintStyle.Render("Select a board"), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if len(m.items) > 0 {
		item := m.items[m.table.Cursor()]
		if !item.Custom() {
			b.WriteString(hintStyle.Render(fmt.Sprintf("play with: 2pown play %s", item.GameID)))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
