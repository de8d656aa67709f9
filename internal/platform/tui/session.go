package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/games/t2048"
	"github.com/Watersilver/2powN/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenOptions
	screenGame
)

// SessionConfig holds what a session needs to build games.
type SessionConfig struct {
	Registry *registry.Registry
	Options  t2048.Options
	// Defaults prefill the options form.
	Defaults board.Config
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
}

// SessionModel manages the full flow: menu -> options -> game -> menu.
// It is the top-level model for SSH sessions and for play without a preset.
type SessionModel struct {
	cfg      SessionConfig
	id       uuid.UUID
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	options  OptionsModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Registry == nil {
		cfg.Registry = registry.Default
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	id := uuid.New()

	return SessionModel{
		cfg:    cfg,
		id:     id,
		logger: cfg.Logger.With("session", id.String()),
		menu:   NewMenuModel(cfg.Registry, cfg.Runtime),
	}
}

// ID returns the session identifier.
func (m SessionModel) ID() uuid.UUID {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenOptions:
		return m.updateOptions(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	if selected.Custom() {
		m.options = NewOptionsModel(m.cfg.Defaults, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.screen = screenOptions
		return m, m.options.Init()
	}

	game, err := m.cfg.Registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since the menu only shows registered games
		m.logger.Error("cannot create game", "game", selected.GameID, "err", err)
		return m.toMenu()
	}
	return m.startGame(game)
}

func (m SessionModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newOptions, cmd := m.options.Update(msg)
	if optionsModel, ok := newOptions.(OptionsModel); ok {
		m.options = optionsModel
	}

	switch {
	case m.options.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.options.WantsBack():
		return m.toMenu()
	case m.options.Selected() != nil:
		return m.startGame(t2048.NewCustom(*m.options.Selected(), m.cfg.Options))
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		return m.toMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	m.logger.Info("game selected", "game", game.ID())

	gameModel := NewModel(game, m.cfg.Runtime, m.logger)
	gameModel.embedded = true
	m.game = &gameModel
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.cfg.Registry, m.cfg.Runtime)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenOptions:
		return m.options.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a local session starting at the preset menu.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(NewSessionModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
