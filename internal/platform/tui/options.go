package tui

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Watersilver/2powN/internal/board"
)

const (
	fieldSize = iota
	fieldPower
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ParseOptions turns the text of the options form into a board
// configuration. The winning condition is entered as an exponent of two.
func ParseOptions(sizeText, powerText string, spawn4 float64) (board.Config, error) {
	size, err := strconv.Atoi(strings.TrimSpace(sizeText))
	if err != nil {
		return board.Config{}, fmt.Errorf("%w (got %q)", board.ErrInvalidSize, sizeText)
	}

	power, err := strconv.Atoi(strings.TrimSpace(powerText))
	if err != nil {
		return board.Config{}, fmt.Errorf("%w (power %q)", board.ErrInvalidWinningCondition, powerText)
	}
	target, err := board.WinningConditionForPower(power)
	if err != nil {
		return board.Config{}, err
	}

	cfg := board.Config{Size: size, WinningCondition: target, Spawn4Prob: spawn4}
	if err := cfg.Validate(); err != nil {
		return board.Config{}, err
	}
	return cfg, nil
}

// powerOf returns log2(v) for powers of two, or the default exponent.
func powerOf(v int) int {
	if v > 1 && v&(v-1) == 0 {
		return bits.TrailingZeros(uint(v))
	}
	return bits.TrailingZeros(uint(board.DefaultWinningCondition))
}

// OptionsModel is the form asking for the grid size and the winning
// condition before a custom game starts.
type OptionsModel struct {
	inputs   []textinput.Model
	focus    int
	spawn4   float64
	keys     FormKeyMap
	help     help.Model
	width    int
	height   int
	err      error
	result   *board.Config
	back     bool
	quitting bool
}

// NewOptionsModel creates a form prefilled from a configuration.
func NewOptionsModel(initial board.Config, width, height int) OptionsModel {
	size := textinput.New()
	size.Prompt = "› "
	size.Placeholder = strconv.Itoa(board.DefaultSize)
	size.CharLimit = 2
	size.Width = 4
	size.SetValue(strconv.Itoa(initial.Size))

	power := textinput.New()
	power.Prompt = "› 2^"
	power.Placeholder = strconv.Itoa(powerOf(board.DefaultWinningCondition))
	power.CharLimit = 2
	power.Width = 4
	power.SetValue(strconv.Itoa(powerOf(initial.WinningCondition)))

	m := OptionsModel{
		inputs: []textinput.Model{size, power},
		spawn4: initial.Spawn4Prob,
		keys:   DefaultFormKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.inputs[fieldSize].Focus()
	return m
}

// Init starts the cursor blinking.
func (m OptionsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.Submit):
			cfg, err := ParseOptions(m.inputs[fieldSize].Value(), m.inputs[fieldPower].Value(), m.spawn4)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.result = &cfg
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *OptionsModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// View renders the form.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 p o w N"), m.width))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Choose grid size:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldSize].View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Winning condition:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldPower].View())
	if p, err := strconv.Atoi(m.inputs[fieldPower].Value()); err == nil {
		if target, err := board.WinningConditionForPower(p); err == nil {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  = %d", target)))
		}
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(optionsErrorText(m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// optionsErrorText phrases a configuration error for the form.
func optionsErrorText(err error) string {
	switch {
	case errors.Is(err, board.ErrInvalidSize):
		return "Grid size must be a whole number of at least 2."
	case errors.Is(err, board.ErrInvalidWinningCondition):
		return fmt.Sprintf("Winning condition exponent must be between 1 and %d.", board.MaxPower)
	default:
		return err.Error()
	}
}

// Selected returns the submitted configuration, or nil while editing.
func (m OptionsModel) Selected() *board.Config {
	return m.result
}

// IsQuitting returns true if user wants to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionsModel) WantsBack() bool {
	return m.back
}

// RunOptions runs the options form on its own and returns the chosen
// configuration, or nil when the user backed out.
func RunOptions(initial board.Config, width, height int) (*board.Config, error) {
	p := tea.NewProgram(NewOptionsModel(initial, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(OptionsModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
