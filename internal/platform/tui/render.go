package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/Watersilver/2powN/internal/core"
)

// palette maps core colors to terminal colors. Tile backgrounds follow
// the classic beige-to-orange ramp in 256-color codes.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorText:      lipgloss.AdaptiveColor{Light: "235", Dark: "255"},
	core.ColorDim:       lipgloss.Color("245"),
	core.ColorBorder:    lipgloss.Color("240"),
	core.ColorAccent:    lipgloss.Color("214"),
	core.ColorAlert:     lipgloss.Color("203"),
	core.ColorSuccess:   lipgloss.Color("78"),
	core.ColorBoard:     lipgloss.Color("101"),
	core.ColorEmpty:     lipgloss.Color("144"),
	core.ColorTile2:     lipgloss.Color("230"),
	core.ColorTile4:     lipgloss.Color("223"),
	core.ColorTile8:     lipgloss.Color("215"),
	core.ColorTile16:    lipgloss.Color("209"),
	core.ColorTile32:    lipgloss.Color("203"),
	core.ColorTile64:    lipgloss.Color("196"),
	core.ColorTile128:   lipgloss.Color("221"),
	core.ColorTile256:   lipgloss.Color("220"),
	core.ColorTile512:   lipgloss.Color("178"),
	core.ColorTile1024:  lipgloss.Color("172"),
	core.ColorTile2048:  lipgloss.Color("166"),
	core.ColorTileSuper: lipgloss.Color("54"),
}

// darkText is used on the light tiles where white text is unreadable.
var darkText = lipgloss.Color("238")

// styleCache is shared by every SSH session.
var (
	styleMu    sync.RWMutex
	styleCache = map[core.Style]lipgloss.Style{}
)

// styleFor builds (and caches) the lipgloss style for a cell style.
func styleFor(st core.Style) lipgloss.Style {
	styleMu.RLock()
	s, ok := styleCache[st]
	styleMu.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle().Bold(st.Bold)
	if fg, ok := palette[st.Fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[st.Bg]; ok {
		s = s.Background(bg)
		if st.Fg == core.ColorText && (st.Bg == core.ColorTile2 || st.Bg == core.ColorTile4) {
			s = s.Foreground(darkText)
		}
	}

	styleMu.Lock()
	styleCache[st] = s
	styleMu.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
