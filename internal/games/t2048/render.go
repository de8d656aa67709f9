package t2048

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/turn"
)

const (
	hudHeight   = 3
	minTileW    = 6
	tallTileH   = 3
	compactTile = 1
)

var (
	boardStyle   = core.Style{Bg: core.ColorBoard}
	emptyStyle   = core.Style{Bg: core.ColorEmpty}
	textStyle    = core.Style{Fg: core.ColorText}
	dimStyle     = core.Style{Fg: core.ColorDim}
	accentStyle  = core.Style{Fg: core.ColorAccent, Bold: true}
	overlayStyle = core.Style{Fg: core.ColorBorder}
)

// layout is the geometry of the board on screen.
type layout struct {
	size   int
	tileW  int
	tileH  int
	boardX int
	boardY int
}

func (l layout) boardW() int { return l.size*(l.tileW+1) + 1 }
func (l layout) boardH() int { return l.size*(l.tileH+1) + 1 }

func (l layout) minWidth() int { return l.boardW() }

// minHeight is the height needed with compact tiles.
func (l layout) minHeight() int { return hudHeight + 1 + l.size*(compactTile+1) + 1 }

// tileOrigin returns the top-left screen position of a cell.
func (l layout) tileOrigin(c board.Coord) (int, int) {
	return l.boardX + 1 + c.Col*(l.tileW+1), l.boardY + 1 + c.Row*(l.tileH+1)
}

func (g *Game) layout() layout {
	size := g.preset.Config.Size
	target := g.preset.Config.WinningCondition
	if g.snap.Initialized {
		size = g.snap.Size
		target = g.snap.WinningCondition
	}
	if size < 1 {
		size = 1
	}

	l := layout{
		size:  size,
		tileW: max(len(strconv.Itoa(target))+2, minTileW),
		tileH: tallTileH,
	}
	if hudHeight+1+l.boardH() > g.screenH {
		l.tileH = compactTile
	}
	l.boardX = (g.screenW - l.boardW()) / 2
	l.boardY = hudHeight + 1
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	if g.snap.Initialized {
		g.renderBoard(dst, l)
	}
	g.renderOverlays(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawStyledTextCentered(y, "Window too small", accentStyle)
	dst.DrawStyledTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.minWidth(), l.minHeight()), dimStyle)
}

// renderHUD draws the title, score and target.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	left := l.boardX
	right := l.boardX + l.boardW()

	dst.DrawStyledTextCentered(0, "2powN · "+g.Title(), accentStyle)

	dst.DrawStyledText(left, 1, fmt.Sprintf("Score: %d", g.snap.Score), textStyle)
	maxStr := fmt.Sprintf("Max: %d", g.snap.MaxTile())
	dst.DrawStyledText(right-utf8.RuneCountInString(maxStr), 1, maxStr, textStyle)

	target := g.preset.Config.WinningCondition
	if g.snap.Initialized {
		target = g.snap.WinningCondition
	}
	dst.DrawStyledText(left, 2, fmt.Sprintf("Target: %d", target), dimStyle)
	status := g.statusLine()
	dst.DrawStyledText(right-utf8.RuneCountInString(status), 2, status, dimStyle)
}

func (g *Game) statusLine() string {
	switch g.status() {
	case StatusConfiguring:
		return "Setting up"
	case StatusAnimating:
		return g.snap.Direction.String()
	case StatusGameOver:
		return "No moves"
	case StatusWin:
		return "Won"
	case StatusPaused:
		return "Paused"
	default:
		return "Your move"
	}
}

// renderBoard draws the board background, the tiles and any running
// animation.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawRect(core.NewRect(l.boardX, l.boardY, l.boardW(), l.boardH()), ' ', boardStyle)

	for r := 0; r < l.size; r++ {
		for c := 0; c < l.size; c++ {
			x, y := l.tileOrigin(board.Coord{Row: r, Col: c})
			dst.DrawRect(core.NewRect(x, y, l.tileW, l.tileH), ' ', emptyStyle)
		}
	}

	if g.anim.phase == phaseSlide {
		g.renderSlide(dst, l)
		return
	}

	for r, row := range g.snap.Grid {
		for c, v := range row {
			if v == 0 {
				continue
			}
			at := board.Coord{Row: r, Col: c}
			x, y := l.tileOrigin(at)

			switch {
			case g.anim.phase == phasePop && at == g.anim.pop:
				g.renderPop(dst, l, x, y, v)
			case g.snap.Step != turn.StepMove && g.snap.Merges[r][c]:
				drawTile(dst, l, x, y, v, true)
			default:
				drawTile(dst, l, x, y, v, false)
			}
		}
	}
}

// renderSlide draws every tile of the pre-move grid on its way to the
// destination cell.
func (g *Game) renderSlide(dst *core.Screen, l layout) {
	t := g.anim.progress()
	for _, m := range g.anim.motions {
		fx, fy := l.tileOrigin(m.From)
		tx, ty := l.tileOrigin(m.To)
		drawTile(dst, l, core.Lerp(fx, tx, t), core.Lerp(fy, ty, t), m.Value, false)
	}
}

// renderPop grows the spawned tile from its center.
func (g *Game) renderPop(dst *core.Screen, l layout, x, y, v int) {
	if g.anim.progress() >= 0.5 {
		drawTile(dst, l, x, y, v, true)
		return
	}
	label := strconv.Itoa(v)
	cx := x + (l.tileW-len(label))/2
	dst.DrawStyledText(cx, y+l.tileH/2, label, core.Style{Fg: core.ColorAccent, Bg: core.ColorEmpty, Bold: true})
}

func drawTile(dst *core.Screen, l layout, x, y, v int, highlight bool) {
	st := core.Style{Fg: core.ColorText, Bg: core.TileColor(v), Bold: true}
	dst.DrawRect(core.NewRect(x, y, l.tileW, l.tileH), ' ', st)

	if highlight {
		st.Fg = core.ColorAccent
	}
	label := strconv.Itoa(v)
	if len(label) > l.tileW {
		label = label[:l.tileW]
	}
	dst.DrawStyledText(x+(l.tileW-len(label))/2, y+l.tileH/2, label, st)
}

// renderOverlays draws the pause, victory, game over and configuration
// error boxes.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX := l.boardX + l.boardW()/2
	centerY := l.boardY + l.boardH()/2

	if err := g.Err(); err != nil {
		g.drawOverlay(dst, centerX, centerY, "INVALID CONFIGURATION", err.Error())
		return
	}

	switch g.status() {
	case StatusPaused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case StatusWin:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN", fmt.Sprintf("Reached %d", g.snap.WinningCondition), "Press R to restart")
	case StatusGameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", g.snap.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.Style{})
	dst.DrawBox(box, overlayStyle)

	for i, line := range lines {
		st := textStyle
		if i == 0 {
			st = accentStyle
		}
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawStyledText(x, box.Y+1+i, line, st)
	}
}
