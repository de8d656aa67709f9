package t2048

import (
	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/turn"
)

type animationPhase int

const (
	phaseNone animationPhase = iota
	phaseSlide
	phasePop
)

// tileMotion is one tile travelling from its source cell to where the
// slide left it.
type tileMotion struct {
	Value  int
	From   board.Coord
	To     board.Coord
	Merged bool // the destination cell holds a merge result
}

// animation blocks the machine while the last phase is shown.
type animation struct {
	phase    animationPhase
	ticks    int
	duration int

	motions []tileMotion
	pop     board.Coord
}

// startSlide derives one motion per tile of the pre-move grid from the
// distances recorded at the source cells.
func (a *animation) startSlide(before board.Grid, snap turn.Snapshot, duration int) {
	*a = animation{}
	if duration <= 0 {
		return
	}

	for r, row := range before {
		for c, v := range row {
			if v == 0 {
				continue
			}
			src := board.Coord{Row: r, Col: c}
			dst := snap.Destination(src)
			a.motions = append(a.motions, tileMotion{
				Value:  v,
				From:   src,
				To:     dst,
				Merged: snap.Merges[dst.Row][dst.Col],
			})
		}
	}
	a.phase = phaseSlide
	a.duration = duration
}

func (a *animation) startPop(at board.Coord, duration int) {
	*a = animation{}
	if duration <= 0 {
		return
	}
	a.phase = phasePop
	a.pop = at
	a.duration = duration
}

// update advances the animation by one tick. It returns true while the
// animation still holds the machine.
func (a *animation) update() bool {
	if a.phase == phaseNone {
		return false
	}
	a.ticks++
	if a.ticks >= a.duration {
		*a = animation{}
		return false
	}
	return true
}

func (a *animation) active() bool {
	return a.phase != phaseNone
}

// progress returns the eased completion in [0, 1].
func (a *animation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	t := float64(a.ticks) / float64(a.duration)
	if t > 1 {
		t = 1
	}
	return easeOutQuad(t)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
