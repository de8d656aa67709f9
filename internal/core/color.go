package core

// Color is a palette slot for a screen cell. The platform layer decides
// the concrete terminal color for each slot.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorText
	ColorDim
	ColorBorder
	ColorAccent
	ColorAlert
	ColorSuccess
	ColorBoard
	ColorEmpty
)

// Tile colors, one per power of two. Values past 2048 share ColorTileSuper.
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the background slot for a tile value.
// Zero and non-positive values map to ColorEmpty.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorEmpty
	}
	power := 0
	for v := value; v > 1; v >>= 1 {
		power++
	}
	if power < 1 {
		power = 1
	}
	c := ColorTile2 + Color(power-1)
	if c > ColorTileSuper {
		return ColorTileSuper
	}
	return c
}

// Style is the visual attribute set of a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	Style
}
