package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
)

// MinScreenSize returns the smallest screen that fits a size x size board
// and its HUD.
func MinScreenSize(size int) (w, h int) {
	boardW, boardH := boardExtent(size)
	return boardW + 2, hudHeight + boardH
}

func boardExtent(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorCyan
	case 4:
		return core.ColorBlue
	case 8:
		return core.ColorBrightYellow
	case 16:
		return core.ColorYellow
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightGreen
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightMagenta
	case 1024:
		return core.ColorMagenta
	case 2048:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.grid == nil {
		g.renderTooSmall(dst)
		return
	}

	size := g.variant.Size
	boardW, boardH := boardExtent(size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.paused {
		area := core.NewRect(boardX, boardY, boardW, boardH)
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := MinScreenSize(g.variant.Size)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title and session counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	dst.DrawTextColored(core.Max(boardX+boardW-len(maxStr), boardX), 1, maxStr, TileColor(g.grid.MaxTile()))

	if g.hasDir {
		last := "last: " + g.lastDir.String()
		dst.DrawTextColored(boardX+(boardW-len(last))/2, 2, last, core.ColorGray)
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.variant.Size

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	spawned, hasSpawn := g.grid.LastSpawn()

	for r := range size {
		for c := range size {
			val := g.grid.At(r, c)
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))

			// Mark the freshly spawned tile
			if hasSpawn && spawned.Row == r && spawned.Col == c && len(valStr) < cellWidth-2 {
				dst.SetColored(cellX+cellWidth-2, cellY, '*', core.ColorGray)
			}
		}
	}
}

// drawOverlay draws a boxed message centered over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
