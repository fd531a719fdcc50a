// Package render draws engine snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/geometry"
)

// Glyphs; every board cell is two columns wide to look square
const (
	glyphBlock  = '█'
	glyphShadow = '░'
	cellWidth   = 2
	hudGap      = 3
	previewSize = 4
)

var helpLines = []string{
	"←→ a d  move",
	"↑ w spc rotate",
	"z       rotate ccw",
	"↓ s     soft drop",
	"⏎ x     hard drop",
	"p pause  g shadow",
	"q esc   quit",
}

// TerminalRenderer projects snapshots onto the screen
// Board row 0 is the bottom of the well
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(snap engine.Snapshot) {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.width, r.height = w, h
		r.screen.Sync()
	}

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	boardW, boardH := snap.Cols*cellWidth+2, snap.Rows+2
	if r.width < boardW || r.height < boardH {
		r.drawText(0, 0, fmt.Sprintf("terminal too small: need %dx%d", boardW, boardH), defaultStyle.Foreground(RgbHudValue))
		r.screen.Show()
		return
	}

	r.drawBorder(snap, defaultStyle)
	r.drawBoard(snap, defaultStyle)
	r.drawHud(snap, defaultStyle)

	switch {
	case snap.State == engine.StateGameOver:
		r.drawBanner(snap, 0, " GAME OVER ", defaultStyle.Foreground(RgbBannerText).Background(RgbGameOverBg))
		r.drawBanner(snap, 2, "press any key", defaultStyle.Foreground(RgbHelpText))
	case snap.Paused:
		r.drawBanner(snap, 0, " PAUSED ", defaultStyle.Foreground(RgbBannerText).Background(RgbPausedBg))
	}

	r.screen.Show()
}

// cellOrigin returns the screen position of a board cell's left column
func cellOrigin(snap engine.Snapshot, col, row int) (x, y int) {
	return 1 + col*cellWidth, snap.Rows - row
}

func (r *TerminalRenderer) setCell(snap engine.Snapshot, p geometry.Point, ch rune, style tcell.Style) {
	if p.Col < 0 || p.Col >= snap.Cols || p.Row < 0 || p.Row >= snap.Rows {
		return
	}
	x, y := cellOrigin(snap, p.Col, p.Row)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawBorder(snap engine.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	right := snap.Cols*cellWidth + 1
	bottom := snap.Rows + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(right, 0, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// drawBoard layers settled cells, then the shadow, then the current piece
func (r *TerminalRenderer) drawBoard(snap engine.Snapshot, defaultStyle tcell.Style) {
	settled := defaultStyle.Foreground(RgbSettled)
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			if snap.Occupied(col, row) {
				r.setCell(snap, geometry.Point{Col: col, Row: row}, glyphBlock, settled)
			}
		}
	}

	shadow := defaultStyle.Foreground(RgbShadow)
	for _, p := range snap.Shadow {
		r.setCell(snap, p, glyphShadow, shadow)
	}

	current := defaultStyle.Foreground(PieceColor(snap.CurrentKind))
	for _, p := range snap.Current {
		r.setCell(snap, p, glyphBlock, current)
	}
}

func (r *TerminalRenderer) drawHud(snap engine.Snapshot, defaultStyle tcell.Style) {
	x := snap.Cols*cellWidth + 2 + hudGap
	label := defaultStyle.Foreground(RgbHudLabel)
	value := defaultStyle.Foreground(RgbHudValue).Bold(true)

	y := 1
	for _, stat := range []struct {
		name string
		val  string
	}{
		{"SCORE", humanize.Comma(int64(snap.Score))},
		{"LEVEL", fmt.Sprint(snap.Level)},
		{"LINES", humanize.Comma(int64(snap.Lines))},
	} {
		r.drawText(x, y, stat.name, label)
		r.drawText(x, y+1, stat.val, value)
		y += 3
	}

	r.drawText(x, y, "NEXT", label)
	r.drawPreview(x, y+1, snap, defaultStyle)
	y += previewSize + 2

	help := defaultStyle.Foreground(RgbHelpText)
	for _, line := range helpLines {
		if y >= r.height {
			break
		}
		r.drawText(x, y, line, help)
		y++
	}
}

// drawPreview centers the next archetype in a 4x4 cell box at (x, y)
func (r *TerminalRenderer) drawPreview(x, y int, snap engine.Snapshot, defaultStyle tcell.Style) {
	if len(snap.Next.Points) == 0 {
		return
	}
	style := defaultStyle.Foreground(PieceColor(snap.NextKind))
	lo, hi := snap.Next.Bounds()
	offCol := (previewSize - (hi.Col - lo.Col + 1)) / 2
	offRow := (previewSize - (hi.Row - lo.Row + 1)) / 2

	for _, p := range snap.Next.Points {
		col := p.Col - lo.Col + offCol
		// Preview rows grow downward on screen
		row := previewSize - 1 - (p.Row - lo.Row + offRow)
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(x+col*cellWidth+i, y+row, glyphBlock, nil, style)
		}
	}
}

// drawBanner centers text over the board, dy rows below the middle
func (r *TerminalRenderer) drawBanner(snap engine.Snapshot, dy int, text string, style tcell.Style) {
	inner := snap.Cols * cellWidth
	x := 1 + max((inner-len(text))/2, 0)
	y := min(1+snap.Rows/2+dy, snap.Rows)
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
