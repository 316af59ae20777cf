package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"memory-game/pkg/config"
)

const (
	titleY            = 40
	titleShadowOffset = 1
	buttonWidth       = 200
	buttonHeight      = 50
	buttonBottomGap   = 100
	statusGap         = 30
)

// Layout places every element of the screen for a given resolution
type Layout struct {
	Width, Height int32
	Rows, Cols    int
	CardW, CardH  int32
	Top           int32
}

// NewLayout lays the configured grid out on a width x height screen
func NewLayout(cfg config.Config, width, height int32) Layout {
	return Layout{
		Width:  width,
		Height: height,
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		CardW:  cfg.CardWidth,
		CardH:  cfg.CardHeight,
		Top:    cfg.GridTop,
	}
}

// Origin is the top-left pixel of the grid, centred horizontally
func (l Layout) Origin() (x, y int32) {
	return (l.Width - l.CardW*int32(l.Cols)) / 2, l.Top
}

// GridRect is the area covered by the cards
func (l Layout) GridRect() sdl.Rect {
	x, y := l.Origin()
	return sdl.Rect{X: x, Y: y, W: l.CardW * int32(l.Cols), H: l.CardH * int32(l.Rows)}
}

// CellAt maps a pixel to a grid cell. ok is false outside the grid.
func (l Layout) CellAt(px, py int32) (row, col int, ok bool) {
	p := sdl.Point{X: px, Y: py}
	grid := l.GridRect()
	if !p.InRect(&grid) {
		return 0, 0, false
	}
	return int((py - grid.Y) / l.CardH), int((px - grid.X) / l.CardW), true
}

// CellRect is the screen rectangle of a cell
func (l Layout) CellRect(row, col int) sdl.Rect {
	x, y := l.Origin()
	return sdl.Rect{
		X: x + int32(col)*l.CardW,
		Y: y + int32(row)*l.CardH,
		W: l.CardW,
		H: l.CardH,
	}
}

// TitleCenter is where the title is centred
func (l Layout) TitleCenter() (x, y int32) {
	return l.Width / 2, titleY
}

// StatusCenter is where the pairs/moves line is centred, just below the grid
func (l Layout) StatusCenter() (x, y int32) {
	grid := l.GridRect()
	return l.Width / 2, grid.Y + grid.H + statusGap
}

// WinPosition is the top-left of the win message
func (l Layout) WinPosition() (x, y int32) {
	return l.Width / 4, l.Height/2 - 20
}

// RestartRect is the restart button, a quarter of the way across the bottom
func (l Layout) RestartRect() sdl.Rect {
	return sdl.Rect{X: l.Width / 4, Y: l.Height - buttonBottomGap, W: buttonWidth, H: buttonHeight}
}

// ExitRect is the exit button, just right of the centre line
func (l Layout) ExitRect() sdl.Rect {
	return sdl.Rect{X: l.Width/2 + 20, Y: l.Height - buttonBottomGap, W: buttonWidth, H: buttonHeight}
}
