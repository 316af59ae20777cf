package button

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"memory-game/ui"
)

var (
	defaultNormal = [3]uint8{0, 0, 0}
	defaultHover  = [3]uint8{50, 50, 50}
	labelColor    = sdl.Color{R: 255, G: 255, B: 255, A: 255}
)

// Widget is a labelled rectangle that highlights under the pointer
type Widget struct {
	label  string
	rect   sdl.Rect
	normal [3]uint8
	hover  [3]uint8
}

// NewWidget creates a button with the default black/dark grey colors. The
// label is shown upper-cased.
func NewWidget(label string, rect sdl.Rect) *Widget {
	return &Widget{
		label:  strings.ToUpper(label),
		rect:   rect,
		normal: defaultNormal,
		hover:  defaultHover,
	}
}

// Label returns the displayed text
func (w *Widget) Label() string {
	return w.label
}

// Contains reports whether (x, y) is inside the button
func (w *Widget) Contains(x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	return p.InRect(&w.rect)
}

// IsClicked reports a press of the primary button inside the rectangle.
// Callers pass the state from a button-down event so one click fires once.
func (w *Widget) IsClicked(x, y int32, pressed bool) bool {
	return pressed && w.Contains(x, y)
}

// FillColor is the background for a pointer at (x, y)
func (w *Widget) FillColor(x, y int32) [3]uint8 {
	if w.Contains(x, y) {
		return w.hover
	}
	return w.normal
}

// Draw renders the button with its label centred
func (w *Widget) Draw(renderer *sdl.Renderer, font *ttf.Font, mouseX, mouseY int32) error {
	if err := ui.FillRect(renderer, w.rect, ui.Color(w.FillColor(mouseX, mouseY))); err != nil {
		return err
	}
	return ui.RenderTextCentered(renderer, w.label, w.rect.X+w.rect.W/2, w.rect.Y+w.rect.H/2, labelColor, font)
}
