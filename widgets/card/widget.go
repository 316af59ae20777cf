package card

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/veandco/go-sdl2/sdl"

	"memory-game/pkg/memory"
	"memory-game/ui"
)

// Widget draws one board cell and animates it turning over. The animation
// only follows the board state; it never holds game logic back.
type Widget struct {
	style    Style
	duration float32 // seconds

	showingFace bool
	target      bool
	tween       *gween.Tween
	progress    float32
}

// NewWidget creates a face-down card widget. A zero flip duration disables
// the animation.
func NewWidget(style Style, flip time.Duration) *Widget {
	return &Widget{
		style:    style,
		duration: float32(flip.Seconds()),
	}
}

// Sync points the widget at the card's current revealed state, starting a
// flip when it changed. A reversal mid-flip turns the card back from where
// it is instead of finishing the old turn.
func (w *Widget) Sync(revealed bool) {
	if revealed == w.target {
		return
	}
	w.target = revealed

	if w.duration <= 0 {
		w.showingFace = revealed
		return
	}
	switch {
	case w.tween == nil:
		w.start(0)
	case w.progress <= 0:
		// Nothing has moved yet and the side drawn is already the new target
		w.tween = nil
	default:
		w.start(1 - w.progress)
	}
}

// start runs the flip from progress from to 1, keeping the full-turn speed
func (w *Widget) start(from float32) {
	w.tween = gween.New(from, 1, w.duration*(1-from), ease.InOutQuad)
	w.progress = from
}

// Update advances a running flip by dt
func (w *Widget) Update(dt time.Duration) {
	if w.tween == nil {
		return
	}

	current, finished := w.tween.Update(float32(dt.Seconds()))
	w.progress = current
	if finished || current >= 0.5 {
		w.showingFace = w.target
	}
	if finished {
		w.tween = nil
		w.progress = 0
	}
}

// Animating reports whether a flip is in progress
func (w *Widget) Animating() bool {
	return w.tween != nil
}

// ShowingFace reports which side is currently drawn
func (w *Widget) ShowingFace() bool {
	return w.showingFace
}

// ScaleX is the horizontal scale of the card: 1 at rest, shrinking to 0 at
// the middle of a flip
func (w *Widget) ScaleX() float64 {
	if w.tween == nil {
		return 1
	}
	s := float64(1 - 2*w.progress)
	if s < 0 {
		return -s
	}
	return s
}

// Bounds returns the on-screen rectangle for a cell at rect, squeezed
// horizontally around its centre while flipping
func (w *Widget) Bounds(rect sdl.Rect) sdl.Rect {
	width := int32(float64(rect.W) * w.ScaleX())
	return sdl.Rect{X: rect.X + (rect.W-width)/2, Y: rect.Y, W: width, H: rect.H}
}

// Draw renders the face in color, or the bordered back
func (w *Widget) Draw(renderer *sdl.Renderer, rect sdl.Rect, color memory.Color) error {
	bounds := w.Bounds(rect)
	if bounds.W <= 0 {
		return nil
	}

	if w.showingFace {
		return ui.FillRect(renderer, bounds, ui.Color(color.RGB()))
	}

	if err := ui.FillRect(renderer, bounds, ui.Color(w.style.Back)); err != nil {
		return err
	}
	return ui.DrawBorder(renderer, bounds, w.style.BorderWidth, ui.Color(w.style.Border))
}
