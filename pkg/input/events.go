package input

import "github.com/veandco/go-sdl2/sdl"

// Pointer is one sample of the mouse, used for hover highlighting
type Pointer struct {
	X, Y    int32
	Buttons uint32
}

// SamplePointer reads the current mouse position and button mask
func SamplePointer() Pointer {
	x, y, buttons := sdl.GetMouseState()
	return Pointer{X: x, Y: y, Buttons: buttons}
}

// PrimaryPress reports a left-button press event and where it happened.
// SDL queues one MOUSEBUTTONDOWN per physical press, so a held button or a
// press released within the same frame both dispatch exactly once.
func PrimaryPress(event sdl.Event) (x, y int32, ok bool) {
	e, isButton := event.(*sdl.MouseButtonEvent)
	if !isButton {
		return 0, 0, false
	}
	if e.Type != sdl.MOUSEBUTTONDOWN || e.State != sdl.PRESSED || e.Button != sdl.BUTTON_LEFT {
		return 0, 0, false
	}
	return e.X, e.Y, true
}

// KeyDown reports the first key-down event for scancode, ignoring
// auto-repeat
func KeyDown(event sdl.Event, scancode sdl.Scancode) bool {
	e, isKey := event.(*sdl.KeyboardEvent)
	if !isKey {
		return false
	}
	return e.Type == sdl.KEYDOWN && e.Repeat == 0 && e.Keysym.Scancode == scancode
}
