package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func buttonEvent(typ uint32, button uint8, state uint8, x, y int32) *sdl.MouseButtonEvent {
	return &sdl.MouseButtonEvent{Type: typ, Button: button, State: state, X: x, Y: y}
}

func TestPrimaryPress(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		wantOK bool
	}{
		{"left down", buttonEvent(sdl.MOUSEBUTTONDOWN, sdl.BUTTON_LEFT, sdl.PRESSED, 765, 75), true},
		{"left up", buttonEvent(sdl.MOUSEBUTTONUP, sdl.BUTTON_LEFT, sdl.RELEASED, 765, 75), false},
		{"right down", buttonEvent(sdl.MOUSEBUTTONDOWN, sdl.BUTTON_RIGHT, sdl.PRESSED, 765, 75), false},
		{"motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 765, Y: 75, State: sdl.ButtonLMask()}, false},
		{"key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := PrimaryPress(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, int32(765), x)
				assert.Equal(t, int32(75), y)
			}
		})
	}
}

func TestKeyDown(t *testing.T) {
	esc := sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}

	assert.True(t, KeyDown(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: esc}, sdl.SCANCODE_ESCAPE))
	assert.False(t, KeyDown(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Repeat: 1, Keysym: esc}, sdl.SCANCODE_ESCAPE))
	assert.False(t, KeyDown(&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: esc}, sdl.SCANCODE_ESCAPE))
	assert.False(t, KeyDown(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: esc}, sdl.SCANCODE_SPACE))
	assert.False(t, KeyDown(&sdl.QuitEvent{Type: sdl.QUIT}, sdl.SCANCODE_ESCAPE))
}
