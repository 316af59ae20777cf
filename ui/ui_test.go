package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestCenteredRect(t *testing.T) {
	assert.Equal(t, sdl.Rect{X: 90, Y: 15, W: 20, H: 50}, CenteredRect(100, 40, 20, 50))
}

func TestLerp(t *testing.T) {
	a := [3]uint8{0, 100, 200}
	b := [3]uint8{200, 100, 0}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, [3]uint8{100, 100, 100}, Lerp(a, b, 0.5))
}

func TestColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 1, G: 2, B: 3, A: 255}, Color([3]uint8{1, 2, 3}))
}

func TestFontCandidates(t *testing.T) {
	assert.Equal(t, systemFontPaths, FontCandidates(""))

	got := FontCandidates("/tmp/game.ttf")
	assert.Equal(t, "/tmp/game.ttf", got[0])
	assert.Len(t, got, len(systemFontPaths)+1)
}
