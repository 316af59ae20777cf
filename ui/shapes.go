package ui

import "github.com/veandco/go-sdl2/sdl"

// Color converts an RGB triple to an opaque sdl.Color
func Color(rgb [3]uint8) sdl.Color {
	return sdl.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// CenteredRect returns a w x h rectangle centred on (cx, cy)
func CenteredRect(cx, cy, w, h int32) sdl.Rect {
	return sdl.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// FillRect fills rect with color
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) error {
	if err := renderer.SetDrawColor(color.R, color.G, color.B, color.A); err != nil {
		return err
	}
	return renderer.FillRect(&rect)
}

// DrawBorder draws a border of the given thickness inside rect
func DrawBorder(renderer *sdl.Renderer, rect sdl.Rect, thickness int32, color sdl.Color) error {
	if err := renderer.SetDrawColor(color.R, color.G, color.B, color.A); err != nil {
		return err
	}
	for i := int32(0); i < thickness && 2*i < rect.W && 2*i < rect.H; i++ {
		inner := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		if err := renderer.DrawRect(&inner); err != nil {
			return err
		}
	}
	return nil
}
