package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text with its top-left corner at (x, y)
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) error {
	return renderText(renderer, text, color, font, func(w, h int32) sdl.Rect {
		return sdl.Rect{X: x, Y: y, W: w, H: h}
	})
}

// RenderTextCentered renders text centred on (cx, cy)
func RenderTextCentered(renderer *sdl.Renderer, text string, cx, cy int32, color sdl.Color, font *ttf.Font) error {
	return renderText(renderer, text, color, font, func(w, h int32) sdl.Rect {
		return CenteredRect(cx, cy, w, h)
	})
}

// RenderTextShadowed renders centred text over a copy offset by the given
// amount in shadow color
func RenderTextShadowed(renderer *sdl.Renderer, text string, cx, cy, offset int32, color, shadow sdl.Color, font *ttf.Font) error {
	if err := RenderTextCentered(renderer, text, cx+offset, cy+offset, shadow, font); err != nil {
		return err
	}
	return RenderTextCentered(renderer, text, cx, cy, color, font)
}

func renderText(renderer *sdl.Renderer, text string, color sdl.Color, font *ttf.Font, place func(w, h int32) sdl.Rect) error {
	if font == nil {
		return fmt.Errorf("font not available")
	}
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return fmt.Errorf("render %q: %w", text, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("texture for %q: %w", text, err)
	}
	defer texture.Destroy()

	dstRect := place(surface.W, surface.H)
	return renderer.Copy(texture, nil, &dstRect)
}
