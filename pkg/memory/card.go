package memory

import "fmt"

// Color is an RGB card face. Two cards form a pair when their colors are equal.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the components as an array, the form the ui helpers take.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

var (
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Magenta = Color{255, 0, 255}
	Cyan    = Color{0, 255, 255}
	Orange  = Color{255, 128, 0}
	Purple  = Color{128, 0, 255}
)

// DefaultPalette holds the eight faces of the stock 4x4 board.
var DefaultPalette = []Color{Red, Green, Blue, Yellow, Magenta, Cyan, Orange, Purple}

// Card is a single cell of the board.
type Card struct {
	Color    Color
	Revealed bool
}

// Reveal turns the card face-up.
func (c *Card) Reveal() {
	c.Revealed = true
}

// Hide turns the card face-down.
func (c *Card) Hide() {
	c.Revealed = false
}

// Cell addresses a card on the board.
type Cell struct {
	Row, Col int
}

// Match reports whether two faces form a pair.
func Match(a, b Color) bool {
	return a == b
}
