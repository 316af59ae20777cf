package card

// Style holds the colors used for the back of a card
type Style struct {
	Back   [3]uint8
	Border [3]uint8
	// Border thickness of the back face in pixels
	BorderWidth int32
}

// DefaultStyle is a light grey back with a thin black border
var DefaultStyle = Style{
	Back:        [3]uint8{220, 220, 220},
	Border:      [3]uint8{0, 0, 0},
	BorderWidth: 2,
}
