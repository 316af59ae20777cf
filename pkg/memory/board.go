package memory

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Clock abstracts time so mismatch resolution can be driven by tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Options describes the board geometry and pacing.
type Options struct {
	Rows, Cols    int
	Palette       []Color
	MismatchDelay time.Duration
}

// Validate checks that Rows*Cols cards can be dealt as pairs of distinct
// palette colors.
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return fmt.Errorf("board must be positive, got %dx%d", o.Rows, o.Cols)
	}
	cells := o.Rows * o.Cols
	if cells%2 != 0 {
		return fmt.Errorf("board %dx%d has an odd number of cells", o.Rows, o.Cols)
	}
	if cells/2 > len(o.Palette) {
		return fmt.Errorf("board %dx%d needs %d colors, palette has %d", o.Rows, o.Cols, cells/2, len(o.Palette))
	}
	seen := make(map[Color]bool, cells/2)
	for _, c := range o.Palette[:cells/2] {
		if seen[c] {
			return errors.New("palette colors must be distinct")
		}
		seen[c] = true
	}
	return nil
}

// FlipResult tells the caller what a flip did.
type FlipResult int

const (
	FlipIgnored FlipResult = iota
	FlipRevealed
	FlipMatched
	FlipMismatched
)

func (r FlipResult) String() string {
	switch r {
	case FlipIgnored:
		return "ignored"
	case FlipRevealed:
		return "revealed"
	case FlipMatched:
		return "matched"
	case FlipMismatched:
		return "mismatched"
	default:
		return fmt.Sprintf("FlipResult(%d)", int(r))
	}
}

// Board is the state of one game: the grid, the cells awaiting a match
// check and the number of pairs found so far.
type Board struct {
	opts  Options
	clock Clock

	cards   [][]Card
	pending []Cell
	matched int
	moves   int

	// Set while a mismatched pair waits to be flipped back.
	mismatch      bool
	mismatchUntil time.Time
}

// NewBoard deals a freshly shuffled board.
func NewBoard(opts Options, rng *rand.Rand, clock Clock) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pairs := opts.Rows * opts.Cols / 2
	faces := make([]Color, 0, pairs*2)
	faces = append(faces, opts.Palette[:pairs]...)
	faces = append(faces, opts.Palette[:pairs]...)
	rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})

	return newBoardFromFaces(opts, faces, clock), nil
}

func newBoardFromFaces(opts Options, faces []Color, clock Clock) *Board {
	if clock == nil {
		clock = SystemClock{}
	}
	cards := make([][]Card, opts.Rows)
	for r := range cards {
		cards[r] = make([]Card, opts.Cols)
		for c := range cards[r] {
			cards[r][c] = Card{Color: faces[r*opts.Cols+c]}
		}
	}
	return &Board{
		opts:    opts,
		clock:   clock,
		cards:   cards,
		pending: make([]Cell, 0, 2),
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.opts.Rows && col >= 0 && col < b.opts.Cols
}

// FlipCard reveals the card at (row, col). Out-of-range cells, cards that
// are already face-up and flips while two cards are pending are ignored.
// Revealing the second card runs the match check.
func (b *Board) FlipCard(row, col int) FlipResult {
	if !b.inBounds(row, col) || len(b.pending) >= 2 {
		return FlipIgnored
	}
	card := &b.cards[row][col]
	if card.Revealed {
		return FlipIgnored
	}

	card.Reveal()
	b.pending = append(b.pending, Cell{Row: row, Col: col})
	if len(b.pending) < 2 {
		return FlipRevealed
	}
	return b.checkMatch()
}

func (b *Board) checkMatch() FlipResult {
	first, second := b.pending[0], b.pending[1]
	b.moves++

	if Match(b.cards[first.Row][first.Col].Color, b.cards[second.Row][second.Col].Color) {
		b.matched++
		b.pending = b.pending[:0]
		return FlipMatched
	}

	b.mismatch = true
	b.mismatchUntil = b.clock.Now().Add(b.opts.MismatchDelay)
	return FlipMismatched
}

// Update flips a mismatched pair back once its delay has elapsed. It reports
// whether anything changed. Call it once per frame.
func (b *Board) Update() bool {
	if !b.MismatchPending() {
		return false
	}
	if b.clock.Now().Before(b.mismatchUntil) {
		return false
	}
	b.Resolve()
	return true
}

// Resolve flips an outstanding mismatch back immediately.
func (b *Board) Resolve() {
	if !b.MismatchPending() {
		return
	}
	for _, cell := range b.pending {
		b.cards[cell.Row][cell.Col].Hide()
	}
	b.pending = b.pending[:0]
	b.mismatch = false
}

// MismatchPending reports whether a mismatched pair is still face-up.
func (b *Board) MismatchPending() bool {
	return b.mismatch
}

// IsComplete reports whether every pair has been found.
func (b *Board) IsComplete() bool {
	return b.matched == b.Pairs()
}

// Card returns a copy of the card at (row, col).
func (b *Board) Card(row, col int) Card {
	return b.cards[row][col]
}

// Pending returns the cells revealed but not yet resolved.
func (b *Board) Pending() []Cell {
	out := make([]Cell, len(b.pending))
	copy(out, b.pending)
	return out
}

// Matched is the number of pairs found so far.
func (b *Board) Matched() int { return b.matched }

// Moves is the number of pair attempts, successful or not.
func (b *Board) Moves() int { return b.moves }

func (b *Board) Rows() int { return b.opts.Rows }

func (b *Board) Cols() int { return b.opts.Cols }

// Pairs is the number of pairs needed to win.
func (b *Board) Pairs() int {
	return b.opts.Rows * b.opts.Cols / 2
}
