package memory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func defaultOptions() Options {
	return Options{
		Rows:          4,
		Cols:          4,
		Palette:       DefaultPalette,
		MismatchDelay: time.Second,
	}
}

// fixedBoard lays the faces out row-major:
//
//	R R G B
//	G B Y Y
//	M M C C
//	O O P P
func fixedBoard(clock Clock) *Board {
	faces := []Color{
		Red, Red, Green, Blue,
		Green, Blue, Yellow, Yellow,
		Magenta, Magenta, Cyan, Cyan,
		Orange, Orange, Purple, Purple,
	}
	return newBoardFromFaces(defaultOptions(), faces, clock)
}

func allHidden(t *testing.T, b *Board) {
	t.Helper()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			assert.False(t, b.Card(r, c).Revealed, "card (%d,%d) should be hidden", r, c)
		}
	}
}

func TestNewBoardPairsEveryColor(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, err := NewBoard(defaultOptions(), rand.New(rand.NewSource(seed)), &fakeClock{})
		require.NoError(t, err)

		counts := map[Color]int{}
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				counts[b.Card(r, c).Color]++
			}
		}
		require.Len(t, counts, len(DefaultPalette), "seed %d", seed)
		for _, color := range DefaultPalette {
			assert.Equal(t, 2, counts[color], "seed %d color %s", seed, color)
		}
		allHidden(t, b)
		assert.Empty(t, b.Pending())
		assert.Zero(t, b.Matched())
	}
}

func TestNewBoardSameSeedSameLayout(t *testing.T) {
	a, err := NewBoard(defaultOptions(), rand.New(rand.NewSource(42)), nil)
	require.NoError(t, err)
	b, err := NewBoard(defaultOptions(), rand.New(rand.NewSource(42)), nil)
	require.NoError(t, err)
	assert.Equal(t, a.cards, b.cards)
}

func TestNewBoardRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"odd cells", Options{Rows: 3, Cols: 3, Palette: DefaultPalette}},
		{"too few colors", Options{Rows: 6, Cols: 6, Palette: DefaultPalette}},
		{"empty", Options{Rows: 0, Cols: 4, Palette: DefaultPalette}},
		{"duplicate colors", Options{Rows: 2, Cols: 2, Palette: []Color{Red, Red}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.opts, rand.New(rand.NewSource(1)), nil)
			assert.Error(t, err)
		})
	}
}

func TestFlipCardIdempotent(t *testing.T) {
	b := fixedBoard(&fakeClock{})

	assert.Equal(t, FlipRevealed, b.FlipCard(0, 0))
	assert.Equal(t, FlipIgnored, b.FlipCard(0, 0))
	assert.Equal(t, []Cell{{0, 0}}, b.Pending())
	assert.True(t, b.Card(0, 0).Revealed)
}

func TestFlipCardOutOfRange(t *testing.T) {
	b := fixedBoard(&fakeClock{})

	for _, cell := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		assert.Equal(t, FlipIgnored, b.FlipCard(cell.Row, cell.Col))
	}
	assert.Empty(t, b.Pending())
}

func TestPendingNeverExceedsTwo(t *testing.T) {
	clock := &fakeClock{}
	b := fixedBoard(clock)

	assert.Equal(t, FlipRevealed, b.FlipCard(0, 2))   // green
	assert.Equal(t, FlipMismatched, b.FlipCard(0, 3)) // blue
	assert.Len(t, b.Pending(), 2)

	// Further flips are refused until the mismatch resolves.
	assert.Equal(t, FlipIgnored, b.FlipCard(2, 0))
	assert.Len(t, b.Pending(), 2)
	assert.False(t, b.Card(2, 0).Revealed)
}

func TestMatchKeepsCardsRevealed(t *testing.T) {
	b := fixedBoard(&fakeClock{})

	assert.Equal(t, FlipRevealed, b.FlipCard(0, 0))
	assert.Equal(t, FlipMatched, b.FlipCard(0, 1))

	assert.Equal(t, 1, b.Matched())
	assert.Equal(t, 1, b.Moves())
	assert.Empty(t, b.Pending())
	assert.True(t, b.Card(0, 0).Revealed)
	assert.True(t, b.Card(0, 1).Revealed)
	assert.False(t, b.MismatchPending())

	// Matched cards cannot be flipped again.
	assert.Equal(t, FlipIgnored, b.FlipCard(0, 0))
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	b := fixedBoard(clock)

	b.FlipCard(1, 0)                                  // green
	assert.Equal(t, FlipMismatched, b.FlipCard(1, 1)) // blue
	assert.True(t, b.MismatchPending())

	clock.Advance(999 * time.Millisecond)
	assert.False(t, b.Update())
	assert.True(t, b.Card(1, 0).Revealed)
	assert.True(t, b.Card(1, 1).Revealed)

	clock.Advance(time.Millisecond)
	assert.True(t, b.Update())
	assert.False(t, b.Card(1, 0).Revealed)
	assert.False(t, b.Card(1, 1).Revealed)
	assert.Empty(t, b.Pending())
	assert.Zero(t, b.Matched())
	assert.Equal(t, 1, b.Moves())
	assert.False(t, b.MismatchPending())
}

func TestUpdateWithoutMismatchIsNoop(t *testing.T) {
	b := fixedBoard(&fakeClock{})
	b.FlipCard(0, 0)

	assert.False(t, b.Update())
	assert.Equal(t, []Cell{{0, 0}}, b.Pending())
}

func TestResolveIgnoresUnmatchedSingleCard(t *testing.T) {
	b := fixedBoard(&fakeClock{})
	b.FlipCard(0, 0)
	b.Resolve()

	assert.True(t, b.Card(0, 0).Revealed)
	assert.Len(t, b.Pending(), 1)
}

func TestIsComplete(t *testing.T) {
	b := fixedBoard(&fakeClock{})
	pairs := [][2]Cell{
		{{0, 0}, {0, 1}},
		{{0, 2}, {1, 0}},
		{{0, 3}, {1, 1}},
		{{1, 2}, {1, 3}},
		{{2, 0}, {2, 1}},
		{{2, 2}, {2, 3}},
		{{3, 0}, {3, 1}},
		{{3, 2}, {3, 3}},
	}

	for i, p := range pairs {
		assert.False(t, b.IsComplete(), "complete after %d pairs", i)
		b.FlipCard(p[0].Row, p[0].Col)
		require.Equal(t, FlipMatched, b.FlipCard(p[1].Row, p[1].Col))
		assert.Equal(t, i+1, b.Matched())
	}
	assert.True(t, b.IsComplete())
	assert.Equal(t, 8, b.Pairs())
}

func TestRestartResetsState(t *testing.T) {
	b := fixedBoard(&fakeClock{})
	b.FlipCard(0, 0)
	b.FlipCard(0, 1)
	b.FlipCard(2, 0)
	require.Equal(t, 1, b.Matched())
	require.Len(t, b.Pending(), 1)

	fresh, err := NewBoard(defaultOptions(), rand.New(rand.NewSource(7)), &fakeClock{})
	require.NoError(t, err)

	assert.Zero(t, fresh.Matched())
	assert.Zero(t, fresh.Moves())
	assert.Empty(t, fresh.Pending())
	allHidden(t, fresh)
}

func TestScenarioMatchThenMismatch(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	b := fixedBoard(clock)

	require.Equal(t, Red, b.Card(0, 0).Color)
	require.Equal(t, Red, b.Card(0, 1).Color)
	b.FlipCard(0, 0)
	b.FlipCard(0, 1)
	assert.Equal(t, 1, b.Matched())
	assert.True(t, b.Card(0, 0).Revealed)
	assert.True(t, b.Card(0, 1).Revealed)
	assert.Empty(t, b.Pending())

	require.Equal(t, Green, b.Card(1, 0).Color)
	require.Equal(t, Blue, b.Card(1, 1).Color)
	b.FlipCard(1, 0)
	b.FlipCard(1, 1)
	clock.Advance(time.Second)
	b.Update()

	assert.Equal(t, 1, b.Matched())
	assert.False(t, b.Card(1, 0).Revealed)
	assert.False(t, b.Card(1, 1).Revealed)
	assert.Empty(t, b.Pending())
}

func TestScenarioSeededShuffle(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	b, err := NewBoard(defaultOptions(), rand.New(rand.NewSource(2024)), clock)
	require.NoError(t, err)

	cells := map[Color][]Cell{}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cells[b.Card(r, c).Color] = append(cells[b.Card(r, c).Color], Cell{Row: r, Col: c})
		}
	}
	red := cells[Red]
	require.Len(t, red, 2)
	green, blue := cells[Green][0], cells[Blue][0]

	assert.Equal(t, FlipRevealed, b.FlipCard(red[0].Row, red[0].Col))
	assert.Equal(t, FlipMatched, b.FlipCard(red[1].Row, red[1].Col))
	assert.Equal(t, 1, b.Matched())
	assert.True(t, b.Card(red[0].Row, red[0].Col).Revealed)
	assert.True(t, b.Card(red[1].Row, red[1].Col).Revealed)
	assert.Empty(t, b.Pending())

	assert.Equal(t, FlipRevealed, b.FlipCard(green.Row, green.Col))
	assert.Equal(t, FlipMismatched, b.FlipCard(blue.Row, blue.Col))
	clock.Advance(time.Second)
	assert.True(t, b.Update())

	assert.Equal(t, 1, b.Matched())
	assert.False(t, b.Card(green.Row, green.Col).Revealed)
	assert.False(t, b.Card(blue.Row, blue.Col).Revealed)
	assert.True(t, b.Card(red[0].Row, red[0].Col).Revealed)
	assert.Empty(t, b.Pending())
}

func TestMatch(t *testing.T) {
	assert.True(t, Match(Red, Red))
	assert.True(t, Match(Color{1, 2, 3}, Color{1, 2, 3}))
	assert.False(t, Match(Green, Blue))
	assert.False(t, Match(Orange, Red))
}

func TestFlipResultString(t *testing.T) {
	assert.Equal(t, "matched", FlipMatched.String())
	assert.Equal(t, "FlipResult(9)", FlipResult(9).String())
}
