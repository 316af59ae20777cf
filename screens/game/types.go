package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"memory-game/pkg/audio"
	"memory-game/pkg/config"
	"memory-game/pkg/input"
	"memory-game/pkg/memory"
	"memory-game/ui"
	"memory-game/widgets/button"
	"memory-game/widgets/card"
)

// ErrExit is returned by HandleEvent when the player asked to leave the game
var ErrExit = errors.New("exit requested")

// SoundPlayer plays the effect for a game event
type SoundPlayer interface {
	Play(e audio.Effect)
}

// Screen is the single game screen: the board, its buttons and the win
// banner
type Screen struct {
	cfg config.Config
	log logrus.FieldLogger

	// SDL2 rendering
	renderer *sdl.Renderer
	fonts    *ui.Fonts
	layout   Layout

	// Game state
	board *memory.Board
	rng   *rand.Rand
	clock memory.Clock
	won   bool

	// UI components
	cards         [][]*card.Widget
	restartButton *button.Widget
	exitButton    *button.Widget

	sound  SoundPlayer
	closer func()

	// Last pointer sample, for hover
	pointer input.Pointer

	lastUpdate time.Time
}
