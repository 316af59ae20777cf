package game

import (
	"fmt"
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

var (
	backgroundColor = sdl.Color{R: 135, G: 206, B: 235, A: 255}
	titleColor      = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	shadowColor     = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	winColor        = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	statusColor     = sdl.Color{R: 25, G: 25, B: 60, A: 255}

	bannerStart = [3]uint8{255, 255, 255}
	bannerEnd   = [3]uint8{190, 230, 250}
)

// NewScreen creates the game screen for a width x height window. It loads
// the fonts and, when enabled, opens the audio device.
func NewScreen(cfg config.Config, log logrus.FieldLogger, renderer *sdl.Renderer, width, height int32) (*Screen, error) {
	fonts, err := ui.LoadFonts(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return nil, err
	}

	sound := audio.NewSoundManager(log)
	if cfg.SoundEnabled {
		if err := sound.Initialize(); err != nil {
			log.Warnf("Audio unavailable, continuing without sound: %v", err)
		}
	}
	log.WithField("enabled", sound.Enabled()).Info("sound")

	s, err := newScreen(cfg, log, width, height, sound, memory.SystemClock{})
	if err != nil {
		fonts.Close()
		sound.Close()
		return nil, err
	}
	s.renderer = renderer
	s.fonts = fonts
	s.closer = func() {
		sound.Close()
		fonts.Close()
	}
	return s, nil
}

func newScreen(cfg config.Config, log logrus.FieldLogger, width, height int32, sound SoundPlayer, clock memory.Clock) (*Screen, error) {
	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout := NewLayout(cfg, width, height)
	s := &Screen{
		cfg:           cfg,
		log:           log,
		layout:        layout,
		rng:           rand.New(rand.NewSource(seed)),
		clock:         clock,
		sound:         sound,
		restartButton: button.NewWidget(cfg.RestartLabel, layout.RestartRect()),
		exitButton:    button.NewWidget(cfg.ExitLabel, layout.ExitRect()),
		lastUpdate:    clock.Now(),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"seed":   seed,
		"width":  width,
		"height": height,
	}).Info("game screen ready")
	return s, nil
}

// Restart deals a freshly shuffled board
func (s *Screen) Restart() error {
	board, err := memory.NewBoard(s.cfg.BoardOptions(), s.rng, s.clock)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}

	cards := make([][]*card.Widget, board.Rows())
	for r := range cards {
		cards[r] = make([]*card.Widget, board.Cols())
		for c := range cards[r] {
			cards[r][c] = card.NewWidget(card.DefaultStyle, s.cfg.FlipDuration)
		}
	}

	s.board = board
	s.cards = cards
	s.won = false
	s.log.Info("new game dealt")
	return nil
}

// Board exposes the current game state
func (s *Screen) Board() *memory.Board {
	return s.board
}

// HandleEvent applies one polled SDL event: a left-button press goes to
// the grid and the buttons, and Escape returns ErrExit
func (s *Screen) HandleEvent(event sdl.Event) error {
	if input.KeyDown(event, sdl.SCANCODE_ESCAPE) {
		s.log.Info("escape pressed")
		return ErrExit
	}
	if x, y, ok := input.PrimaryPress(event); ok {
		return s.HandlePress(x, y)
	}
	return nil
}

// Update samples the pointer for hover highlighting and advances timers
func (s *Screen) Update() error {
	s.pointer = input.SamplePointer()

	now := s.clock.Now()
	s.Advance(now.Sub(s.lastUpdate))
	s.lastUpdate = now
	return nil
}

// HandlePress dispatches a primary-button press at (x, y) to the grid and
// the buttons
func (s *Screen) HandlePress(x, y int32) error {
	if row, col, ok := s.layout.CellAt(x, y); ok {
		s.flip(row, col)
	}

	if s.restartButton.IsClicked(x, y, true) {
		s.log.WithField("button", s.restartButton.Label()).Info("button pressed")
		return s.Restart()
	}
	if s.exitButton.IsClicked(x, y, true) {
		s.log.WithField("button", s.exitButton.Label()).Info("button pressed")
		return ErrExit
	}
	return nil
}

func (s *Screen) flip(row, col int) {
	result := s.board.FlipCard(row, col)
	if result == memory.FlipIgnored {
		return
	}

	log := s.log.WithFields(logrus.Fields{
		"row":    row,
		"col":    col,
		"result": result.String(),
		"pairs":  s.board.Matched(),
		"moves":  s.board.Moves(),
	})
	log.Debug("card flipped")

	switch result {
	case memory.FlipRevealed:
		s.play(audio.EffectFlip)
	case memory.FlipMatched:
		s.play(audio.EffectMatch)
	case memory.FlipMismatched:
		s.play(audio.EffectMismatch)
	}
}

// Advance resolves expired mismatches, moves the card animations on by dt
// and announces a win once
func (s *Screen) Advance(dt time.Duration) {
	if s.board.Update() {
		s.log.Debug("mismatch flipped back")
	}

	for r, row := range s.cards {
		for c, w := range row {
			w.Sync(s.board.Card(r, c).Revealed)
			if w.Animating() {
				w.Update(dt)
			}
		}
	}

	if !s.won && s.board.IsComplete() {
		s.won = true
		s.play(audio.EffectWin)
		s.log.WithField("moves", s.board.Moves()).Info("all pairs found")
	}
}

func (s *Screen) play(e audio.Effect) {
	if s.sound != nil {
		s.sound.Play(e)
	}
}

// Draw renders the complete frame using SDL2
func (s *Screen) Draw() error {
	r := s.renderer

	r.SetDrawColor(backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A)
	r.Clear()

	tx, ty := s.layout.TitleCenter()
	if err := ui.RenderTextShadowed(r, s.cfg.TitleText, tx, ty, titleShadowOffset, titleColor, shadowColor, s.fonts.Large); err != nil {
		return err
	}

	for row, widgets := range s.cards {
		for col, w := range widgets {
			if err := w.Draw(r, s.layout.CellRect(row, col), s.board.Card(row, col).Color); err != nil {
				return err
			}
		}
	}

	sx, sy := s.layout.StatusCenter()
	status := fmt.Sprintf("PARES: %d/%d   JOGADAS: %d", s.board.Matched(), s.board.Pairs(), s.board.Moves())
	if err := ui.RenderTextCentered(r, status, sx, sy, statusColor, s.fonts.Small); err != nil {
		return err
	}

	if s.board.IsComplete() {
		if err := s.drawWinBanner(); err != nil {
			return err
		}
	}

	if err := s.restartButton.Draw(r, s.fonts.Large, s.pointer.X, s.pointer.Y); err != nil {
		return err
	}
	if err := s.exitButton.Draw(r, s.fonts.Large, s.pointer.X, s.pointer.Y); err != nil {
		return err
	}

	r.Present()
	return nil
}

// drawWinBanner draws a translucent strip with the win message on top
func (s *Screen) drawWinBanner() error {
	wx, wy := s.layout.WinPosition()
	h := int32(s.fonts.Large.Height())
	ui.DrawGradientRect(s.renderer, 0, wy-h/4, s.layout.Width, h+h/2, bannerStart, bannerEnd, 200)
	return ui.RenderText(s.renderer, s.cfg.WinText, wx, wy, winColor, s.fonts.Large)
}

// Close releases fonts and audio
func (s *Screen) Close() {
	if s.closer != nil {
		s.closer()
		s.closer = nil
	}
}
