package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"memory-game/pkg/memory"
)

// Config holds every tunable of the game. It is loaded once at startup and
// passed by value to the constructors that need it. The grid size is not
// read from the environment; the game is always dealt 4x4.
type Config struct {
	WindowTitle string

	Rows, Cols            int
	CardWidth, CardHeight int32
	GridTop               int32
	FPS                   int
	MismatchDelay         time.Duration
	FlipDuration          time.Duration
	Palette               []memory.Color
	ShuffleSeed           int64

	FontPath string
	FontSize int

	TitleText    string
	WinText      string
	RestartLabel string
	ExitLabel    string

	SoundEnabled bool

	LogLevel           logrus.Level
	PerfReportInterval int
}

// Default returns the stock 4x4 configuration.
func Default() Config {
	palette := make([]memory.Color, len(memory.DefaultPalette))
	copy(palette, memory.DefaultPalette)

	return Config{
		WindowTitle:        "Jogo da Memória - Tela Cheia",
		Rows:               4,
		Cols:               4,
		CardWidth:          100,
		CardHeight:         150,
		GridTop:            70,
		FPS:                30,
		MismatchDelay:      time.Second,
		FlipDuration:       150 * time.Millisecond,
		Palette:            palette,
		FontSize:           48,
		TitleText:          "JOGO DA MEMÓRIA",
		WinText:            "VOCÊ ENCONTROU TODOS OS PARES!",
		RestartLabel:       "Reiniciar",
		ExitLabel:          "Sair",
		SoundEnabled:       true,
		LogLevel:           logrus.InfoLevel,
		PerfReportInterval: 300,
	}
}

// Load reads an optional .env file and then overlays environment variables
// on top of Default. The result is validated before it is returned.
func Load(log logrus.FieldLogger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not found: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for each variable.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}
	dimension := func(key string, dst *int32) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = int32(n)
	}
	duration := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = d
	}

	str("GAME_TITLE", &cfg.WindowTitle)
	dimension("CARD_WIDTH", &cfg.CardWidth)
	dimension("CARD_HEIGHT", &cfg.CardHeight)
	dimension("GRID_TOP", &cfg.GridTop)
	integer("FPS", &cfg.FPS)
	duration("MISMATCH_DELAY", &cfg.MismatchDelay)
	duration("FLIP_DURATION", &cfg.FlipDuration)
	str("FONT_PATH", &cfg.FontPath)
	integer("FONT_SIZE", &cfg.FontSize)
	str("TITLE_TEXT", &cfg.TitleText)
	str("WIN_TEXT", &cfg.WinText)
	str("RESTART_LABEL", &cfg.RestartLabel)
	str("EXIT_LABEL", &cfg.ExitLabel)
	integer("PERF_REPORT_INTERVAL", &cfg.PerfReportInterval)

	if v, ok := lookup("SHUFFLE_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SHUFFLE_SEED: %w", err))
		} else {
			cfg.ShuffleSeed = seed
		}
	}
	if v, ok := lookup("SOUND_ENABLED"); ok && v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("SOUND_ENABLED: %w", err))
		} else {
			cfg.SoundEnabled = enabled
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		level, err := logrus.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			cfg.LogLevel = level
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the grid can be filled with pairs from the palette
// and that every size is usable.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("card size must be positive, got %dx%d", c.CardWidth, c.CardHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %d", c.FontSize)
	}
	if c.MismatchDelay < 0 || c.FlipDuration < 0 {
		return errors.New("durations must not be negative")
	}
	return c.BoardOptions().Validate()
}

// BoardOptions extracts the game-logic part of the configuration.
func (c Config) BoardOptions() memory.Options {
	return memory.Options{
		Rows:          c.Rows,
		Cols:          c.Cols,
		Palette:       c.Palette,
		MismatchDelay: c.MismatchDelay,
	}
}

// FrameTime is the target duration of one loop iteration.
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
