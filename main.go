package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"memory-game/pkg/config"
	"memory-game/pkg/performance"
	"memory-game/screens/game"
)

const (
	fallbackWidth  = 1280
	fallbackHeight = 720
)

var log = logrus.New()

func main() {
	// SDL2 must be driven from the main OS thread
	runtime.LockOSThread()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Info("Shutting down SDL2...")
		sdl.Quit()
	}()

	screenWidth, screenHeight := getDisplayDimensions()
	log.Infof("Starting %s | Resolution: %dx%d", cfg.WindowTitle, screenWidth, screenHeight)

	logDisplayInfo()

	window, err := createWindow(cfg.WindowTitle, screenWidth, screenHeight)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	// The fullscreen mode may not match the requested size exactly
	w, h := window.GetSize()
	screen, err := game.NewScreen(cfg, log, renderer, w, h)
	if err != nil {
		log.Fatalf("Failed to create game screen: %v", err)
	}
	defer screen.Close()

	runGameLoop(cfg, screen)

	log.Info("Memory game shutting down...")
}

// initializeSDL2 initializes SDL2, trying the video driver from the
// environment first and then the platform defaults
func initializeSDL2() error {
	var videoDrivers []string
	if envDriver := os.Getenv("SDL_VIDEODRIVER"); envDriver != "" {
		log.Infof("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = append(videoDrivers, envDriver)
	}

	switch runtime.GOOS {
	case "darwin":
		videoDrivers = append(videoDrivers, "cocoa")
	case "windows":
		videoDrivers = append(videoDrivers, "windows")
	default:
		videoDrivers = append(videoDrivers, "x11", "wayland", "kmsdrm")
	}

	var errs []error
	for _, driver := range videoDrivers {
		log.Debugf("Attempting SDL2 initialization with %s driver", driver)

		if err := trySDLInitialization(driver); err != nil {
			log.Warnf("SDL2 initialization failed with %s driver: %v", driver, err)
			errs = append(errs, err)
			continue
		}

		log.Infof("SDL2 successfully initialized with %s driver", driver)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed: %w", errors.Join(errs...))
}

// trySDLInitialization initializes the video subsystem with one driver
func trySDLInitialization(driver string) error {
	sdl.Quit()

	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %w", err)
	}
	log.Debugf("Video driver initialized: %s", driverName)
	return nil
}

// getDisplayDimensions returns the screen dimensions or fallback values
func getDisplayDimensions() (int32, int32) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		log.Warnf("Failed to get display mode, using fallback: %v", err)
		return fallbackWidth, fallbackHeight
	}
	return displayMode.W, displayMode.H
}

// logDisplayInfo outputs debugging information about the display setup
func logDisplayInfo() {
	numDisplays, err := sdl.GetNumVideoDisplays()
	if err != nil {
		log.Debugf("Failed to get number of displays: %v", err)
		return
	}

	for i := 0; i < numDisplays; i++ {
		fields := logrus.Fields{"display": i}
		if mode, err := sdl.GetCurrentDisplayMode(i); err == nil {
			fields["mode"] = fmt.Sprintf("%dx%d@%dHz", mode.W, mode.H, mode.RefreshRate)
		}
		if name, err := sdl.GetDisplayName(i); err == nil {
			fields["name"] = name
		}
		log.WithFields(fields).Debug("display")
	}
}

// createWindow creates an exclusive fullscreen window
func createWindow(title string, width, height int32) (*sdl.Window, error) {
	return sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		width,
		height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_FULLSCREEN,
	)
}

// createRenderer creates an accelerated renderer, falling back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Warnf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Alpha blending for the win banner
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// runGameLoop polls events, updates and draws the screen at the configured
// frame rate until the window closes or the player exits
func runGameLoop(cfg config.Config, screen *game.Screen) {
	frameTime := cfg.FrameTime()
	monitor := performance.NewFrameMonitor(frameTime, cfg.FPS*2)
	lastTime := time.Now()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				log.Info("Quit event received")
				return
			}
			if err := screen.HandleEvent(event); err != nil {
				if !errors.Is(err, game.ErrExit) {
					log.Errorf("Game input error: %v", err)
				}
				return
			}
		}

		start := time.Now()
		if err := screen.Update(); err != nil {
			log.Errorf("Game update error: %v", err)
			return
		}
		updated := time.Now()

		if err := screen.Draw(); err != nil {
			log.Errorf("Game draw error: %v", err)
			return
		}
		monitor.RecordFrame(updated.Sub(start), time.Since(updated))

		monitor.ReportEvery(log, cfg.PerfReportInterval)

		// Frame rate limiting
		elapsed := time.Since(lastTime)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
		lastTime = time.Now()
	}
}
