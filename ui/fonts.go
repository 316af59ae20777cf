package ui

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts holds the TrueType faces used by the game screen
type Fonts struct {
	Large *ttf.Font // title, banner and button labels
	Small *ttf.Font // status line
}

// systemFontPaths are tried in order after an explicitly configured path
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// FontCandidates returns the lookup order for a configured path
func FontCandidates(preferred string) []string {
	if preferred == "" {
		return systemFontPaths
	}
	return append([]string{preferred}, systemFontPaths...)
}

// LoadFonts initializes TTF and opens the first usable font at size and
// at half size. It fails when no candidate can be opened.
func LoadFonts(preferred string, size int) (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	var errs []error
	for _, path := range FontCandidates(preferred) {
		large, err := ttf.OpenFont(path, size)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		small, err := ttf.OpenFont(path, size/2)
		if err != nil {
			large.Close()
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return &Fonts{Large: large, Small: small}, nil
	}

	ttf.Quit()
	return nil, fmt.Errorf("no usable font found: %w", errors.Join(errs...))
}

// Close cleans up font resources
func (f *Fonts) Close() {
	if f.Large != nil {
		f.Large.Close()
	}
	if f.Small != nil {
		f.Small.Close()
	}
	ttf.Quit()
}
