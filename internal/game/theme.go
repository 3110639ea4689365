package game

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/photo-rings/internal/config"
)

type palette struct {
	Background color.RGBA
	Letter     color.RGBA
	Button     color.RGBA
	ButtonText color.RGBA
	Border     color.RGBA
}

var (
	darkPalette = palette{
		Background: color.RGBA{R: 14, G: 15, B: 20, A: 255},
		Letter:     color.RGBA{R: 120, G: 125, B: 140, A: 110},
		Button:     color.RGBA{R: 100, G: 120, B: 160, A: 255},
		ButtonText: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:     color.RGBA{R: 150, G: 170, B: 200, A: 255},
	}
	lightPalette = palette{
		Background: color.RGBA{R: 240, G: 236, B: 228, A: 255},
		Letter:     color.RGBA{R: 90, G: 85, B: 80, A: 110},
		Button:     color.RGBA{R: 200, G: 190, B: 175, A: 255},
		ButtonText: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Border:     color.RGBA{R: 120, G: 110, B: 95, A: 255},
	}

	fallbackFill = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}
)

// theme holds the light/dark choice and remembers it in the prefs file.
type theme struct {
	logger    *log.Logger
	prefsPath string
	name      string
}

func newTheme(prefsPath string, logger *log.Logger) *theme {
	return &theme{
		logger:    logger,
		prefsPath: prefsPath,
		name:      config.LoadPrefs(prefsPath).Theme,
	}
}

func (t *theme) light() bool { return t.name == config.ThemeLight }

func (t *theme) palette() palette {
	if t.light() {
		return lightPalette
	}
	return darkPalette
}

func (t *theme) toggle() {
	if t.light() {
		t.name = config.ThemeDark
	} else {
		t.name = config.ThemeLight
	}
	if err := config.SavePrefs(t.prefsPath, config.Prefs{Theme: t.name}); err != nil {
		t.logger.Warn("could not save theme", "err", err)
	}
}

func (t *theme) label() string {
	if t.light() {
		return "Dark"
	}
	return "Light"
}
