package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Ring packing
	MaxRingRadius  = 32.0 // percent of container
	RingAngleShift = 6    // ring offset is ringIndex * pi / RingAngleShift

	// Circle sizing
	ContainerFraction = 0.8
	SizeDivisor       = 1.8
	MinBaseSize       = 60.0
	MaxBaseSize       = 100.0
	MinCircleSize     = 45.0
	OuterSizeFactor   = 0.75

	// Motion
	ResamplePeriod = 3000 * time.Millisecond
	EaseFactor     = 0.02
	ReferenceFPS   = 60.0
	MaxOffsetBase  = 5.0
	ScaleAmplitude = 0.08
	MinScaleSpeed  = 0.3
	ScaleSpeedSpan = 0.4

	// Hover
	PushThreshold = 100.0
	PushDistance  = 25.0
	HoverScale    = 1.15
	HoverTween    = 0.3 // seconds

	// Overlay
	OverlayAlpha   = 0.85
	OverlayTween   = 0.25 // seconds
	EnlargedFill   = 0.9
	OverlayDimming = 0.35

	// Thumbnails
	ThumbnailSize = 256
	EnlargedMax   = 1600

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 20
	ButtonGap    = 10

	// Level meter on the music button
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
)

// DefaultImages is the deployed photo set.
var DefaultImages = []string{
	"05.jpg", "06.jpg", "07.jpg", "08.jpg",
	"09.jpg", "10.jpg", "11.jpg", "12.jpg", "13.jpg", "14.jpg", "15.jpg", "16.jpg",
	"17.jpg", "18.jpg", "19.jpg", "20.jpg", "21.jpg", "22.jpg", "23.jpg",
}

// Config holds everything the app reads at startup.
type Config struct {
	ImageDir string   `toml:"image_dir"`
	Images   []string `toml:"images"`
	Letter   string   `toml:"letter"`
	Music    string   `toml:"music"`
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`

	// SmoothPerSecond scales the ease factor by elapsed time instead of
	// applying it once per frame.
	SmoothPerSecond bool `toml:"smooth_per_second"`

	// BreatheWhileEnlarged keeps advancing the scale phase while an item
	// is shown in the overlay.
	BreatheWhileEnlarged bool `toml:"breathe_while_enlarged"`
}

func Default() Config {
	images := make([]string, len(DefaultImages))
	copy(images, DefaultImages)
	return Config{
		ImageDir: "images",
		Images:   images,
		Letter:   "letter.txt",
		Width:    WindowWidth,
		Height:   WindowHeight,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Images) == 0 {
		return errors.New("config: no images configured")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}
