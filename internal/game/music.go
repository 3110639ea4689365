package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/photo-rings/internal/config"
)

// music plays one looping background track behind the music button.
type music struct {
	logger *log.Logger
	path   string

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *levelTap

	initDone bool
	playing  bool
	level    float64
}

func newMusic(path string, logger *log.Logger) *music {
	return &music{path: path, logger: logger}
}

// toggle starts, pauses or resumes playback. Without a track it asks for
// one first; a canceled dialog is not an error.
func (m *music) toggle() error {
	if m.ctrl == nil {
		if m.path == "" {
			path, err := pickMusicFile()
			if err != nil || path == "" {
				return err
			}
			m.path = path
		}
		if err := m.loadAndPlay(m.path); err != nil {
			return fmt.Errorf("play %s: %w", m.path, err)
		}
		return nil
	}

	speaker.Lock()
	m.ctrl.Paused = !m.ctrl.Paused
	m.playing = !m.ctrl.Paused
	speaker.Unlock()
	return nil
}

// position is the playback position within the track.
func (m *music) position() time.Duration {
	if m.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := m.streamer.Position()
	speaker.Unlock()
	return m.format.SampleRate.D(pos)
}

func (m *music) update() {
	if m.tap == nil || !m.playing {
		m.level *= config.SmoothingFactor
		return
	}
	m.level = config.SmoothingFactor*m.level + (1-config.SmoothingFactor)*m.tap.level(2048)
}

func (m *music) label() string {
	if !m.playing {
		return "Music"
	}
	return "Pause " + formatDuration(m.position())
}

func pickMusicFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}

func decodeAudio(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

func (m *music) loadAndPlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decodeAudio(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	// streamer -> loop -> tap -> ctrl
	t := newLevelTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !m.initDone || m.format.SampleRate != format.SampleRate {
		if m.initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		m.initDone = true
	}

	m.stop()
	m.currentFile = f
	m.streamer = streamer
	m.format = format
	m.ctrl = ctrl
	m.tap = t
	m.playing = true

	speaker.Play(ctrl)
	m.logger.Info("music started", "path", path, "rate", format.SampleRate)
	return nil
}

func (m *music) stop() {
	if m.initDone {
		speaker.Clear()
	}
	if m.streamer != nil {
		_ = m.streamer.Close()
		m.streamer = nil
	}
	if m.currentFile != nil {
		_ = m.currentFile.Close()
		m.currentFile = nil
	}
	m.ctrl = nil
	m.tap = nil
	m.playing = false
}
