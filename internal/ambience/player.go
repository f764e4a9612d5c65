// Package ambience plays an optional background track and exposes its
// loudness so the particle field can pulse along with it.
package ambience

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

var ErrUnsupported = errors.New("unsupported audio file type")

// Player loops a single track through a Tap.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap

	level    float64
	paused   bool
	initDone bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Open decodes path by extension and starts looping it, replacing any track
// already playing.
func (p *Player) Open(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ambience track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to re-init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.release()

	tap := NewTap(beep.Loop(-1, streamer), config.VisualRingSize)
	p.file = f
	p.streamer = streamer
	p.format = format
	p.tap = tap
	p.ctrl = &beep.Ctrl{Streamer: tap}
	p.paused = false
	p.level = 0

	speaker.Play(p.ctrl)
	log.Printf("ambience: playing %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return nil
}

// TogglePause pauses or resumes playback and returns the new paused state.
// Without a track it does nothing.
func (p *Player) TogglePause() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
	if p.paused {
		p.tap.Reset()
	}
	return p.paused
}

func (p *Player) Playing() bool { return p.ctrl != nil && !p.paused }

// Level returns the smoothed loudness. Call it once per frame.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	p.level = smooth(p.level, p.tap.Level(config.LevelWindow))
	return p.level
}

func smooth(prev, next float64) float64 {
	return config.SmoothingFactor*prev + (1-config.SmoothingFactor)*next
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	if p.initDone {
		speaker.Clear()
	}
	return p.release()
}

func (p *Player) release() error {
	var errs []error
	if p.streamer != nil {
		errs = append(errs, p.streamer.Close())
		p.streamer = nil
	}
	if p.file != nil {
		// decoders may already have closed it
		if err := p.file.Close(); !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
		p.file = nil
	}
	p.ctrl, p.tap = nil, nil
	return errors.Join(errs...)
}
