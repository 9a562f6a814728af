// Package audio plays short sound clips through the system speaker.
// Playback is best-effort: every failure is logged and swallowed.
package audio

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// builtin holds the clips shipped with the game. A file with the same name in
// the configured directory takes precedence.
//
//go:embed sounds/*.wav
var builtin embed.FS

var (
	_ snake.SoundPlayer = (*Player)(nil)
	_ snake.SoundPlayer = Silent{}
)

const (
	resampleQuality = 4
	blipFreq        = 880
	blipDuration    = 60 * time.Millisecond
)

// Player decodes WAV clips from a directory, caches them and plays them on demand.
// The speaker is opened lazily on the first successful Play.
type Player struct {
	mu       sync.Mutex
	dir      string
	rate     beep.SampleRate
	fallback bool
	logger   *log.Logger

	clips  map[string]*beep.Buffer
	failed map[string]bool

	ready    bool // speaker initialized
	disabled bool // speaker could not be initialized
}

// NewPlayer creates a player for the clips under cfg.Dir.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		dir:      cfg.Dir,
		rate:     beep.SampleRate(cfg.SampleRate),
		fallback: cfg.SynthFallback,
		logger:   logger,
		clips:    make(map[string]*beep.Buffer),
		failed:   make(map[string]bool),
	}
}

// Preload decodes clips ahead of time so the first Play doesn't touch the disk.
func (p *Player) Preload(clips ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, clip := range clips {
		p.buffer(clip)
	}
}

// Play starts a clip and returns immediately.
func (p *Player) Play(clip string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		return
	}

	var s beep.Streamer
	if buf := p.buffer(clip); buf != nil {
		s = buf.Streamer(0, buf.Len())
	} else if p.fallback {
		s = p.blip()
	}
	if s == nil {
		return
	}

	if !p.ready {
		if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
			p.logger.Warn("audio disabled", "error", err)
			p.disabled = true
			return
		}
		p.ready = true
	}
	speaker.Play(s)
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// buffer returns the cached clip, loading it on first use. A clip that failed
// once is not retried. Callers hold p.mu.
func (p *Player) buffer(clip string) *beep.Buffer {
	if buf, ok := p.clips[clip]; ok {
		return buf
	}
	if p.failed[clip] {
		return nil
	}

	buf, err := loadClip(filepath.Join(p.dir, clip), p.rate)
	if errors.Is(err, fs.ErrNotExist) {
		buf, err = loadBuiltin(clip, p.rate)
	}
	if err != nil {
		p.logger.Warn("could not load sound", "clip", clip, "error", err)
		p.failed[clip] = true
		return nil
	}
	p.clips[clip] = buf
	p.logger.Debug("sound loaded", "clip", clip, "samples", buf.Len())
	return buf
}

// blip synthesizes a short tone at the player's rate.
func (p *Player) blip() beep.Streamer {
	sine, err := generators.SineTone(p.rate, blipFreq)
	if err != nil {
		p.logger.Warn("could not synthesize blip", "error", err)
		return nil
	}
	return beep.Take(p.rate.N(blipDuration), sine)
}

// loadClip decodes a WAV file into memory, resampled to rate.
func loadClip(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return decodeClip(f, path, rate)
}

// loadBuiltin decodes one of the embedded clips.
func loadBuiltin(clip string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := builtin.Open("sounds/" + clip)
	if err != nil {
		return nil, fmt.Errorf("audio: no file or built-in clip %s: %w", clip, err)
	}
	return decodeClip(f, "built-in "+clip, rate)
}

// decodeClip reads WAV data from rc into a buffer at rate. rc is closed.
func decodeClip(rc io.ReadCloser, name string, rate beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", name, err)
	}
	return buf, nil
}

// Silent discards every clip. It stands in for Player when audio is off.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}

// Close does nothing.
func (Silent) Close() {}
