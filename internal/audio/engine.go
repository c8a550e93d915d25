// Package audio synthesizes the game's music and sound effects and mixes
// them into a single beep.Streamer. The engine never touches the audio
// device itself; the caller hands it to speaker.Play.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/game"
)

// Note frequencies used by the tracks.
const (
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	rest   = 0
)

// Durations of the one-shot effects.
const (
	jumpLength = 120 * time.Millisecond
	hitLength  = 350 * time.Millisecond
)

type trackFunc func(rate beep.SampleRate) beep.Streamer

// tracks maps the music keys from the config to their generators.
var tracks = map[string]trackFunc{
	"menu_music": func(rate beep.SampleRate) beep.Streamer {
		melody := []float64{noteA3, noteC4, noteE4, noteA4, noteE4, noteC4, rest, noteG4}
		return newSequencer(rate, melody, 300*time.Millisecond, 55, false)
	},
	"game_music": func(rate beep.SampleRate) beep.Streamer {
		melody := []float64{noteE4, noteG4, noteA4, noteC5, noteD5, noteC5, noteA4, noteE5}
		return newSequencer(rate, melody, 160*time.Millisecond, 82.41, true)
	},
}

// HasTrack reports whether a music key is known.
func HasTrack(name string) bool {
	_, ok := tracks[name]
	return ok
}

// Engine is a game.Audio backed by a beep mixer. It is safe for concurrent
// use: the game loop issues commands while the speaker goroutine streams.
type Engine struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	music  *beep.Ctrl
	track  string
	logger *log.Logger
}

var _ game.Audio = (*Engine)(nil)

// NewEngine creates an idle engine. A nil logger discards output.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// SampleRate returns the rate the engine synthesizes at.
func (e *Engine) SampleRate() beep.SampleRate {
	return e.rate
}

// Stream mixes every active voice. It never drains: with nothing playing
// it yields silence.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n, _ = e.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err always returns nil.
func (e *Engine) Err() error {
	return nil
}

// PlaySound starts a one-shot effect on top of whatever is playing.
func (e *Engine) PlaySound(id string) {
	var s beep.Streamer
	switch id {
	case game.SoundJump:
		s = beep.Take(e.rate.N(jumpLength), newChirp(e.rate, 320, 880, jumpLength))
	case game.SoundHit:
		var thud beep.Streamer
		thud, err := generators.SineTone(e.rate, 55)
		if err != nil {
			e.logger.Warn("hit tone unavailable", "err", err)
			thud = beep.Silence(-1)
		}
		s = beep.Take(e.rate.N(hitLength), beep.Mix(newCrunch(e.rate), newVolume(thud, 0.25)))
	default:
		e.logger.Warn("unknown sound", "id", id)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.mixer.Add(newVolume(s, e.volume))
}

// PlayMusic replaces the current track with a looping one.
func (e *Engine) PlayMusic(track string) {
	build, ok := tracks[track]
	if !ok {
		e.logger.Warn("unknown music track", "track", track)
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(build(e.rate), e.volume)}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.music = ctrl
	e.track = track
	e.mixer.Add(ctrl)
	e.logger.Debug("music started", "track", track)
}

// StopMusic silences the current track. Effects keep playing.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.music == nil {
		return
	}
	// A Ctrl without a streamer drains, so the mixer drops it
	e.music.Streamer = nil
	e.music = nil
	e.track = ""
}

// Track returns the playing music key, or "" when none.
func (e *Engine) Track() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.track
}

// Voices returns the number of streams the mixer still holds.
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Len()
}
