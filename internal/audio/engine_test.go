package audio

import (
	"testing"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/game"
)

func newTestEngine() *Engine {
	return NewEngine(config.Default().Audio, nil)
}

// pull streams n samples and returns the peak absolute amplitude.
func pull(t *testing.T, e *Engine, n int) float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, ok := e.Stream(buf)
	if !ok || got != n {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", got, ok, n)
	}
	peak := 0.0
	for _, s := range buf {
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

func TestEngineIdleIsSilent(t *testing.T) {
	e := newTestEngine()

	if peak := pull(t, e, 512); peak != 0 {
		t.Errorf("idle engine peak = %v, want 0", peak)
	}
	if e.Err() != nil {
		t.Errorf("Err = %v, want nil", e.Err())
	}
}

func TestEngineSoundDrains(t *testing.T) {
	tests := []struct {
		id     string
		length int
	}{
		{game.SoundJump, 44100 * 120 / 1000},
		{game.SoundHit, 44100 * 350 / 1000},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e := newTestEngine()
			e.PlaySound(tt.id)

			if e.Voices() != 1 {
				t.Fatalf("Voices = %d after PlaySound, want 1", e.Voices())
			}
			if peak := pull(t, e, 1024); peak == 0 {
				t.Error("effect should be audible")
			}

			// Run past the end of the effect
			pull(t, e, tt.length)
			pull(t, e, 256)
			if e.Voices() != 0 {
				t.Errorf("Voices = %d after the effect ended, want 0", e.Voices())
			}
			if peak := pull(t, e, 256); peak != 0 {
				t.Errorf("drained engine peak = %v, want 0", peak)
			}
		})
	}
}

func TestEngineUnknownSoundIgnored(t *testing.T) {
	e := newTestEngine()
	e.PlaySound("applause")

	if e.Voices() != 0 {
		t.Errorf("unknown sound should not be queued, Voices = %d", e.Voices())
	}
}

func TestEngineMusicLifecycle(t *testing.T) {
	e := newTestEngine()

	e.PlayMusic("menu_music")
	if e.Track() != "menu_music" {
		t.Errorf("Track = %q, want menu_music", e.Track())
	}
	if peak := pull(t, e, 4096); peak == 0 {
		t.Error("menu music should be audible")
	}

	e.PlayMusic("game_music")
	pull(t, e, 256)
	if e.Track() != "game_music" {
		t.Errorf("Track = %q, want game_music", e.Track())
	}
	if e.Voices() != 1 {
		t.Errorf("switching tracks should leave one voice, got %d", e.Voices())
	}

	e.StopMusic()
	pull(t, e, 256)
	if e.Track() != "" {
		t.Errorf("Track = %q after stop, want empty", e.Track())
	}
	if e.Voices() != 0 {
		t.Errorf("Voices = %d after stop, want 0", e.Voices())
	}
	if peak := pull(t, e, 256); peak != 0 {
		t.Errorf("stopped music peak = %v, want 0", peak)
	}
}

func TestEngineMusicLoops(t *testing.T) {
	e := newTestEngine()
	e.PlayMusic("game_music")

	// Several full loops of the melody
	for i := 0; i < 20; i++ {
		pull(t, e, 44100/4)
	}
	if e.Voices() != 1 {
		t.Errorf("music should keep looping, Voices = %d", e.Voices())
	}
}

func TestEngineStopMusicKeepsEffects(t *testing.T) {
	e := newTestEngine()
	e.PlayMusic("menu_music")
	e.PlaySound(game.SoundHit)

	e.StopMusic()
	if peak := pull(t, e, 512); peak == 0 {
		t.Error("effect should survive StopMusic")
	}
	if e.Voices() != 1 {
		t.Errorf("Voices = %d, want only the effect", e.Voices())
	}
}

func TestEngineUnknownTrackKeepsCurrent(t *testing.T) {
	e := newTestEngine()
	e.PlayMusic("menu_music")
	e.PlayMusic("elevator")

	if e.Track() != "menu_music" {
		t.Errorf("Track = %q, want menu_music", e.Track())
	}
	if !HasTrack("game_music") || HasTrack("elevator") {
		t.Error("HasTrack reports the wrong catalogue")
	}
}

func TestEngineZeroVolumeIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Volume = 0
	e := NewEngine(cfg, nil)

	e.PlayMusic("game_music")
	e.PlaySound(game.SoundJump)

	if peak := pull(t, e, 2048); peak != 0 {
		t.Errorf("zero volume peak = %v, want 0", peak)
	}
}
