package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// chirp is a square wave whose pitch slides linearly from one frequency
// to another over its length, then holds the end pitch.
type chirp struct {
	rate     beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func newChirp(rate beep.SampleRate, from, to float64, d time.Duration) *chirp {
	return &chirp{rate: rate, from: from, to: to, length: rate.N(d)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(c.pos)/float64(c.length), 1)
		freq := c.from + (c.to-c.from)*progress

		val := 0.4
		if c.phase >= 0.5 {
			val = -0.4
		}
		// Linear fade so the tail does not click
		val *= 1 - progress*0.8

		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// crunch is decaying noise over a low rumble, used for the hit effect.
type crunch struct {
	rate beep.SampleRate
	pos  int
	seed uint32
}

func newCrunch(rate beep.SampleRate) *crunch {
	return &crunch{rate: rate, seed: 0x2545f491}
}

func (c *crunch) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-t * 9)

		// xorshift keeps the effect reproducible
		c.seed ^= c.seed << 13
		c.seed ^= c.seed >> 17
		c.seed ^= c.seed << 5
		noise := float64(c.seed)/float64(math.MaxUint32)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*70*t)
		val := env * (0.3*noise + rumble)

		samples[i][0] = val
		samples[i][1] = val
		c.pos++
	}
	return len(samples), true
}

func (c *crunch) Err() error { return nil }

// sequencer loops a melody forever. A zero note is a rest.
type sequencer struct {
	rate     beep.SampleRate
	notes    []float64
	step     int // samples per note
	bass     float64
	pos      int
	phase    float64
	bassPh   float64
	pulsed   bool // add a kick at the start of every other note
	loopSize int
}

func newSequencer(rate beep.SampleRate, notes []float64, step time.Duration, bass float64, pulsed bool) *sequencer {
	s := &sequencer{
		rate:   rate,
		notes:  notes,
		step:   rate.N(step),
		bass:   bass,
		pulsed: pulsed,
	}
	s.loopSize = s.step * len(notes)
	return s
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := s.pos % s.loopSize
		idx := p / s.step
		inNote := p % s.step
		noteT := float64(inNote) / float64(s.rate)

		val := 0.0
		if freq := s.notes[idx]; freq > 0 {
			env := math.Exp(-noteT * 4)
			val += 0.2 * env * math.Sin(2*math.Pi*s.phase)
			s.phase += freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}

		val += 0.08 * math.Sin(2*math.Pi*s.bassPh)
		s.bassPh += s.bass / float64(s.rate)
		s.bassPh -= math.Floor(s.bassPh)

		if s.pulsed && idx%2 == 0 && noteT < 0.08 {
			kickEnv := 1 - noteT/0.08
			val += 0.3 * kickEnv * math.Sin(2*math.Pi*(50+100*kickEnv)*noteT)
		}

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *sequencer) Err() error { return nil }

// newVolume scales s by a linear factor. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
