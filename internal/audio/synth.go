package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine oscillator of fixed length with a linear attack and release.
type tone struct {
	rate    beep.SampleRate
	freq    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(rate beep.SampleRate, freq float64, d, attack, release time.Duration) *tone {
	return &tone{
		rate:    rate,
		freq:    freq,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := math.Sin(2*math.Pi*t.phase) * t.envelope()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
		return float64(remaining) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// drone is an endless slow arpeggio in A minor used as the crypt's music loop.
type drone struct {
	rate  beep.SampleRate
	notes []float64
	note  int // samples per note
	pos   int
	phase float64
	sub   float64
}

func newDrone(rate beep.SampleRate) *drone {
	return &drone{
		rate:  rate,
		notes: []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94},
		note:  rate.N(400 * time.Millisecond),
	}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (d.pos / d.note) % len(d.notes)
		within := float64(d.pos%d.note) / float64(d.note)
		freq := d.notes[idx]

		// Soft pluck per note over a constant sub-octave bed.
		pluck := math.Sin(2*math.Pi*d.phase) * math.Exp(-3*within)
		bed := 0.4 * math.Sin(2*math.Pi*d.sub)
		v := 0.25 * (pluck + bed)
		samples[i][0] = v
		samples[i][1] = v

		d.phase += freq / float64(d.rate)
		d.phase -= math.Floor(d.phase)
		d.sub += 110.0 / float64(d.rate)
		d.sub -= math.Floor(d.sub)
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

// withVolume scales s linearly by vol in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// effect builds the streamer for one sound.
func effect(rate beep.SampleRate, s Sound) (beep.Streamer, error) {
	switch s {
	case SoundStep:
		// Short low thud.
		return newTone(rate, 140, 60*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond), nil
	case SoundHurt:
		// Falling two-note sting.
		return beep.Seq(
			newTone(rate, 392, 90*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond),
			newTone(rate, 196, 180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond),
		), nil
	case SoundWin:
		// Rising major arpeggio.
		return beep.Seq(
			newTone(rate, 523.25, 120*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
			newTone(rate, 659.25, 120*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
			newTone(rate, 783.99, 320*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond),
		), nil
	default:
		return nil, ErrUnknownSound
	}
}
