// Package audio synthesizes the toy's tones and pushes them to the output
// device. The Mixer renders plain sawtooth voices with a linear
// attack/release envelope into float32 buffers; the engine layer owns the
// device and decides whether those buffers go anywhere.
package audio

import (
	"math"

	"github.com/ziemniaki/pszczulki/config"
)

// voice is one sounding sawtooth tone.
type voice struct {
	freq  float64
	phase float64 // cycle position in [0, 1)
	age   float64 // seconds since trigger
	dur   float64
}

// sample returns the enveloped amplitude at the voice's current position and
// advances it by one sample period.
func (v *voice) sample(step, attack float64) float64 {
	// Naive sawtooth. Aliasing is audible on the top octaves and is part of
	// the toy's character.
	out := (2*v.phase - 1) * v.envelope(attack)
	v.phase += v.freq * step
	v.phase -= math.Floor(v.phase)
	v.age += step
	return out
}

// envelope is a linear ramp up over the attack, then a linear fade over the
// rest of the duration.
func (v *voice) envelope(attack float64) float64 {
	switch {
	case v.age >= v.dur:
		return 0
	case v.age < attack:
		return v.age / attack
	default:
		return (v.dur - v.age) / (v.dur - attack)
	}
}

func (v *voice) done() bool { return v.age >= v.dur }

// Mixer sums sawtooth voices into output buffers. It is not safe for
// concurrent use; the host triggers and renders from the same loop.
type Mixer struct {
	voices []voice

	rate      int
	step      float64 // seconds per sample
	attack    float64
	maxVoices int
	master    float64
}

// NewMixer builds a mixer from the audio configuration.
func NewMixer(cfg *config.Config) *Mixer {
	return &Mixer{
		rate:      cfg.Audio.SampleRate,
		step:      1.0 / float64(cfg.Audio.SampleRate),
		attack:    cfg.Audio.AttackSec,
		maxVoices: cfg.Audio.MaxVoices,
		master:    cfg.Audio.MasterVolume,
	}
}

// Trigger starts a tone at freq Hz lasting durSec seconds. At the polyphony
// cap the oldest voice is stolen.
func (m *Mixer) Trigger(freq, durSec float64) {
	v := voice{freq: freq, dur: durSec}
	if len(m.voices) < m.maxVoices {
		m.voices = append(m.voices, v)
		return
	}
	oldest := 0
	for i := 1; i < len(m.voices); i++ {
		if m.voices[i].age > m.voices[oldest].age {
			oldest = i
		}
	}
	m.voices[oldest] = v
}

// Render fills buf with the summed, master-scaled mix and retires voices
// that finished inside the buffer.
func (m *Mixer) Render(buf []float32) {
	for i := range buf {
		var sum float64
		for j := range m.voices {
			sum += m.voices[j].sample(m.step, m.attack)
		}
		sum *= m.master
		// Hard clip; with the default cap and master level the mix rarely
		// reaches it.
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		buf[i] = float32(sum)
	}

	for i := 0; i < len(m.voices); {
		if m.voices[i].done() {
			m.voices[i] = m.voices[len(m.voices)-1]
			m.voices = m.voices[:len(m.voices)-1]
			continue
		}
		i++
	}
}

// SetMaster sets the mix bus attenuation, clamped to [0, 1].
func (m *Mixer) SetMaster(v float64) {
	m.master = math.Min(1, math.Max(0, v))
}

// Master returns the current mix bus attenuation.
func (m *Mixer) Master() float64 { return m.master }

// SampleRate returns the output rate in Hz.
func (m *Mixer) SampleRate() int { return m.rate }

// ActiveVoices returns how many voices are currently sounding.
func (m *Mixer) ActiveVoices() int { return len(m.voices) }
