package audio

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// streamBufferFrames is the device buffer length. At 44.1kHz this is ~93ms,
// comfortably ahead of a 60fps pump without adding audible latency to tones
// that last half a second.
const streamBufferFrames = 4096

// Engine is the host-facing audio surface. The graphical build talks to the
// raylib stream device; headless and muted runs use the null engine, so the
// game loop never branches on audio availability.
type Engine interface {
	// Trigger starts a tone at freq Hz for durSec seconds.
	Trigger(freq, durSec float64)
	// Pump feeds the output device. Called once per frame.
	Pump()
	// Resume retries device initialization. Browsersque audio policies do
	// not apply here, but a device can still be missing at startup and
	// appear later; the host calls this on the first input gesture.
	Resume()
	// Ready reports whether sound is actually reaching a device.
	Ready() bool
	// Close releases the device.
	Close()
}

// NullEngine swallows every tone. Used headless and under -mute.
type NullEngine struct{}

func (NullEngine) Trigger(freq, durSec float64) {}
func (NullEngine) Pump()                        {}
func (NullEngine) Resume()                      {}
func (NullEngine) Ready() bool                  { return false }
func (NullEngine) Close()                       {}

// StreamEngine renders the mixer into a raylib audio stream.
type StreamEngine struct {
	mixer  *Mixer
	stream rl.AudioStream
	buf    []float32
	ready  bool
}

// NewStreamEngine opens the audio device and starts the output stream. A
// missing device is not fatal: the engine logs a warning, stays silent and
// can be revived later through Resume.
func NewStreamEngine(mixer *Mixer) *StreamEngine {
	e := &StreamEngine{
		mixer: mixer,
		buf:   make([]float32, streamBufferFrames),
	}
	e.Resume()
	return e
}

// Resume attempts to (re)initialize the device and stream. No-op once ready.
func (e *StreamEngine) Resume() {
	if e.ready {
		return
	}
	if !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
	}
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio device unavailable, continuing without sound")
		return
	}
	rl.SetAudioStreamBufferSizeDefault(streamBufferFrames)
	e.stream = rl.LoadAudioStream(uint32(e.mixer.SampleRate()), 32, 1)
	rl.PlayAudioStream(e.stream)
	e.ready = true
	slog.Info("audio stream started",
		"sample_rate", e.mixer.SampleRate(),
		"buffer_frames", streamBufferFrames)
}

// Trigger hands the tone to the mixer. Triggered tones accumulate even while
// the device is down, which keeps behavior identical either way; they simply
// never leave the mixer.
func (e *StreamEngine) Trigger(freq, durSec float64) {
	e.mixer.Trigger(freq, durSec)
}

// Pump refills the stream when the device has consumed the previous buffer.
func (e *StreamEngine) Pump() {
	if !e.ready {
		return
	}
	if rl.IsAudioStreamProcessed(e.stream) {
		e.mixer.Render(e.buf)
		rl.UpdateAudioStream(e.stream, e.buf)
	}
}

// Ready reports whether the stream is live.
func (e *StreamEngine) Ready() bool { return e.ready }

// Close stops the stream and releases the device.
func (e *StreamEngine) Close() {
	if e.ready {
		rl.StopAudioStream(e.stream)
		rl.UnloadAudioStream(e.stream)
		e.ready = false
	}
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
