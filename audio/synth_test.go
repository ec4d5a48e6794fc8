package audio

import (
	"math"
	"testing"

	"github.com/ziemniaki/pszczulki/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func TestEnvelope_Shape(t *testing.T) {
	v := voice{freq: 220, dur: 0.5}
	attack := 0.01

	cases := []struct {
		age  float64
		want float64
	}{
		{0, 0},
		{0.005, 0.5}, // halfway up the attack ramp
		{0.01, 1},    // attack peak
		{0.255, 0.5}, // halfway down the release
		{0.5, 0},
		{1.0, 0}, // stays silent past the end
	}
	for _, c := range cases {
		v.age = c.age
		if got := v.envelope(attack); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("envelope at age %v = %f, want %f", c.age, got, c.want)
		}
	}
}

func TestMixer_SilentWithNoVoices(t *testing.T) {
	m := NewMixer(testConfig(t))
	buf := make([]float32, 512)
	buf[0] = 42 // must be overwritten

	m.Render(buf)

	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %f, want silence", i, s)
		}
	}
}

func TestMixer_MasterScalesOutput(t *testing.T) {
	cfg := testConfig(t)

	full := NewMixer(cfg)
	full.SetMaster(1)
	half := NewMixer(cfg)
	half.SetMaster(0.5)

	full.Trigger(220, 0.5)
	half.Trigger(220, 0.5)

	a := make([]float32, 2048)
	b := make([]float32, 2048)
	full.Render(a)
	half.Render(b)

	for i := range a {
		if math.Abs(float64(b[i])-0.5*float64(a[i])) > 1e-6 {
			t.Fatalf("sample %d: half-master %f vs full %f", i, b[i], a[i])
		}
	}
}

func TestMixer_VoicesExpire(t *testing.T) {
	cfg := testConfig(t)
	m := NewMixer(cfg)

	m.Trigger(440, 0.01)
	if m.ActiveVoices() != 1 {
		t.Fatalf("expected 1 voice, got %d", m.ActiveVoices())
	}

	// One second of audio, far past the 10ms tone.
	m.Render(make([]float32, cfg.Audio.SampleRate))

	if m.ActiveVoices() != 0 {
		t.Errorf("expected expired voice to be retired, got %d", m.ActiveVoices())
	}
}

func TestMixer_PolyphonyCapStealsOldest(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audio.MaxVoices = 2
	m := NewMixer(cfg)

	buf := make([]float32, 64)
	m.Trigger(100, 10)
	m.Render(buf) // age the first voice
	m.Trigger(200, 10)
	m.Render(buf)
	m.Trigger(300, 10)

	if m.ActiveVoices() != 2 {
		t.Fatalf("expected cap of 2 voices, got %d", m.ActiveVoices())
	}
	for _, v := range m.voices {
		if v.freq == 100 {
			t.Error("oldest voice survived past the polyphony cap")
		}
	}
}

func TestMixer_OutputStaysInRange(t *testing.T) {
	cfg := testConfig(t)
	m := NewMixer(cfg)
	m.SetMaster(1)

	for i := 0; i < cfg.Audio.MaxVoices; i++ {
		m.Trigger(100+float64(i)*50, 0.5)
	}

	buf := make([]float32, 8192)
	m.Render(buf)

	for i, s := range buf {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d = %f outside [-1, 1]", i, s)
		}
	}
}

func TestMixer_SetMasterClamped(t *testing.T) {
	m := NewMixer(testConfig(t))

	m.SetMaster(3)
	if m.Master() != 1 {
		t.Errorf("expected clamp to 1, got %f", m.Master())
	}
	m.SetMaster(-1)
	if m.Master() != 0 {
		t.Errorf("expected clamp to 0, got %f", m.Master())
	}
}
