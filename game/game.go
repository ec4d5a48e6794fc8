// Package game owns the top-level loop: it drives the simulation, routes
// input, forwards transfer events to the sonifier and draws the lattice.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ziemniaki/pszczulki/audio"
	"github.com/ziemniaki/pszczulki/config"
	"github.com/ziemniaki/pszczulki/sim"
	"github.com/ziemniaki/pszczulki/telemetry"
	"github.com/ziemniaki/pszczulki/ui"
)

// DT is the fixed simulation step in seconds per tick.
const DT = 1.0 / 60.0

// Options configures a game session.
type Options struct {
	Seed           int64
	Headless       bool
	Mute           bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete session state.
type Game struct {
	cfg *config.Config
	sim *sim.Sim

	mixer  *audio.Mixer
	engine audio.Engine

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	ui *ui.Renderer

	opts      Options
	paused    bool
	muted     bool
	showPanel bool
	resumed   bool // audio retry happened on the first gesture

	energyBuf []float64
}

// NewGameWithOptions builds a session from the loaded configuration. Audio
// and telemetry output failures degrade to a working silent/unrecorded
// session rather than aborting.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		cfg:   cfg,
		sim:   sim.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg, opts.Seed),
		mixer: audio.NewMixer(cfg),
		ui:    ui.NewRenderer(),
		opts:  opts,
		muted: opts.Mute,
	}

	if opts.Headless || opts.Mute {
		g.engine = audio.NullEngine{}
	} else {
		g.engine = audio.NewStreamEngine(g.mixer)
	}

	g.collector = telemetry.NewCollector(opts.StatsWindowSec, DT)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
	}

	slog.Info("session created",
		"cells", g.sim.Len(),
		"seed", opts.Seed,
		"headless", opts.Headless,
		"audio", g.engine.Ready(),
	)

	return g
}

// Update runs one graphical frame: input, simulation step, audio pump. The
// step uses the real frame delta so behavior is frame-rate independent.
func (g *Game) Update() {
	g.handleInput()
	if !g.paused {
		g.step(float64(rl.GetFrameTime()))
	}
	g.engine.Pump()
}

// UpdateHeadless runs one simulation tick without any raylib calls.
func (g *Game) UpdateHeadless() {
	g.step(DT)
}

// step advances the energy model, resolves due spillage passes and sonifies
// the resulting transfers.
func (g *Game) step(dt float64) {
	g.sim.Advance(dt)

	for _, sp := range g.sim.TickSpillage(dt) {
		g.collector.RecordSpill()
		g.playCell(sp.Cell, sp.Energy)
	}

	g.flushStats()
}

// playCell triggers the cell's energy-banded tone selection.
func (g *Game) playCell(i int, energy float64) {
	if g.muted {
		return
	}
	freqs := g.sim.SelectTones(i, energy)
	for _, f := range freqs {
		g.engine.Trigger(f, g.sim.ToneDuration())
	}
	g.collector.RecordTones(len(freqs))
}

// flushStats emits a telemetry window when due.
func (g *Game) flushStats() {
	if !g.collector.ShouldFlush(g.sim.Tick()) {
		return
	}

	g.energyBuf = g.sim.Energies(g.energyBuf[:0])
	stats := g.collector.Flush(g.sim.Tick(), g.sim.ActiveCount(), g.energyBuf)

	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// Tick returns the simulation tick counter.
func (g *Game) Tick() int64 {
	return g.sim.Tick()
}

// Sim exposes the simulation for inspection.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Unload releases audio and telemetry resources.
func (g *Game) Unload() {
	g.engine.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
