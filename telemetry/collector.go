// Package telemetry accumulates gameplay events into fixed windows and
// writes the aggregated statistics to structured logs and CSV files.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	windowStartTick int64

	// Event counters for current window
	toggles int
	spills  int
	tones   int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordToggle records a cell activation or deactivation.
func (c *Collector) RecordToggle() {
	c.toggles++
}

// RecordSpill records one energy transfer between neighbors.
func (c *Collector) RecordSpill() {
	c.spills++
}

// RecordTones records n tones triggered by a transfer.
func (c *Collector) RecordTones(n int) {
	c.tones += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// activeCells and energies describe the lattice at window end.
func (c *Collector) Flush(currentTick int64, activeCells int, energies []float64) WindowStats {
	mean, std, p10, p50, p90 := ComputeEnergyStats(energies)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		ActiveCells: activeCells,

		Toggles: c.toggles,
		Spills:  c.spills,
		Tones:   c.tones,

		EnergyMean: mean,
		EnergyStd:  std,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,
	}

	c.windowStartTick = currentTick
	c.toggles = 0
	c.spills = 0
	c.tones = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
