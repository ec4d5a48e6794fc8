// Package sim holds the honeycomb simulation: per-cell energy state, the
// frame-rate independent charge/decay update and the periodic probabilistic
// spillage pass. The Sim is an explicit context object; a host loop (or a
// test) drives it with Advance and TickSpillage, so all timing is synthetic
// from the simulation's point of view.
package sim

import (
	"math"
	"math/rand"

	"github.com/ziemniaki/pszczulki/config"
	"github.com/ziemniaki/pszczulki/hex"
	"github.com/ziemniaki/pszczulki/tone"
)

// Cell is one hexagonal grid unit.
type Cell struct {
	Row, Col int
	X, Y     float64 // center in surface coordinates, fixed at construction

	Energy float64 // always clamped to [0, max]
	Active bool    // toggled by input only

	Palette   tone.Palette // fixed pitch identity, assigned at setup
	Verts     [6]hex.Vec2  // precomputed polygon, used for hit testing and drawing
	Neighbors []int        // indices of cells within the neighbor threshold
}

// Spill records one energy transfer. Cell is the receiving cell's index and
// Energy its level after the addition; sonification runs on the receiver.
type Spill struct {
	Cell   int
	Energy float64
}

// Sim owns the cell collection and all simulation parameters.
type Sim struct {
	cells  []Cell
	layout hex.Layout
	rng    *rand.Rand

	activeRate float64
	decayRate  float64
	maxEnergy  float64

	spillInterval    float64
	spillThreshold   float64
	spillAmount      float64
	spillProbability float64

	toneDuration float64

	spillAccum float64
	tick       int64
}

// New builds the honeycomb covering a width x height surface, assigns each
// cell its pitch palette and discovers neighbors by an all-pairs distance
// scan. The scan is O(n^2) but n stays in the low hundreds; bucketing by
// grid coordinates is the known upgrade if the lattice ever grows.
func New(width, height float64, cfg *config.Config, seed int64) *Sim {
	layout := hex.Layout{Radius: cfg.Grid.HexRadius}
	rng := rand.New(rand.NewSource(seed))

	s := &Sim{
		layout:           layout,
		rng:              rng,
		activeRate:       cfg.Energy.ActiveRate,
		decayRate:        cfg.Energy.DecayRate,
		maxEnergy:        cfg.Energy.Max,
		spillInterval:    cfg.Spillage.IntervalSec,
		spillThreshold:   cfg.Spillage.Threshold,
		spillAmount:      cfg.Spillage.Amount,
		spillProbability: cfg.Spillage.Probability,
		toneDuration:     cfg.Tone.DurationSec,
	}

	rows, cols := layout.GridSize(width, height)
	s.cells = make([]Cell, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := layout.Center(row, col)
			s.cells = append(s.cells, Cell{
				Row:     row,
				Col:     col,
				X:       c.X,
				Y:       c.Y,
				Palette: tone.NewPalette(rng, cfg.Tone.BaseFreq),
				Verts:   layout.Vertices(c),
			})
		}
	}

	thresh := layout.NeighborThreshold()
	for i := range s.cells {
		a := hex.Vec2{X: s.cells[i].X, Y: s.cells[i].Y}
		for j := range s.cells {
			if i == j {
				continue
			}
			b := hex.Vec2{X: s.cells[j].X, Y: s.cells[j].Y}
			if hex.Dist(a, b) < thresh {
				s.cells[i].Neighbors = append(s.cells[i].Neighbors, j)
			}
		}
	}

	return s
}

// Advance applies one frame of the energy state machine: active cells charge
// toward the ceiling, inactive cells decay toward zero. dt is wall-clock
// seconds since the previous frame.
func (s *Sim) Advance(dt float64) {
	for i := range s.cells {
		c := &s.cells[i]
		if c.Active {
			c.Energy = math.Min(s.maxEnergy, c.Energy+s.activeRate*dt)
		} else {
			c.Energy = math.Max(0, c.Energy-s.decayRate*dt)
		}
	}
	s.tick++
}

// CellAt returns the index of the cell whose hexagon contains (x, y), or -1.
// Linear scan, first match wins; adjacent polygons overlap by a sliver in
// this layout, so the lowest index claims contested edges deterministically.
func (s *Sim) CellAt(x, y float64) int {
	p := hex.Vec2{X: x, Y: y}
	for i := range s.cells {
		if hex.PointInHex(s.cells[i].Verts, p) {
			return i
		}
	}
	return -1
}

// Toggle flips a cell's active flag. The energy rules themselves never
// change Active.
func (s *Sim) Toggle(i int) {
	s.cells[i].Active = !s.cells[i].Active
}

// SelectTones draws the pitches a cell sounds at the given energy level:
// Count(energy) unique entries from its fixed palette.
func (s *Sim) SelectTones(i int, energy float64) []float64 {
	return tone.Select(s.rng, s.cells[i].Palette, energy)
}

// Reset zeroes all energy and deactivates every cell.
func (s *Sim) Reset() {
	for i := range s.cells {
		s.cells[i].Energy = 0
		s.cells[i].Active = false
	}
	s.spillAccum = 0
}

// Cells exposes the backing slice for read-mostly consumers (renderer,
// telemetry). Callers must not grow or reorder it.
func (s *Sim) Cells() []Cell { return s.cells }

// Cell returns a pointer to cell i.
func (s *Sim) Cell(i int) *Cell { return &s.cells[i] }

// Len returns the number of cells.
func (s *Sim) Len() int { return len(s.cells) }

// Tick returns the number of Advance calls so far.
func (s *Sim) Tick() int64 { return s.tick }

// MaxEnergy returns the energy ceiling.
func (s *Sim) MaxEnergy() float64 { return s.maxEnergy }

// ToneDuration returns the configured tone length in seconds.
func (s *Sim) ToneDuration() float64 { return s.toneDuration }

// ActiveCount returns how many cells are currently active.
func (s *Sim) ActiveCount() int {
	n := 0
	for i := range s.cells {
		if s.cells[i].Active {
			n++
		}
	}
	return n
}

// Energies appends every cell's energy to dst and returns it.
func (s *Sim) Energies(dst []float64) []float64 {
	for i := range s.cells {
		dst = append(dst, s.cells[i].Energy)
	}
	return dst
}

// SpillProbability returns the per-neighbor transfer chance.
func (s *Sim) SpillProbability() float64 { return s.spillProbability }

// SetSpillProbability adjusts the per-neighbor transfer chance, clamped to
// [0, 1].
func (s *Sim) SetSpillProbability(p float64) {
	s.spillProbability = math.Min(1, math.Max(0, p))
}
