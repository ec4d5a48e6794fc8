// Package tone maps cell energy to synthesizable pitches. Each cell is
// assigned a fixed palette drawn from a just-intonation scale at setup;
// energy transfer events select a subset of that palette sized by the
// cell's energy band.
package tone

import (
	"math"
	"math/rand"
)

// Ratios is the just-intonation scale palettes draw from, relative to the
// base frequency.
var Ratios = [7]float64{1, 9.0 / 8, 5.0 / 4, 45.0 / 32, 3.0 / 2, 5.0 / 3, 15.0 / 8}

const (
	// PaletteSize is the number of candidate pitches per cell.
	PaletteSize = 6

	// OctaveRange is the number of octave slots a palette entry can land in.
	// Slot 3 reproduces the base frequency unscaled.
	OctaveRange  = 8
	octaveCenter = 3
)

// Palette is a cell's fixed, ordered set of candidate pitches in Hz.
// Assigned once at setup and never mutated.
type Palette [PaletteSize]float64

// SampleWithoutReplacement returns n elements of pool chosen uniformly
// without repeats. The pool is left untouched and the selection is
// deterministic for a given rng state.
func SampleWithoutReplacement(rng *rand.Rand, pool []float64, n int) []float64 {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	idx := rng.Perm(len(pool))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

// NewPalette assigns a cell its pitch identity: six unique scale ratios,
// each transposed by a uniform-random octave around the base frequency.
// The ratios all fall in [1,2), so distinct ratios stay distinct after
// octave transposition.
func NewPalette(rng *rand.Rand, baseFreq float64) Palette {
	picks := SampleWithoutReplacement(rng, Ratios[:], PaletteSize)
	var p Palette
	for i, ratio := range picks {
		oct := rng.Intn(OctaveRange)
		p[i] = baseFreq * ratio * math.Pow(2, float64(oct-octaveCenter))
	}
	return p
}

// Count returns how many tones an energy level triggers. Energy below 10 is
// silent; exactly 100 (the clamp ceiling) fills the whole palette.
func Count(energy float64) int {
	switch {
	case energy < 10:
		return 0
	case energy < 50:
		return 3
	case energy < 90:
		return 4
	case energy < 100:
		return 5
	default:
		return 6
	}
}

// Select picks Count(energy) unique pitches from the palette.
func Select(rng *rand.Rand, p Palette, energy float64) []float64 {
	n := Count(energy)
	if n == 0 {
		return nil
	}
	return SampleWithoutReplacement(rng, p[:], n)
}
