package sim

import "math"

// TickSpillage advances the spill accumulator by dt and resolves one
// spillage pass for every full interval elapsed. A large dt (dropped frames,
// headless fast-forward) can fire several passes; events come back in order.
func (s *Sim) TickSpillage(dt float64) []Spill {
	s.spillAccum += dt
	var events []Spill
	for s.spillAccum >= s.spillInterval {
		s.spillAccum -= s.spillInterval
		events = append(events, s.ResolveSpillage()...)
	}
	return events
}

// ResolveSpillage runs one probabilistic transfer pass over the lattice.
//
// A cell at or above the spill threshold offers each neighbor one chance
// (spillProbability each). A transfer also requires the source to still hold
// a full spill amount at the moment of that neighbor's check, so neighbors
// earlier in the scan can exhaust the source within a pass: first come,
// first served, in ascending cell index order.
func (s *Sim) ResolveSpillage() []Spill {
	var events []Spill
	for i := range s.cells {
		src := &s.cells[i]
		if src.Energy < s.spillThreshold {
			continue
		}
		for _, ni := range src.Neighbors {
			if s.rng.Float64() >= s.spillProbability {
				continue
			}
			if src.Energy < s.spillAmount {
				continue
			}
			dst := &s.cells[ni]
			src.Energy -= s.spillAmount
			dst.Energy = math.Min(s.maxEnergy, dst.Energy+s.spillAmount)
			events = append(events, Spill{Cell: ni, Energy: dst.Energy})
		}
	}
	return events
}
