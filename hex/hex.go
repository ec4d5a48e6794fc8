// Package hex provides the honeycomb lattice geometry: cell placement,
// polygon vertices, point-in-hexagon hit testing and the distance threshold
// used for neighbor discovery. It is pure math with no rendering deps.
package hex

import "math"

// Vec2 is a 2D point in surface coordinates.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Layout describes the hex-offset lattice for a given circumradius.
// Odd rows are shifted half a stride to the right, producing the
// interlocking honeycomb pattern.
type Layout struct {
	Radius float64
}

// Width returns the full hexagon width (2r).
func (l Layout) Width() float64 { return 2 * l.Radius }

// Height returns the full hexagon height (sqrt(3)*r).
func (l Layout) Height() float64 { return math.Sqrt(3) * l.Radius }

// StrideX returns the horizontal distance between column centers.
func (l Layout) StrideX() float64 { return 0.75 * l.Width() }

// StrideY returns the vertical distance between row centers.
func (l Layout) StrideY() float64 { return 0.75 * l.Height() }

// GridSize returns the number of rows and columns needed to cover a surface
// of the given size, with one extra row and column of margin.
func (l Layout) GridSize(w, h float64) (rows, cols int) {
	cols = int(w/l.StrideX()) + 2
	rows = int(h/l.StrideY()) + 2
	return rows, cols
}

// Center returns the center of the cell at (row, col).
func (l Layout) Center(row, col int) Vec2 {
	x := float64(col)*l.StrideX() + float64(row%2)*l.StrideX()/2
	y := float64(row) * l.StrideY()
	return Vec2{X: x, Y: y}
}

// Vertices returns the six corners of the hexagon centered at c,
// 60 degrees apart starting at -30.
func (l Layout) Vertices(c Vec2) [6]Vec2 {
	var v [6]Vec2
	for i := 0; i < 6; i++ {
		a := (float64(i)*60 - 30) * math.Pi / 180
		v[i] = Vec2{
			X: c.X + l.Radius*math.Cos(a),
			Y: c.Y + l.Radius*math.Sin(a),
		}
	}
	return v
}

// NeighborThreshold is the center distance below which two cells count as
// neighbors. For this layout adjacent centers sit exactly 1.5r apart and the
// next ring starts around 2.6r, so 1.9r captures the six immediate neighbors
// and nothing else (fewer at grid boundaries).
func (l Layout) NeighborThreshold() float64 { return 1.9 * l.Radius }

// PointInHex reports whether p lies inside the polygon, using the standard
// ray-crossing rule over the six vertices.
func PointInHex(verts [6]Vec2, p Vec2) bool {
	inside := false
	j := 5
	for i := 0; i < 6; i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
