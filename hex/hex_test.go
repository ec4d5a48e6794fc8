package hex

import (
	"math"
	"testing"
)

func TestLayout_Geometry(t *testing.T) {
	l := Layout{Radius: 30}

	if got := l.Width(); got != 60 {
		t.Errorf("expected width 60, got %f", got)
	}
	want := math.Sqrt(3) * 30
	if math.Abs(l.Height()-want) > 1e-9 {
		t.Errorf("expected height %f, got %f", want, l.Height())
	}
	if got := l.StrideX(); got != 45 {
		t.Errorf("expected x stride 45, got %f", got)
	}
}

func TestLayout_CenterOddRowOffset(t *testing.T) {
	l := Layout{Radius: 30}

	even := l.Center(0, 1)
	odd := l.Center(1, 1)

	// Odd rows shift right by half a stride.
	if math.Abs((odd.X-even.X)-l.StrideX()/2) > 1e-9 {
		t.Errorf("expected odd-row offset %f, got %f", l.StrideX()/2, odd.X-even.X)
	}
	if math.Abs(odd.Y-l.StrideY()) > 1e-9 {
		t.Errorf("expected row 1 at y=%f, got %f", l.StrideY(), odd.Y)
	}
}

func TestLayout_GridSizeCoversSurface(t *testing.T) {
	l := Layout{Radius: 30}
	rows, cols := l.GridSize(1024, 768)

	// Last row/col center must land at or beyond the surface edge.
	if float64(cols-1)*l.StrideX() < 1024 {
		t.Errorf("%d cols do not cover width 1024", cols)
	}
	if float64(rows-1)*l.StrideY() < 768 {
		t.Errorf("%d rows do not cover height 768", rows)
	}
}

func TestLayout_AdjacentDistanceUnderThreshold(t *testing.T) {
	l := Layout{Radius: 30}
	origin := l.Center(2, 2)

	// The six lattice neighbors of an interior cell.
	adjacent := []Vec2{
		l.Center(2, 1), l.Center(2, 3), // same row
		l.Center(1, 1), l.Center(1, 2), // row above (even row 2 -> offsets left)
		l.Center(3, 1), l.Center(3, 2), // row below
	}
	for i, c := range adjacent {
		if d := Dist(origin, c); d >= l.NeighborThreshold() {
			t.Errorf("adjacent cell %d at distance %f, threshold %f", i, d, l.NeighborThreshold())
		}
	}

	// Second ring must stay outside.
	ring2 := []Vec2{
		l.Center(2, 0), l.Center(2, 4),
		l.Center(0, 2), l.Center(4, 2),
		l.Center(1, 3), l.Center(3, 3),
	}
	for i, c := range ring2 {
		if d := Dist(origin, c); d < l.NeighborThreshold() {
			t.Errorf("ring-2 cell %d at distance %f inside threshold %f", i, d, l.NeighborThreshold())
		}
	}
}

func TestPointInHex_CenterAndOutside(t *testing.T) {
	l := Layout{Radius: 30}
	c := l.Center(3, 3)
	verts := l.Vertices(c)

	if !PointInHex(verts, c) {
		t.Error("center must be inside its own hexagon")
	}
	// With vertices offset -30 degrees the +x boundary is a vertical edge at
	// sqrt(3)/2*r ~ 0.866r.
	if !PointInHex(verts, Vec2{X: c.X + 0.8*l.Radius, Y: c.Y}) {
		t.Error("point at 0.8r along +x must be inside")
	}
	if PointInHex(verts, Vec2{X: c.X + 0.9*l.Radius, Y: c.Y}) {
		t.Error("point at 0.9r along +x must be outside")
	}
	// The +y boundary is the vertex at distance r.
	if !PointInHex(verts, Vec2{X: c.X, Y: c.Y + 0.95*l.Radius}) {
		t.Error("point at 0.95r along +y must be inside")
	}
	if PointInHex(verts, Vec2{X: c.X, Y: c.Y + 2*l.Radius}) {
		t.Error("point two radii below must be outside")
	}
}

func TestVertices_OnCircumcircle(t *testing.T) {
	l := Layout{Radius: 30}
	c := l.Center(1, 1)
	verts := l.Vertices(c)

	for i, v := range verts {
		if d := Dist(c, v); math.Abs(d-l.Radius) > 1e-9 {
			t.Errorf("vertex %d at distance %f, expected %f", i, d, l.Radius)
		}
	}

	// First vertex sits at -30 degrees.
	wantX := c.X + l.Radius*math.Cos(-30*math.Pi/180)
	wantY := c.Y + l.Radius*math.Sin(-30*math.Pi/180)
	if math.Abs(verts[0].X-wantX) > 1e-9 || math.Abs(verts[0].Y-wantY) > 1e-9 {
		t.Errorf("vertex 0 at (%f,%f), expected (%f,%f)", verts[0].X, verts[0].Y, wantX, wantY)
	}
}
