package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	bgTop    = rl.Color{R: 20, G: 15, B: 8, A: 255}
	bgBottom = rl.Color{R: 6, G: 4, B: 2, A: 255}

	cellDim    = rl.Color{R: 46, G: 36, B: 18, A: 255}
	cellBright = rl.Color{R: 255, G: 248, B: 230, A: 255}
	glowColor  = rl.Color{R: 255, G: 190, B: 80, A: 255}
	activeRim  = rl.Color{R: 255, G: 240, B: 200, A: 255}
)

// lerpColor interpolates between two colors, t in [0, 1].
func lerpColor(a, b rl.Color, t float64) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rl.Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// energyColor maps an energy fraction to the cell fill color.
func energyColor(frac float64) rl.Color {
	return lerpColor(cellDim, cellBright, frac)
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	w := int32(g.cfg.Screen.Width)
	h := int32(g.cfg.Screen.Height)
	rl.DrawRectangleGradientV(0, 0, w, h, bgTop, bgBottom)

	radius := float32(g.cfg.Grid.HexRadius)
	maxEnergy := g.sim.MaxEnergy()
	for i := range g.sim.Cells() {
		c := g.sim.Cell(i)
		frac := c.Energy / maxEnergy
		center := rl.Vector2{X: float32(c.X), Y: float32(c.Y)}

		// Two widening translucent layers under the body read as glow.
		if frac > 0 {
			rl.DrawPoly(center, 6, radius*1.25, -30, rl.Fade(glowColor, float32(0.20*frac)))
			rl.DrawPoly(center, 6, radius*1.05, -30, rl.Fade(glowColor, float32(0.40*frac)))
		}

		// Body slightly inset so the lattice shows seams.
		rl.DrawPoly(center, 6, radius*0.92, -30, energyColor(frac))

		if c.Active {
			rl.DrawPolyLinesEx(center, 6, radius*0.92, -30, 2, activeRim)
		}
	}

	g.drawHUD()
	if g.showPanel {
		g.drawPanel()
	}

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	x, y := int32(10), int32(10)
	y = g.ui.DrawLabelValue(x, y, "tick", fmt.Sprintf("%d", g.sim.Tick()))
	y = g.ui.DrawLabelValue(x, y, "active", fmt.Sprintf("%d", g.sim.ActiveCount()))
	y = g.ui.DrawLabelValue(x, y, "voices", fmt.Sprintf("%d", g.mixer.ActiveVoices()))
	y = g.ui.DrawLabelValue(x, y, "fps", fmt.Sprintf("%d", rl.GetFPS()))

	state := "playing"
	if g.paused {
		state = "paused"
	}
	y = g.ui.DrawLabelValue(x, y, "state", state)

	sound := "on"
	if g.muted || !g.engine.Ready() {
		sound = "off"
	}
	y = g.ui.DrawLabelValue(x, y, "sound", sound)

	rl.DrawText("click: toggle cell  space: pause  m: mute  r: reset  tab: panel",
		x, y+6, 10, rl.Gray)
}

// panelRect is the settings panel bounds, used for drawing and for shielding
// clicks from the lattice underneath.
func (g *Game) panelRect() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(g.cfg.Screen.Width) - 280,
		Y:      10,
		Width:  270,
		Height: 150,
	}
}

func (g *Game) drawPanel() {
	r := g.panelRect()
	g.ui.DrawPanel(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))

	x := r.X + 10
	y := float32(g.ui.DrawSectionHeader(int32(x), int32(r.Y)+10, "Controls"))

	rl.DrawText("volume", int32(x), int32(y), 12, rl.LightGray)
	y += 16
	master := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: r.Width - 80, Height: 18},
		"0", "1",
		float32(g.mixer.Master()), 0, 1,
	)
	g.mixer.SetMaster(float64(master))
	rl.DrawText(fmt.Sprintf("%.2f", master), int32(x+r.Width-60), int32(y+2), 12, rl.LightGray)
	y += 28

	rl.DrawText("spill chance", int32(x), int32(y), 12, rl.LightGray)
	y += 16
	prob := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: r.Width - 80, Height: 18},
		"0", "1",
		float32(g.sim.SpillProbability()), 0, 1,
	)
	g.sim.SetSpillProbability(float64(prob))
	rl.DrawText(fmt.Sprintf("%.2f", prob), int32(x+r.Width-60), int32(y+2), 12, rl.LightGray)
	y += 28

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 26}, "Reset") {
		g.sim.Reset()
	}
}
