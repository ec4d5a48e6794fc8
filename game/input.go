package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes mouse and keyboard input for one frame.
func (g *Game) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		// Some hosts have no audio device until after startup; retry once on
		// the first gesture.
		if !g.resumed {
			g.engine.Resume()
			g.resumed = true
		}

		mp := rl.GetMousePosition()
		if !(g.showPanel && rl.CheckCollisionPointRec(mp, g.panelRect())) {
			if idx := g.sim.CellAt(float64(mp.X), float64(mp.Y)); idx >= 0 {
				g.sim.Toggle(idx)
				g.collector.RecordToggle()
				g.playCell(idx, g.sim.Cell(idx).Energy)
			}
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyM) {
		g.muted = !g.muted
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}
}
