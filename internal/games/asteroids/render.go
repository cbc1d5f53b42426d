package asteroids

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HUD layout in world units.
const (
	hudX          = 15
	hudScoreY     = 15
	hudHighY      = 58
	hudLivesY     = 90
	hudLifeStep   = 22
	hudLifeWidth  = 20
	scoreGlyphW   = 20 // approximate advance of the score face
	particleSize  = 2
	lifeGlyph     = "▲"
	pauseLivesTop = menuTextY
)

// Render draws the world, the HUD and the open menu.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	w := g.world
	menu := g.menus.get(w.Menu)

	if menu == nil || menu.Transparent {
		g.renderWorld(dst)
	}
	if menu == nil {
		g.renderHUD(dst)
		return
	}
	g.renderMenu(dst, menu)
	if menu.ID == MenuPause {
		left := (g.cfg.World.Width - float64(hudLifeWidth*w.Lives+2*(w.Lives-1))) / 2
		for i := range w.Lives {
			pos := core.Vec(left+float64(i*hudLifeStep), pauseLivesTop)
			dst.DrawText(pos, lifeGlyph, core.TextStyle{Size: core.FontText, Color: core.ColorWhite})
		}
	}
}

func drawPolygon(dst core.Canvas, p core.Polygon, c core.Color) {
	if !p.Visible {
		return
	}
	pts := p.Points()
	for i := range pts {
		dst.DrawLine(pts[i], pts[(i+1)%len(pts)], p.StrokeWeight, c)
	}
}

func drawFragment(dst core.Canvas, f *Fragment) {
	for _, l := range f.Lines {
		a, b := l.Ends()
		dst.DrawLine(a, b, l.StrokeWeight, core.ColorWhite)
	}
}

func (g *Game) renderWorld(dst core.Canvas) {
	w := g.world
	fps := g.fps()

	if p := w.Player; p != nil {
		if p.Visible(g.cfg.Player.InvincibilityTicks, fps) {
			drawPolygon(dst, p.Body, core.ColorWhite)
			if p.FlameVisible(fps) {
				drawPolygon(dst, p.Thrust, core.ColorOrange)
			}
		}
	} else if w.Fragment != nil {
		drawFragment(dst, w.Fragment)
	}

	for _, a := range w.Asteroids {
		drawPolygon(dst, a.Body, core.ColorWhite)
	}
	for _, b := range w.Bullets {
		dst.DrawCircle(b.Position, g.cfg.Bullets.Radius, core.ColorWhite)
	}
	for _, b := range w.SaucerBullets {
		dst.DrawCircle(b.Position, g.cfg.Bullets.Radius, core.ColorRed)
	}
	for _, e := range w.Explosions {
		for _, p := range e.Particles {
			if p.Alive() {
				dst.DrawCircle(p.Position, particleSize, core.ColorWhite)
			}
		}
	}
	for _, f := range w.SaucerFragments {
		drawFragment(dst, f)
	}
	if s := w.Saucer; s != nil {
		drawPolygon(dst, s.Body, core.ColorWhite)
		for _, l := range s.CrossLines() {
			dst.DrawLine(l[0], l[1], s.Size.Stroke, core.ColorWhite)
		}
	}
}

func (g *Game) renderHUD(dst core.Canvas) {
	w := g.world
	score := strconv.Itoa(w.Score)
	dst.DrawText(core.Vec(hudX, hudScoreY), score, core.TextStyle{Size: core.FontScore, Color: core.ColorWhite})
	if w.Pending > 0 {
		x := float64(hudX + len(score)*scoreGlyphW)
		dst.DrawText(core.Vec(x, hudScoreY), fmt.Sprintf("+%d", w.Pending),
			core.TextStyle{Size: core.FontScore, Color: core.ColorGreen})
	}

	high := core.TextStyle{Size: core.FontHighScore, Color: core.ColorWhite}
	best := w.Score + w.Pending
	if w.NewHighScore {
		high.Color = core.ColorOrange
	} else if len(w.HighScores) > 0 {
		best = TopScore(w.HighScores)
	}
	dst.DrawText(core.Vec(hudX, hudHighY), strconv.Itoa(best), high)

	for i := range w.Lives {
		dst.DrawText(core.Vec(float64(hudX+i*hudLifeStep), hudLivesY), lifeGlyph,
			core.TextStyle{Size: core.FontText, Color: core.ColorWhite})
	}
}

func (g *Game) renderMenu(dst core.Canvas, m *Menu) {
	width := g.cfg.World.Width
	if !m.Transparent {
		dst.FillRect(0, 0, width, g.cfg.World.Height, core.ColorDefault)
	}
	mid := width / 2

	dst.DrawText(core.Vec(mid, menuTitleY), m.Title,
		core.TextStyle{Size: core.FontTitle, Color: core.ColorWhite, Align: core.AlignCenter})
	for i, line := range m.TextLines() {
		dst.DrawText(core.Vec(mid, float64(menuTextY+i*menuTextLineH)), line,
			core.TextStyle{Size: core.FontText, Color: core.ColorWhite, Align: core.AlignCenter})
	}
	for i, b := range m.Buttons {
		label := b.Label
		if b.Selected {
			label = "> " + label + " <"
		}
		style := core.TextStyle{Size: core.FontButton, Color: core.ColorWhite, Align: core.AlignCenter}
		if !b.Active {
			style.Color = core.ColorGray
		}
		dst.DrawText(core.Vec(mid, m.ButtonY(i)), label, style)
	}
}
