package asteroids

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// update runs one simulation tick. It also runs behind the game-over menu,
// so the field keeps moving while the player decides what to do.
func (g *Game) update() {
	w := g.world
	cfg := g.cfg
	inv := cfg.Player.InvincibilityTicks

	g.updateSaucer()

	for _, f := range w.SaucerFragments {
		f.Update(cfg.Player.Friction)
	}
	for i := range w.Bullets {
		w.Bullets[i].Update()
	}
	for i := range w.SaucerBullets {
		w.SaucerBullets[i].Update()
	}
	for _, e := range w.Explosions {
		e.Update()
	}

	// Rocks, and what shot them. The first bullet found wins.
	var splits []*Asteroid
	for _, a := range w.Asteroids {
		a.Update()
		var hit bool
		w.SaucerBullets, hit = a.CheckHit(w.SaucerBullets, HitSaucer)
		if !hit {
			w.Bullets, _ = a.CheckHit(w.Bullets, HitPlayer)
		}
		if a.HitBy == HitNone {
			continue
		}
		if a.HitBy == HitPlayer {
			g.award(a.Size.Points)
		}
		if w.Playing() {
			g.sound.Play(audio.Bangs[a.Size.Index], false)
		}
		splits = g.shatter(a, splits)
	}

	// The ship, or its wreck.
	if p := w.Player; p != nil {
		p.Update(g.controls, cfg.Player, cfg.World)
		if w.FireRequested {
			w.Bullets = append(w.Bullets, Bullet{
				Position: p.Nose(),
				Velocity: core.Polar(p.Heading(), cfg.Bullets.Speed).Cartesian(),
			})
			g.sound.Play(audio.Fire, false)
		}
	} else if f := w.Fragment; f != nil {
		f.Update(cfg.Player.Friction)
		if w.Playing() && f.Ticks >= cfg.Player.RespawnTicks {
			w.Player = NewPlayer(g.center(), true, inv)
			w.Fragment = nil
			if g.controls.Thrust {
				g.sound.Play(audio.Thrust, true)
			}
		}
	}
	w.FireRequested = false

	splits = g.saucerCollisions(splits)

	if p := w.Player; p != nil && !p.Invincible(inv) {
		if a := g.rockHitting(p); a != nil {
			g.playerDie()
			a.HitBy = HitSaucer // no points for ramming
			g.sound.Play(audio.Bangs[a.Size.Index], false)
			splits = g.shatter(a, splits)
		} else {
			for _, b := range w.SaucerBullets {
				if p.Body.Contains(b.Position) {
					g.playerDie()
					g.sound.Play(audio.BangMedium, false)
					break
				}
			}
		}
	}

	w.Asteroids = append(w.Asteroids, splits...)

	if g.rng.Float64() < w.Tier.SpawnChance {
		w.Asteroids = append(w.Asteroids, SpawnAsteroid(g.rng, g.center(), g.spawnDistance))
	}

	g.compact()

	if w.Playing() {
		if w.Pending > 0 {
			if w.TicksSinceScore == cfg.Scoring.FlushTicks {
				w.bank()
				w.TicksSinceScore = 0
			}
			w.TicksSinceScore++
		}
		g.beat()
		w.PlayingTicks++
		w.Tier = g.table.Tier(w.PlayingTicks)
	}
}

// shatter queues the children of a and leaves an explosion where it was.
func (g *Game) shatter(a *Asteroid, splits []*Asteroid) []*Asteroid {
	g.world.Explosions = append(g.world.Explosions, NewExplosion(g.rng, a.Body.Center, a.Velocity))
	return append(splits, a.Split(g.rng)...)
}

// rockHitting returns the first intact asteroid touching the ship.
func (g *Game) rockHitting(p *Player) *Asteroid {
	for _, a := range g.world.Asteroids {
		if a.HitBy == HitNone && p.Body.CollidesWith(a.Body) {
			return a
		}
	}
	return nil
}

// updateSaucer spawns, moves and despawns the saucer. Its engine loop plays
// while it is on screen during play.
func (g *Game) updateSaucer() {
	w := g.world
	if w.Saucer == nil {
		if g.rng.Float64() < w.Tier.SpawnChance/g.cfg.Saucer.SpawnDivisor {
			w.Saucer = SpawnSaucer(g.rng, g.cfg.Saucer, g.cfg.World)
		}
		return
	}

	s := w.Saucer
	s.Update(g.rng, g.cfg.Saucer)
	onScreen := s.OnScreen(g.cfg.World)
	switch {
	case w.SaucerOnScreen && !onScreen:
		g.sound.Stop(audio.Saucers[s.Size.Index])
		w.Saucer = nil
	case !w.SaucerOnScreen && onScreen && w.Playing():
		g.sound.Play(audio.Saucers[s.Size.Index], true)
	}
	w.SaucerOnScreen = onScreen
}

// saucerCollisions resolves the saucer against rocks, bullets and the ship,
// then lets a surviving saucer shoot.
func (g *Game) saucerCollisions(splits []*Asteroid) []*Asteroid {
	w := g.world
	if s := w.Saucer; s != nil {
		for _, a := range w.Asteroids {
			if a.HitBy == HitNone && s.Body.CollidesWith(a.Body) {
				g.saucerDie()
				a.HitBy = HitSaucer
				splits = g.shatter(a, splits)
				break
			}
		}
	}

	if s := w.Saucer; s != nil {
		var hit bool
		w.Bullets, hit = s.CheckHit(w.Bullets, HitPlayer)
		if !hit {
			w.SaucerBullets, _ = s.CheckHit(w.SaucerBullets, HitSaucer)
		}
		if s.HitBy != HitNone {
			if s.HitBy == HitPlayer {
				g.award(s.Size.Points)
			}
			g.saucerDie()
		}
	}

	s := w.Saucer
	if s == nil {
		return splits
	}
	if p := w.Player; p != nil && !p.Invincible(g.cfg.Player.InvincibilityTicks) && p.Body.CollidesWith(s.Body) {
		g.playerDie()
		g.saucerDie()
	} else if g.rng.Float64() < s.Size.ShootChance/float64(g.fps()) {
		var target *core.Vector
		if p != nil {
			c := p.Body.Center
			target = &c
		}
		w.SaucerBullets = append(w.SaucerBullets, s.Fire(g.rng, target, g.cfg.Bullets.Speed, g.fps()))
		if w.Playing() {
			g.sound.Play(audio.Fire, false)
		}
	}
	return splits
}

// compact drops everything that died or left the field this tick.
func (g *Game) compact() {
	w := g.world
	cfg := g.cfg
	center := g.center()
	width, height, margin := cfg.World.Width, cfg.World.Height, cfg.Bullets.OffscreenMargin

	w.Asteroids = lo.Filter(w.Asteroids, func(a *Asteroid, _ int) bool {
		return a.HitBy == HitNone && !a.OutOfRange(center, g.despawnDistance)
	})
	w.Bullets = lo.Filter(w.Bullets, func(b Bullet, _ int) bool {
		return !b.Expired(width, height, margin)
	})
	w.SaucerBullets = lo.Filter(w.SaucerBullets, func(b Bullet, _ int) bool {
		return !b.Expired(width, height, margin)
	})
	w.Explosions = lo.Filter(w.Explosions, func(e *Explosion, _ int) bool {
		return !e.Done()
	})
	w.SaucerFragments = lo.Filter(w.SaucerFragments, func(f *Fragment, _ int) bool {
		return !f.Expired(cfg.Player.FragmentTicks)
	})
}

// beat plays the two-note heartbeat. It speeds up over the first part of a
// game and then holds its fastest tempo.
func (g *Game) beat() {
	w := g.world
	sc := g.cfg.Scoring
	fps := float64(g.fps())
	floor := float64(sc.BeatFloorTicks)

	interval := floor
	if sc.BeatRampTicks > 0 && w.PlayingTicks <= sc.BeatRampTicks {
		interval = fps - (fps-floor)/float64(sc.BeatRampTicks)*float64(w.PlayingTicks)
	}
	if float64(w.PlayingTicks-w.lastBeatTick) < interval {
		return
	}
	if w.playBeat1 {
		g.sound.Play(audio.Beat1, false)
	} else {
		g.sound.Play(audio.Beat2, false)
	}
	w.playBeat1 = !w.playBeat1
	w.lastBeatTick = w.PlayingTicks
}
