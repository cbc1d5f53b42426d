package asteroids

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Snapshot is the persisted game. Sizes are stored as table indices.
// Menus, pending points and the beat are not persisted.
type Snapshot struct {
	GameOver        bool              `json:"game_over" yaml:"game_over"`
	Player          *PlayerRecord     `json:"player" yaml:"player"`
	Fragment        *FragmentRecord   `json:"fragment" yaml:"fragment"`
	Asteroids       []AsteroidRecord  `json:"asteroids" yaml:"asteroids"`
	Saucer          *SaucerRecord     `json:"saucer" yaml:"saucer"`
	SaucerOnScreen  bool              `json:"saucer_on_screen" yaml:"saucer_on_screen"`
	SaucerFragments []FragmentRecord  `json:"saucer_fragments" yaml:"saucer_fragments"`
	Bullets         []BulletRecord    `json:"bullets" yaml:"bullets"`
	SaucerBullets   []BulletRecord    `json:"saucer_bullets" yaml:"saucer_bullets"`
	Explosions      []ExplosionRecord `json:"explosions" yaml:"explosions"`
	Score           int               `json:"score" yaml:"score"`
	HighScores      []HighScore       `json:"high_scores" yaml:"high_scores"`
	NewHighScore    bool              `json:"new_high_score" yaml:"new_high_score"`
	Lives           int               `json:"lives" yaml:"lives"`
	PlayingTicks    int               `json:"playing_ticks" yaml:"playing_ticks"`
}

type PlayerRecord struct {
	Body     core.Polygon `json:"body" yaml:"body"`
	Thrust   core.Polygon `json:"thrust" yaml:"thrust"`
	TurnRate float64      `json:"turning_angle" yaml:"turning_angle"`
	Velocity core.Vector  `json:"motion" yaml:"motion"`
	Ticks    int          `json:"ticks" yaml:"ticks"`
}

type LineRecord struct {
	Center       core.Vector          `json:"center" yaml:"center"`
	A            core.PolarCoordinate `json:"center_to_a" yaml:"center_to_a"`
	B            core.PolarCoordinate `json:"center_to_b" yaml:"center_to_b"`
	Velocity     core.Vector          `json:"motion" yaml:"motion"`
	Spin         float64              `json:"rotation" yaml:"rotation"`
	StrokeWeight int                  `json:"stroke_weight" yaml:"stroke_weight"`
}

type FragmentRecord struct {
	Lines []LineRecord `json:"lines" yaml:"lines"`
	Ticks int          `json:"ticks" yaml:"ticks"`
}

type AsteroidRecord struct {
	Size          int          `json:"size" yaml:"size"`
	Body          core.Polygon `json:"body" yaml:"body"`
	VelocityAngle float64      `json:"motion_angle" yaml:"motion_angle"`
	Velocity      core.Vector  `json:"motion" yaml:"motion"`
	Spin          float64      `json:"rotation" yaml:"rotation"`
	HitBy         int          `json:"hit_by" yaml:"hit_by"`
}

type SaucerRecord struct {
	Size     int          `json:"size" yaml:"size"`
	Body     core.Polygon `json:"body" yaml:"body"`
	Velocity core.Vector  `json:"motion" yaml:"motion"`
	Speed    float64      `json:"speed" yaml:"speed"`
	Steps    int          `json:"steps" yaml:"steps"`
	Ticks    int          `json:"ticks" yaml:"ticks"`
	HitBy    int          `json:"hit_by" yaml:"hit_by"`
}

// BulletRecord covers both bullet kinds; player bullets leave Lifetime zero.
type BulletRecord struct {
	Position core.Vector `json:"position" yaml:"position"`
	Velocity core.Vector `json:"motion" yaml:"motion"`
	Lifetime int         `json:"lifetime,omitempty" yaml:"lifetime,omitempty"`
	Ticks    int         `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

type ParticleRecord struct {
	Position core.Vector `json:"position" yaml:"position"`
	Velocity core.Vector `json:"motion" yaml:"motion"`
	Ticks    int         `json:"ticks" yaml:"ticks"`
	Lifetime int         `json:"lifetime" yaml:"lifetime"`
}

type ExplosionRecord struct {
	Particles []ParticleRecord `json:"particles" yaml:"particles"`
}

func fragmentRecord(f *Fragment) FragmentRecord {
	return FragmentRecord{
		Lines: lo.Map(f.Lines, func(l Line, _ int) LineRecord {
			return LineRecord(l)
		}),
		Ticks: f.Ticks,
	}
}

func (r FragmentRecord) fragment() *Fragment {
	return &Fragment{
		Lines: lo.Map(r.Lines, func(l LineRecord, _ int) Line {
			return Line(l)
		}),
		Ticks: r.Ticks,
	}
}

func bulletRecords(bs []Bullet) []BulletRecord {
	return lo.Map(bs, func(b Bullet, _ int) BulletRecord { return BulletRecord(b) })
}

func bullets(rs []BulletRecord) []Bullet {
	return lo.Map(rs, func(r BulletRecord, _ int) Bullet { return Bullet(r) })
}

// Snapshot captures the persisted part of the world.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	s := Snapshot{
		GameOver:       w.GameOver,
		SaucerOnScreen: w.SaucerOnScreen,
		Bullets:        bulletRecords(w.Bullets),
		SaucerBullets:  bulletRecords(w.SaucerBullets),
		Score:          w.Score,
		HighScores:     append([]HighScore(nil), w.HighScores...),
		NewHighScore:   w.NewHighScore,
		Lives:          w.Lives,
		PlayingTicks:   w.PlayingTicks,
	}
	if p := w.Player; p != nil {
		s.Player = &PlayerRecord{
			Body:     p.Body.Clone(),
			Thrust:   p.Thrust.Clone(),
			TurnRate: p.TurnRate,
			Velocity: p.Velocity,
			Ticks:    p.Ticks,
		}
	}
	if w.Fragment != nil {
		f := fragmentRecord(w.Fragment)
		s.Fragment = &f
	}
	s.Asteroids = lo.Map(w.Asteroids, func(a *Asteroid, _ int) AsteroidRecord {
		return AsteroidRecord{
			Size:          a.Size.Index,
			Body:          a.Body.Clone(),
			VelocityAngle: a.VelocityAngle,
			Velocity:      a.Velocity,
			Spin:          a.Spin,
			HitBy:         int(a.HitBy),
		}
	})
	if sc := w.Saucer; sc != nil {
		s.Saucer = &SaucerRecord{
			Size:     sc.Size.Index,
			Body:     sc.Body.Clone(),
			Velocity: sc.Velocity,
			Speed:    sc.Speed,
			Steps:    sc.Steps,
			Ticks:    sc.Ticks,
			HitBy:    int(sc.HitBy),
		}
	}
	s.SaucerFragments = lo.Map(w.SaucerFragments, func(f *Fragment, _ int) FragmentRecord {
		return fragmentRecord(f)
	})
	s.Explosions = lo.Map(w.Explosions, func(e *Explosion, _ int) ExplosionRecord {
		return ExplosionRecord{Particles: lo.Map(e.Particles, func(p Particle, _ int) ParticleRecord {
			return ParticleRecord(p)
		})}
	})
	return s
}

// ApplySnapshot replaces the world with s. On error the world is unchanged.
// A running game without a ship or wreck gets a fresh ship.
func (g *Game) ApplySnapshot(s Snapshot) error {
	w := emptyWorld(s.HighScores, g.table.Tier(s.PlayingTicks))
	w.GameOver = s.GameOver
	w.SaucerOnScreen = s.SaucerOnScreen
	w.Bullets = bullets(s.Bullets)
	w.SaucerBullets = bullets(s.SaucerBullets)
	w.Score = s.Score
	w.NewHighScore = s.NewHighScore
	w.Lives = s.Lives
	w.PlayingTicks = s.PlayingTicks
	w.Menu = g.world.Menu

	if p := s.Player; p != nil {
		w.Player = &Player{
			Body:     p.Body.Clone(),
			Thrust:   p.Thrust.Clone(),
			TurnRate: p.TurnRate,
			Velocity: p.Velocity,
			Ticks:    p.Ticks,
		}
	}
	if s.Fragment != nil {
		w.Fragment = s.Fragment.fragment()
	}
	for i, r := range s.Asteroids {
		size, err := asteroidSizeAt(r.Size)
		if err != nil {
			return fmt.Errorf("asteroid %d: %w", i, err)
		}
		w.Asteroids = append(w.Asteroids, &Asteroid{
			Size:          size,
			Body:          r.Body.Clone(),
			VelocityAngle: r.VelocityAngle,
			Velocity:      r.Velocity,
			Spin:          r.Spin,
			HitBy:         HitBy(r.HitBy),
		})
	}
	if r := s.Saucer; r != nil {
		size, err := saucerSizeAt(r.Size)
		if err != nil {
			return fmt.Errorf("saucer: %w", err)
		}
		w.Saucer = &Saucer{
			Size:     size,
			Body:     r.Body.Clone(),
			Velocity: r.Velocity,
			Speed:    r.Speed,
			Steps:    r.Steps,
			Ticks:    r.Ticks,
			HitBy:    HitBy(r.HitBy),
		}
	}
	w.SaucerFragments = lo.Map(s.SaucerFragments, func(r FragmentRecord, _ int) *Fragment {
		return r.fragment()
	})
	w.Explosions = lo.Map(s.Explosions, func(r ExplosionRecord, _ int) *Explosion {
		return &Explosion{Particles: lo.Map(r.Particles, func(p ParticleRecord, _ int) Particle {
			return Particle(p)
		})}
	})

	if !w.GameOver && w.Player == nil && w.Fragment == nil {
		w.Player = NewPlayer(g.center(), true, g.cfg.Player.InvincibilityTicks)
	}

	g.world = w
	if g.menus != nil {
		g.continueButton().Active = !w.GameOver
	}
	return nil
}
