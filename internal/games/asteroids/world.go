package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/config"

// World is the complete mutable state of one game.
type World struct {
	GameOver        bool
	Player          *Player
	Fragment        *Fragment // wreck of the ship while waiting to respawn
	Asteroids       []*Asteroid
	Saucer          *Saucer
	SaucerOnScreen  bool
	SaucerFragments []*Fragment
	FireRequested   bool
	Bullets         []Bullet
	SaucerBullets   []Bullet
	Explosions      []*Explosion

	Score           int // banked score
	Pending         int // points shown as "+N" until banked
	TicksSinceScore int
	HighScores      []HighScore
	NewHighScore    bool
	Lives           int
	PlayingTicks    int
	Tier            config.Tier

	Menu MenuID

	lastBeatTick int
	playBeat1    bool
}

// emptyWorld returns the state of a game that is over and cleared.
// High scores are carried over.
func emptyWorld(highScores []HighScore, tier config.Tier) *World {
	return &World{
		GameOver:   true,
		HighScores: highScores,
		Tier:       tier,
		playBeat1:  true,
	}
}

// bank moves pending points into the score.
func (w *World) bank() {
	if w.Pending > 0 {
		w.Score += w.Pending
		w.Pending = 0
	}
}

// Playing reports whether no menu is open.
func (w *World) Playing() bool {
	return w.Menu == MenuNone
}
