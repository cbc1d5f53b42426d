package asteroids

import (
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// BulletKind distinguishes player shots from saucer shots.
type BulletKind int

const (
	PlayerBullet BulletKind = iota
	SaucerBullet
)

// Bullet is a projectile. Saucer bullets have a positive Lifetime and expire
// after that many ticks; player bullets only expire off screen.
type Bullet struct {
	Position core.Vector
	Velocity core.Vector
	Lifetime int
	Ticks    int
}

// Kind reports who fired the bullet.
func (b Bullet) Kind() BulletKind {
	if b.Lifetime > 0 {
		return SaucerBullet
	}
	return PlayerBullet
}

// Update moves the bullet one tick.
func (b *Bullet) Update() {
	b.Position = b.Position.Add(b.Velocity)
	if b.Kind() == SaucerBullet {
		b.Ticks++
	}
}

// Expired reports whether the bullet should be removed. A bullet is removed
// once it is strictly more than margin outside the w x h area.
func (b Bullet) Expired(w, h, margin float64) bool {
	p := b.Position
	if p.X < -margin || p.X > w+margin || p.Y < -margin || p.Y > h+margin {
		return true
	}
	return b.Kind() == SaucerBullet && b.Ticks >= b.Lifetime
}

// consumeHit removes the first bullet inside body.
// It reports whether one was found.
func consumeHit(body core.Polygon, bullets []Bullet) ([]Bullet, bool) {
	for i, b := range bullets {
		if body.Contains(b.Position) {
			return slices.Delete(bullets, i, i+1), true
		}
	}
	return bullets, false
}
