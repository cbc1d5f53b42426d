package asteroids

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func openSave(t *testing.T, name string) *storage.SnapshotFile {
	t.Helper()
	f, err := storage.OpenSnapshot(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// busyGame plays long enough to fill every part of the world.
func busyGame(t *testing.T, f *storage.SnapshotFile) *Game {
	t.Helper()
	g, _ := newTestGame(t, config.DefaultAsteroidsConfig(), WithSnapshot(f))
	g.NewGame()
	w := g.World()
	w.HighScores = []HighScore{{Score: 900, Timestamp: 1700000000}}

	in := core.NewInputFrame()
	for i := range 240 {
		in.Clear()
		if i%10 == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(in)
	}

	size := SaucerSizes[1]
	w = g.World()
	w.Saucer = &Saucer{Size: size, Body: saucerBody(size, core.Vec(300, 200)), Velocity: core.Vec(1, 0.5), Speed: 1.5, Steps: 200, Ticks: 12}
	w.SaucerOnScreen = true
	w.SaucerBullets = append(w.SaucerBullets, Bullet{Position: core.Vec(310, 210), Velocity: core.Vec(-3, 4), Lifetime: 36, Ticks: 5})
	w.SaucerFragments = append(w.SaucerFragments, NewSaucerFragment(newRNG(3), w.Saucer))
	w.Explosions = append(w.Explosions, NewExplosion(newRNG(4), core.Vec(50, 60), core.Vec(1, 1)))
	return g
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, name := range []string{"save.json", "save.yaml", "save.msgpack"} {
		t.Run(name, func(t *testing.T) {
			f := openSave(t, name)
			g1 := busyGame(t, f)
			if err := g1.Save(); err != nil {
				t.Fatal(err)
			}

			g2, _ := newTestGame(t, config.DefaultAsteroidsConfig(), WithSnapshot(f))
			want, got := g1.Snapshot(), g2.Snapshot()
			if !reflect.DeepEqual(got, want) {
				t.Errorf("restored world differs\n got %+v\nwant %+v", got, want)
			}
			if g2.World().Menu != MenuMain {
				t.Error("a restored game opens on the main menu")
			}
			if !g2.menus.get(MenuMain).Buttons[0].Active {
				t.Error("Continue should be active for a restored running game")
			}
		})
	}
}

func TestLoadFailsSoft(t *testing.T) {
	t.Run("corrupt file", func(t *testing.T) {
		f := openSave(t, "save.json")
		if err := os.WriteFile(f.Path(), []byte("{{{"), 0o644); err != nil {
			t.Fatal(err)
		}
		g, _ := newTestGame(t, quietConfig(), WithSnapshot(f))
		if w := g.World(); !w.GameOver || w.Player != nil || len(w.HighScores) != 0 {
			t.Errorf("corrupt save should start empty: %+v", w)
		}
	})

	t.Run("unknown size", func(t *testing.T) {
		f := openSave(t, "save.yaml")
		snap := Snapshot{
			Lives:      2,
			HighScores: []HighScore{{Score: 10, Timestamp: 1}},
			Asteroids:  []AsteroidRecord{{Size: 7}},
		}
		if err := f.Save(snap); err != nil {
			t.Fatal(err)
		}
		g, _ := newTestGame(t, quietConfig(), WithSnapshot(f))
		if w := g.World(); !w.GameOver || len(w.Asteroids) != 0 || len(w.HighScores) != 0 {
			t.Errorf("rejected save should leave an empty world: %+v", w)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		f := openSave(t, "absent.yaml")
		g, _ := newTestGame(t, quietConfig(), WithSnapshot(f))
		if !g.World().GameOver {
			t.Error("no save means no running game")
		}
	})
}

func TestApplySnapshotRespawnsMissingShip(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	if err := g.ApplySnapshot(Snapshot{Lives: 2, Score: 40}); err != nil {
		t.Fatal(err)
	}
	w := g.World()
	if w.Player == nil || !w.Player.Invincible(g.cfg.Player.InvincibilityTicks) {
		t.Fatal("running game without a ship should get an invincible one")
	}
	if w.Menu != MenuMain {
		t.Errorf("menu %v, want it kept", w.Menu)
	}
	if !g.menus.get(MenuMain).Buttons[0].Active {
		t.Error("Continue should be enabled")
	}
}

func TestShutdownSavesRunningGame(t *testing.T) {
	f := openSave(t, "save.yaml")
	g, _ := newTestGame(t, quietConfig(), WithSnapshot(f))
	g.NewGame()
	w := g.World()
	w.Score = 100
	w.Pending = 30

	if err := g.Shutdown(); err != nil {
		t.Fatal(err)
	}

	var snap Snapshot
	if err := f.Load(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.GameOver || snap.Score != 130 || snap.Lives != 3 {
		t.Errorf("saved game over %v score %d lives %d", snap.GameOver, snap.Score, snap.Lives)
	}
	want := []HighScore{{Score: 130, Timestamp: InProgress}}
	if !reflect.DeepEqual(snap.HighScores, want) {
		t.Errorf("high scores %+v, want %+v", snap.HighScores, want)
	}
}

func TestShutdownClearsFinishedGame(t *testing.T) {
	f := openSave(t, "save.json")
	g, _ := newQuietGame(t)
	g.save = f
	g.World().Score = 250
	for g.World().Lives > 0 {
		if g.World().Player == nil {
			g.World().Player = NewPlayer(g.center(), false, 0)
		}
		g.playerDie()
	}

	if err := g.Shutdown(); err != nil {
		t.Fatal(err)
	}

	var snap Snapshot
	if err := f.Load(&snap); err != nil {
		t.Fatal(err)
	}
	if !snap.GameOver || snap.Score != 0 || snap.Fragment != nil || len(snap.Asteroids) != 0 {
		t.Errorf("finished game should be cleared: %+v", snap)
	}
	want := []HighScore{{Score: 250, Timestamp: testNow.Unix()}}
	if !reflect.DeepEqual(snap.HighScores, want) {
		t.Errorf("high scores %+v, want %+v", snap.HighScores, want)
	}
}
