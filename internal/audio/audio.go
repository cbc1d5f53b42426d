// Package audio defines the sound cues the simulation emits and the
// capability a host implements to play them.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Sound identifies a named cue.
type Sound int

const (
	Fire Sound = iota
	Thrust
	BangSmall
	BangMedium
	BangLarge
	SaucerSmall
	SaucerBig
	Beat1
	Beat2
	MenuSelect
	MenuAction
)

var soundNames = [...]string{
	Fire:        "fire",
	Thrust:      "thrust",
	BangSmall:   "bang_small",
	BangMedium:  "bang_medium",
	BangLarge:   "bang_large",
	SaucerSmall: "saucer_small",
	SaucerBig:   "saucer_big",
	Beat1:       "beat1",
	Beat2:       "beat2",
	MenuSelect:  "menu_select",
	MenuAction:  "menu_action",
}

// String returns the cue name.
func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Bangs is indexed by asteroid size index (small, medium, large).
var Bangs = [3]Sound{BangSmall, BangMedium, BangLarge}

// Saucers is indexed by saucer size index (small, large).
var Saucers = [2]Sound{SaucerSmall, SaucerBig}

// Player plays and stops cues. Looping cues run until stopped.
type Player interface {
	Play(s Sound, loop bool)
	Stop(s Sound)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Sound, bool) {}
func (Nop) Stop(Sound)       {}

// LogPlayer reports cues to a logger at debug level.
// Useful when no audio device exists, e.g. over SSH.
type LogPlayer struct {
	logger *log.Logger
}

// NewLogPlayer creates a LogPlayer writing to logger.
func NewLogPlayer(logger *log.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(s Sound, loop bool) {
	p.logger.Debug("sound play", "cue", s, "loop", loop)
}

func (p *LogPlayer) Stop(s Sound) {
	p.logger.Debug("sound stop", "cue", s)
}

// Event is one recorded call on a Recorder.
type Event struct {
	Sound Sound
	Loop  bool
	Stop  bool
}

// Recorder keeps every cue it receives, in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Play(s Sound, loop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Sound: s, Loop: loop})
}

func (r *Recorder) Stop(s Sound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Sound: s, Stop: true})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Played counts non-stop events for s.
func (r *Recorder) Played(s Sound) int {
	n := 0
	for _, e := range r.Events() {
		if e.Sound == s && !e.Stop {
			n++
		}
	}
	return n
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
