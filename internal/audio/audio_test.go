package audio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSoundString(t *testing.T) {
	tests := []struct {
		s    Sound
		want string
	}{
		{Fire, "fire"},
		{BangLarge, "bang_large"},
		{MenuAction, "menu_action"},
		{Sound(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("Sound(%d).String() = %q, expected %q", tc.s, got, tc.want)
		}
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play(Thrust, true)
	r.Play(Fire, false)
	r.Stop(Thrust)
	r.Play(Fire, false)

	if got := r.Played(Fire); got != 2 {
		t.Errorf("Played(Fire) = %d, expected 2", got)
	}
	events := r.Events()
	if len(events) != 4 || !events[2].Stop || events[2].Sound != Thrust {
		t.Errorf("unexpected events: %+v", events)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Reset should clear events")
	}
}

func TestLogPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := NewLogPlayer(logger)

	p.Play(SaucerBig, true)
	p.Stop(SaucerBig)

	out := buf.String()
	if !strings.Contains(out, "saucer_big") || !strings.Contains(out, "sound stop") {
		t.Errorf("log output missing cues: %q", out)
	}
}
