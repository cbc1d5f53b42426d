package asteroids

import (
	"reflect"
	"testing"
	"time"
)

func TestUpdateHighScores(t *testing.T) {
	now := time.Unix(5000, 0)
	tests := []struct {
		name     string
		hs       []HighScore
		score    int
		gameOver bool
		want     []HighScore
	}{
		{
			name:  "first entry in progress",
			score: 100,
			want:  []HighScore{{100, InProgress}},
		},
		{
			name:     "finished game is stamped",
			hs:       []HighScore{{300, 1}},
			score:    200,
			gameOver: true,
			want:     []HighScore{{300, 1}, {200, 5000}},
		},
		{
			name:  "running entry raised and resorted",
			hs:    []HighScore{{300, 1}, {100, InProgress}},
			score: 400,
			want:  []HighScore{{400, InProgress}, {300, 1}},
		},
		{
			name:  "running entry never lowered",
			hs:    []HighScore{{300, InProgress}},
			score: 200,
			want:  []HighScore{{300, InProgress}},
		},
		{
			name:     "running entry closed at game over",
			hs:       []HighScore{{300, InProgress}},
			score:    350,
			gameOver: true,
			want:     []HighScore{{350, 5000}},
		},
		{
			name:  "table cut to limit",
			hs:    []HighScore{{500, 1}, {400, 2}, {300, 3}, {200, 4}, {100, 5}},
			score: 250,
			want:  []HighScore{{500, 1}, {400, 2}, {300, 3}, {250, InProgress}, {200, 4}},
		},
		{
			name:  "low score falls off a full table",
			hs:    []HighScore{{500, 1}, {400, 2}, {300, 3}, {200, 4}, {100, 5}},
			score: 50,
			want:  []HighScore{{500, 1}, {400, 2}, {300, 3}, {200, 4}, {100, 5}},
		},
		{
			name:     "zero score ignored",
			hs:       []HighScore{{500, 1}},
			gameOver: true,
			want:     []HighScore{{500, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := updateHighScores(tt.hs, tt.score, tt.gameOver, now, 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStampHighScore(t *testing.T) {
	hs := []HighScore{{400, 2}, {300, InProgress}}
	stampHighScore(hs, time.Unix(99, 0))
	if hs[1].Timestamp != 99 || hs[0].Timestamp != 2 {
		t.Errorf("got %v", hs)
	}
}

func TestHighScoresText(t *testing.T) {
	at := func(h, m int) int64 {
		return time.Date(2024, 3, 5, h, m, 0, 0, time.UTC).Unix()
	}
	tests := []struct {
		name string
		hs   []HighScore
		want string
	}{
		{"empty", nil, "No high scores yet"},
		{
			"playing and afternoon",
			[]HighScore{{400, InProgress}, {300, at(14, 7)}},
			"1st: 400 (playing)\n2nd: 300 (03/05/2024 02:07 p.m.)",
		},
		{"noon", []HighScore{{10, at(12, 0)}}, "1st: 10 (03/05/2024 12:00 p.m.)"},
		{"midnight", []HighScore{{10, at(0, 30)}}, "1st: 10 (03/05/2024 00:30 a.m.)"},
		{
			"ordinals",
			[]HighScore{{5, 1}, {4, 1}, {3, 1}, {2, 1}, {1, InProgress}},
			"1st: 5 (01/01/1970 00:00 a.m.)\n2nd: 4 (01/01/1970 00:00 a.m.)\n3rd: 3 (01/01/1970 00:00 a.m.)\n4th: 2 (01/01/1970 00:00 a.m.)\n5th: 1 (playing)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighScoresText(tt.hs, time.UTC); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopScore(t *testing.T) {
	if TopScore(nil) != 0 {
		t.Error("empty table has no top score")
	}
	if TopScore([]HighScore{{70, 1}, {20, 2}}) != 70 {
		t.Error("top score is the first entry")
	}
}
