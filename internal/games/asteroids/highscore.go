package asteroids

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// InProgress marks the high score of the game that is still running.
const InProgress int64 = -1

// HighScore is one entry of the high-score table. Timestamp is a Unix time
// in seconds, or InProgress.
type HighScore struct {
	Score     int   `json:"score" yaml:"score"`
	Timestamp int64 `json:"timestamp" yaml:"timestamp"`
}

func sortHighScores(hs []HighScore) {
	slices.SortStableFunc(hs, func(a, b HighScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// updateHighScores records score in the table. While a game is running its
// entry is raised in place; otherwise a new entry is added and the table is
// cut to limit entries. A finished game gets the timestamp now.
func updateHighScores(hs []HighScore, score int, gameOver bool, now time.Time, limit int) []HighScore {
	if score <= 0 {
		return hs
	}
	ts := InProgress
	if gameOver {
		ts = now.Unix()
	}

	running := lo.ContainsBy(hs, func(h HighScore) bool { return h.Timestamp == InProgress })
	if running {
		for i, h := range hs {
			if h.Timestamp == InProgress && score > h.Score {
				hs[i] = HighScore{Score: score, Timestamp: ts}
				sortHighScores(hs)
			}
		}
		return hs
	}

	hs = append(hs, HighScore{Score: score, Timestamp: ts})
	sortHighScores(hs)
	if len(hs) > limit {
		hs = hs[:limit]
	}
	return hs
}

// stampHighScore closes the entry of the running game, if there is one.
func stampHighScore(hs []HighScore, now time.Time) {
	for i := range hs {
		if hs[i].Timestamp == InProgress {
			hs[i].Timestamp = now.Unix()
			return
		}
	}
}

var ordinalSuffixes = []string{"st", "nd", "rd"}

func ordinal(n int) string {
	if n >= 1 && n <= len(ordinalSuffixes) {
		return fmt.Sprintf("%d%s", n, ordinalSuffixes[n-1])
	}
	return fmt.Sprintf("%dth", n)
}

// formatTimestamp renders a Unix time as "01/02/2006 03:04 p.m." in loc.
func formatTimestamp(ts int64, loc *time.Location) string {
	t := time.Unix(ts, 0).In(loc)
	hour := t.Hour()
	suffix := "a.m."
	if hour >= 12 {
		suffix = "p.m."
	}
	if hour > 12 {
		hour -= 12
	}
	return fmt.Sprintf("%s %02d:%02d %s", t.Format("01/02/2006"), hour, t.Minute(), suffix)
}

// HighScoresText renders the table shown in the high-score menu.
func HighScoresText(hs []HighScore, loc *time.Location) string {
	if len(hs) == 0 {
		return "No high scores yet"
	}
	lines := make([]string, len(hs))
	for i, h := range hs {
		when := "playing"
		if h.Timestamp != InProgress {
			when = formatTimestamp(h.Timestamp, loc)
		}
		lines[i] = fmt.Sprintf("%s: %d (%s)", ordinal(i+1), h.Score, when)
	}
	return strings.Join(lines, "\n")
}

// TopScore returns the best score in the table, or zero.
func TopScore(hs []HighScore) int {
	if len(hs) == 0 {
		return 0
	}
	return hs[0].Score
}
