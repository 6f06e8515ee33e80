// Package stats derives aggregate metrics from the session history.
// Everything here is a pure function over a history snapshot; day bucketing
// uses the local calendar day of each entry's timestamp, never a rolling
// 24-hour window.
package stats

import (
	"time"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/history"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
)

// Summary aggregates one day of focus work.
type Summary struct {
	Minutes int // total focus time, rounded to the nearest minute
	Blocks  int // number of completed focus sessions
}

// DayTotal is one bar of the weekly chart.
type DayTotal struct {
	Label   string // short weekday name, e.g. "Mon"
	Minutes int
}

// TodayFocus sums focus entries that fall on today's local calendar day.
func TodayFocus(entries []history.Entry, today time.Time) Summary {
	key := dayKey(today)

	var sum Summary
	var seconds int
	for _, e := range entries {
		if e.Mode != timer.ModeFocus || dayKey(e.Timestamp) != key {
			continue
		}
		seconds += e.ActualSeconds
		sum.Blocks++
	}
	sum.Minutes = roundMinutes(seconds)
	return sum
}

// Streak counts consecutive calendar days ending today that each contain at
// least one completed focus session. A day without focus work breaks the
// streak; if today itself has none, the streak is zero.
func Streak(entries []history.Entry, today time.Time) int {
	days := make(map[string]bool)
	for _, e := range entries {
		if e.Mode == timer.ModeFocus && e.ActualSeconds > 0 {
			days[dayKey(e.Timestamp)] = true
		}
	}

	streak := 0
	for d := today; days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// WeekChart returns focus minutes for the 7 local calendar days ending
// today, oldest first. Days without entries report zero.
func WeekChart(entries []history.Entry, today time.Time) []DayTotal {
	seconds := make(map[string]int)
	for _, e := range entries {
		if e.Mode == timer.ModeFocus {
			seconds[dayKey(e.Timestamp)] += e.ActualSeconds
		}
	}

	chart := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		chart = append(chart, DayTotal{
			Label:   day.Weekday().String()[:3],
			Minutes: roundMinutes(seconds[dayKey(day)]),
		})
	}
	return chart
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// roundMinutes converts seconds to minutes, rounding half up.
func roundMinutes(seconds int) int {
	return (seconds + 30) / 60
}
