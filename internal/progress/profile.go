// Package progress holds the player profile and the progression math:
// the XP curve, streak tracking, pomodoro rewards and the productivity
// score. Everything here is pure state manipulation; persistence and UI
// refresh belong to the session orchestrator.
package progress

import "time"

// Profile is the single per-user progression record.
//
// Invariant maintained by every mutation in this package:
// 0 <= XP < XPForLevel(Level), Level >= 1, Streak >= 0.
type Profile struct {
	// XP is the experience accumulated toward the next level.
	XP int

	// Level starts at 1 and has no upper bound.
	Level int

	// Streak counts consecutive calendar days with recorded activity.
	Streak int

	// LastActiveDate is the day token of the last counted activity,
	// "" if the profile has never been active.
	LastActiveDate string

	// TotalPomodoros counts completed work phases, ever. Never decreases.
	TotalPomodoros int

	// WeeklyMinutes accumulates focused minutes keyed by WeekKey.
	WeeklyMinutes map[string]int

	// PomoDayCount counts work phases completed on PomoDayDate.
	PomoDayCount int

	// PomoDayDate is the day token PomoDayCount refers to.
	PomoDayDate string

	// PomoXPTotal is cumulative XP earned from focus sessions alone.
	PomoXPTotal int
}

// NewProfile returns a fresh level-1 profile.
func NewProfile() *Profile {
	return &Profile{
		Level:         1,
		WeeklyMinutes: make(map[string]int),
	}
}

// Clone returns a deep copy, safe to hand to an asynchronous writer.
func (p *Profile) Clone() *Profile {
	c := *p
	c.WeeklyMinutes = make(map[string]int, len(p.WeeklyMinutes))
	for k, v := range p.WeeklyMinutes {
		c.WeeklyMinutes[k] = v
	}
	return &c
}

// AddWeeklyMinutes adds focused minutes to the given week bucket.
func (p *Profile) AddWeeklyMinutes(week string, minutes int) {
	if minutes <= 0 {
		return
	}
	if p.WeeklyMinutes == nil {
		p.WeeklyMinutes = make(map[string]int)
	}
	p.WeeklyMinutes[week] += minutes
}

// MinutesThisWeek returns the focused minutes recorded for the week
// containing now.
func (p *Profile) MinutesThisWeek(now time.Time) int {
	return p.WeeklyMinutes[WeekKey(now)]
}

// PomodorosToday returns the day-scoped session count, 0 if the stored
// day token is stale.
func (p *Profile) PomodorosToday(now time.Time) int {
	if p.PomoDayDate != DayToken(now) {
		return 0
	}
	return p.PomoDayCount
}
