package progress

import (
	"fmt"
	"time"
)

// DayToken formats t as an opaque, comparable local calendar-day token.
func DayToken(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey buckets t into a coarse whole-calendar-week identifier
// (weeks since the Unix epoch). Opaque and comparable; exact week
// boundary alignment is not load-bearing.
func WeekKey(t time.Time) string {
	return fmt.Sprintf("w_%d", t.Unix()/(7*24*3600))
}

// CheckStreak records activity for the calendar day containing today.
// Call it once per session activation, not per task action.
//
// Same day as the last activity: no-op. Exactly the following day: the
// streak continues, and a continuation past day one earns XPStreakBonus.
// Anything else (first use, or a gap of two or more days) resets the
// streak to 1 with no bonus.
//
// Returns counted=true when the day was newly recorded, and leveled=true
// when the streak bonus crossed a level threshold.
func CheckStreak(p *Profile, today time.Time) (counted, leveled bool) {
	day := DayToken(today)
	if p.LastActiveDate == day {
		return false, false
	}
	yesterday := DayToken(today.AddDate(0, 0, -1))
	if p.LastActiveDate == yesterday {
		p.Streak++
		if p.Streak > 1 {
			leveled = ApplyXP(p, XPStreakBonus)
		}
	} else {
		p.Streak = 1
	}
	p.LastActiveDate = day
	return true, leveled
}

// RecordPomodoro applies the rewards for a naturally completed work
// phase: increments the lifetime and day-scoped counters, banks the
// session XP, and credits the work duration to this week's focused
// minutes. Reports whether the XP award caused a level-up.
func RecordPomodoro(p *Profile, now time.Time, workMinutes int) bool {
	p.TotalPomodoros++
	p.PomoXPTotal += XPPerPomodoro

	day := DayToken(now)
	if p.PomoDayDate != day {
		p.PomoDayDate = day
		p.PomoDayCount = 0
	}
	p.PomoDayCount++

	p.AddWeeklyMinutes(WeekKey(now), workMinutes)
	return ApplyXP(p, XPPerPomodoro)
}
