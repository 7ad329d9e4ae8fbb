package progress

import (
	"testing"
	"time"
)

var (
	day1 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
	day3 = day1.AddDate(0, 0, 2)
	day5 = day1.AddDate(0, 0, 4)
)

func TestCheckStreak_FirstUse(t *testing.T) {
	p := NewProfile()

	counted, _ := CheckStreak(p, day1)

	if !counted {
		t.Error("expected first activation to be counted")
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
	if p.XP != 0 {
		t.Errorf("xp = %d, want 0 (no bonus on streak start)", p.XP)
	}
	if p.LastActiveDate != "2025-03-10" {
		t.Errorf("lastActiveDate = %q, want 2025-03-10", p.LastActiveDate)
	}
}

func TestCheckStreak_SameDayIdempotent(t *testing.T) {
	p := NewProfile()
	CheckStreak(p, day1)

	counted, _ := CheckStreak(p, day1.Add(6*time.Hour))

	if counted {
		t.Error("second activation on the same day should not count")
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
}

func TestCheckStreak_NextDayIncrementsAndAwardsBonus(t *testing.T) {
	p := NewProfile()
	CheckStreak(p, day1)

	CheckStreak(p, day2)

	if p.Streak != 2 {
		t.Errorf("streak = %d, want 2", p.Streak)
	}
	if p.XP != XPStreakBonus {
		t.Errorf("xp = %d, want %d (continuation bonus)", p.XP, XPStreakBonus)
	}
}

func TestCheckStreak_GapResetsToOne(t *testing.T) {
	p := NewProfile()
	CheckStreak(p, day1)
	CheckStreak(p, day2)
	CheckStreak(p, day3)

	CheckStreak(p, day5) // skipped day4

	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1 after gap", p.Streak)
	}
	if p.LastActiveDate != DayToken(day5) {
		t.Errorf("lastActiveDate = %q, want %q", p.LastActiveDate, DayToken(day5))
	}
}

func TestCheckStreak_NoBonusOnReset(t *testing.T) {
	p := NewProfile()
	CheckStreak(p, day1)
	xpBefore := p.XP

	CheckStreak(p, day5)

	if p.XP != xpBefore {
		t.Errorf("xp = %d, want %d (no bonus when streak resets)", p.XP, xpBefore)
	}
}

func TestRecordPomodoro(t *testing.T) {
	p := NewProfile()

	leveled := RecordPomodoro(p, day1, 25)

	if leveled {
		t.Error("expected no level-up from a single session")
	}
	if p.TotalPomodoros != 1 {
		t.Errorf("totalPomodoros = %d, want 1", p.TotalPomodoros)
	}
	if p.XP != XPPerPomodoro {
		t.Errorf("xp = %d, want %d", p.XP, XPPerPomodoro)
	}
	if p.PomoXPTotal != XPPerPomodoro {
		t.Errorf("pomoXPTotal = %d, want %d", p.PomoXPTotal, XPPerPomodoro)
	}
	if p.PomoDayCount != 1 || p.PomoDayDate != DayToken(day1) {
		t.Errorf("day counter = %d@%q, want 1@%q", p.PomoDayCount, p.PomoDayDate, DayToken(day1))
	}
	if got := p.MinutesThisWeek(day1); got != 25 {
		t.Errorf("minutes this week = %d, want 25", got)
	}
}

func TestRecordPomodoro_DayCounterResets(t *testing.T) {
	p := NewProfile()
	RecordPomodoro(p, day1, 25)
	RecordPomodoro(p, day1, 25)

	RecordPomodoro(p, day2, 25)

	if p.PomoDayCount != 1 {
		t.Errorf("pomoDayCount = %d, want 1 after day change", p.PomoDayCount)
	}
	if p.TotalPomodoros != 3 {
		t.Errorf("totalPomodoros = %d, want 3", p.TotalPomodoros)
	}
}

func TestPomodorosToday_StaleDate(t *testing.T) {
	p := NewProfile()
	RecordPomodoro(p, day1, 25)

	if got := p.PomodorosToday(day2); got != 0 {
		t.Errorf("PomodorosToday on a later day = %d, want 0", got)
	}
	if got := p.PomodorosToday(day1); got != 1 {
		t.Errorf("PomodorosToday same day = %d, want 1", got)
	}
}

func TestWeekKey_StableWithinWeek(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := a.Add(24 * time.Hour)
	far := a.AddDate(0, 0, 8)

	if WeekKey(a) != WeekKey(b) {
		t.Errorf("WeekKey differs within 24h: %q vs %q", WeekKey(a), WeekKey(b))
	}
	if WeekKey(a) == WeekKey(far) {
		t.Errorf("WeekKey identical 8 days apart: %q", WeekKey(a))
	}
}

func TestClone_Independent(t *testing.T) {
	p := NewProfile()
	p.AddWeeklyMinutes("w_1", 10)

	c := p.Clone()
	c.XP = 50
	c.WeeklyMinutes["w_1"] = 99

	if p.XP != 0 {
		t.Errorf("original xp = %d, want 0", p.XP)
	}
	if p.WeeklyMinutes["w_1"] != 10 {
		t.Errorf("original weekly minutes = %d, want 10", p.WeeklyMinutes["w_1"])
	}
}
