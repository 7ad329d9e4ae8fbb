package progress

import "math"

// XP awards. Tuned for a 100-XP first level: a few completed tasks or
// streak days per level early on.
const (
	// XPPerPomodoro is awarded for each completed work phase.
	XPPerPomodoro = 30

	// XPStreakBonus is awarded when a streak continues past day one.
	XPStreakBonus = 10
)

// Task XP by priority.
const (
	xpTaskLow     = 15
	xpTaskMedium  = 25
	xpTaskHigh    = 40
	xpTaskDefault = 20
)

// levelNames are display titles by level, capped at the last entry.
var levelNames = []string{
	"Novice", "Apprentice", "Scholar", "Adept", "Sage",
	"Expert", "Master", "Grandmaster", "Legend", "Mythic",
}

// XPForLevel returns the XP threshold to advance from the given level:
// floor(100 * 1.5^(level-1)). Strictly increasing in level.
func XPForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// LevelName returns the display title for a level.
func LevelName(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelNames) {
		return levelNames[len(levelNames)-1]
	}
	return levelNames[level-1]
}

// TaskXP returns the XP awarded for completing a task of the given
// priority ("low", "medium", "high"). Unknown priorities earn the
// default award.
func TaskXP(priority string) int {
	switch priority {
	case "low":
		return xpTaskLow
	case "medium":
		return xpTaskMedium
	case "high":
		return xpTaskHigh
	default:
		return xpTaskDefault
	}
}

// ApplyXP adds amount to the profile's XP and consumes level thresholds
// until XP is below the current level's requirement again. A single
// large award can cross several thresholds, so this loops rather than
// dividing once. Reports whether at least one level-up occurred.
func ApplyXP(p *Profile, amount int) bool {
	p.XP += amount
	leveled := false
	for p.XP >= XPForLevel(p.Level) {
		p.XP -= XPForLevel(p.Level)
		p.Level++
		leveled = true
	}
	return leveled
}
