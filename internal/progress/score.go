package progress

import "math"

// Score weights and caps. Completion dominates; streak and pomodoro
// contributions saturate at 30 days and 50 sessions respectively.
const (
	scoreStreakCap = 30
	scorePomoCap   = 50
)

// Score computes the composite productivity score in [0, 100]:
// completionRate*60 + min(streak/30,1)*20 + min(pomodoros/50,1)*20,
// rounded. The result is a display percentage; do not divide again.
func Score(totalTasks, completedTasks int, p *Profile) int {
	completionRate := 0.0
	if totalTasks > 0 {
		completionRate = float64(completedTasks) / float64(totalTasks)
	}
	streakBonus := math.Min(float64(p.Streak)/scoreStreakCap, 1)
	pomoBonus := math.Min(float64(p.TotalPomodoros)/scorePomoCap, 1)
	return int(math.Round(completionRate*60 + streakBonus*20 + pomoBonus*20))
}
