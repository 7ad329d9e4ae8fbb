// Package achievements defines the fixed rule table of unlockable
// milestones and the write-once ledger recording when each was earned.
package achievements

import (
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

// State is the immutable snapshot a rule predicate evaluates against.
type State struct {
	Tasks    []*tasks.Task
	Subjects []*tasks.Subject
	Profile  *progress.Profile
}

// Rule is one unlockable milestone: identity, display metadata, and the
// predicate deciding whether the current state satisfies it.
type Rule struct {
	ID          string
	Icon        string
	Name        string
	Description string
	Check       func(State) bool
}

// rules is the static table, in display and evaluation order.
var rules = []Rule{
	{
		ID: "first_task", Icon: "🌱", Name: "First Steps",
		Description: "Complete your first task",
		Check:       func(s State) bool { return tasks.CountCompleted(s.Tasks) >= 1 },
	},
	{
		ID: "ten_tasks", Icon: "📚", Name: "Bookworm",
		Description: "Complete 10 tasks",
		Check:       func(s State) bool { return tasks.CountCompleted(s.Tasks) >= 10 },
	},
	{
		ID: "fifty_tasks", Icon: "🎓", Name: "Academic",
		Description: "Complete 50 tasks",
		Check:       func(s State) bool { return tasks.CountCompleted(s.Tasks) >= 50 },
	},
	{
		ID: "streak_3", Icon: "🔥", Name: "On Fire",
		Description: "Reach a 3-day streak",
		Check:       func(s State) bool { return s.Profile.Streak >= 3 },
	},
	{
		ID: "streak_7", Icon: "⚡", Name: "Unstoppable",
		Description: "Reach a 7-day streak",
		Check:       func(s State) bool { return s.Profile.Streak >= 7 },
	},
	{
		ID: "pomo_5", Icon: "⏱", Name: "Focused",
		Description: "Complete 5 focus sessions",
		Check:       func(s State) bool { return s.Profile.TotalPomodoros >= 5 },
	},
	{
		ID: "pomo_20", Icon: "🧘", Name: "Deep Work",
		Description: "Complete 20 focus sessions",
		Check:       func(s State) bool { return s.Profile.TotalPomodoros >= 20 },
	},
	{
		ID: "level_5", Icon: "⭐", Name: "Rising Star",
		Description: "Reach Level 5",
		Check:       func(s State) bool { return s.Profile.Level >= 5 },
	},
	{
		ID: "level_10", Icon: "💎", Name: "Diamond Scholar",
		Description: "Reach Level 10",
		Check:       func(s State) bool { return s.Profile.Level >= 10 },
	},
	{
		ID: "add_subject", Icon: "🗂", Name: "Organized",
		Description: "Add your first subject",
		Check:       func(s State) bool { return len(s.Subjects) >= 1 },
	},
	{
		ID: "tasks_10_add", Icon: "📋", Name: "Planner",
		Description: "Add 10 tasks total",
		Check:       func(s State) bool { return len(s.Tasks) >= 10 },
	},
	{
		ID: "high_priority", Icon: "🚨", Name: "Priority Master",
		Description: "Complete a high priority task",
		Check: func(s State) bool {
			for _, t := range s.Tasks {
				if t.Completed && t.Priority == tasks.PriorityHigh {
					return true
				}
			}
			return false
		},
	},
}

// Rules returns the full rule table in display order.
func Rules() []Rule {
	return rules
}
