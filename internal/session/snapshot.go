package session

import (
	"sort"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/pomodoro"
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

// Snapshot is a read-only view of the session for rendering. Taking a
// snapshot never mutates the session; events are consumed separately
// through DrainEvents.
type Snapshot struct {
	XP        int
	Level     int
	XPNeeded  int
	LevelName string
	Streak    int
	Score     int

	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	CompletionPct  int

	WeekMinutes    int
	TotalPomodoros int
	PomodorosToday int
	PomoXPTotal    int

	PriorityCounts map[tasks.Priority]int

	TimerPhase     pomodoro.Phase
	TimerRunning   bool
	TimerRemaining int
	TimerTotal     int
}

// Events are the one-shot notifications accumulated since the last
// drain: rules unlocked, level-ups, and the most recent sync failure.
type Events struct {
	Unlocked    []achievements.Rule
	LeveledUp   bool
	SyncWarning string
}

// DrainEvents returns the pending events and clears them. Each event is
// delivered exactly once.
func (s *Session) DrainEvents() Events {
	ev := Events{
		Unlocked:    s.newlyUnlocked,
		LeveledUp:   s.leveledUp,
		SyncWarning: s.takeWarning(),
	}
	s.newlyUnlocked = nil
	s.leveledUp = false
	return ev
}

// Snapshot computes the current view.
func (s *Session) Snapshot() Snapshot {
	now := s.clock()
	total := len(s.tasks)
	completed := tasks.CountCompleted(s.tasks)

	counts := make(map[tasks.Priority]int)
	for _, t := range s.tasks {
		counts[t.Priority]++
	}

	pct := 0
	if total > 0 {
		pct = completed * 100 / total
	}

	snap := Snapshot{
		XP:        s.profile.XP,
		Level:     s.profile.Level,
		XPNeeded:  progress.XPForLevel(s.profile.Level),
		LevelName: progress.LevelName(s.profile.Level),
		Streak:    s.profile.Streak,
		Score:     progress.Score(total, completed, s.profile),

		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		CompletionPct:  pct,

		WeekMinutes:    s.profile.MinutesThisWeek(now),
		TotalPomodoros: s.profile.TotalPomodoros,
		PomodorosToday: s.profile.PomodorosToday(now),
		PomoXPTotal:    s.profile.PomoXPTotal,

		PriorityCounts: counts,

		TimerPhase:     s.timer.Phase(),
		TimerRunning:   s.timer.Running(),
		TimerRemaining: s.timer.Remaining(),
		TimerTotal:     s.timer.Total(),
	}
	return snap
}

// Tasks returns the tasks in manual order. The slice is a copy; the
// tasks themselves are live and must not be mutated by callers.
func (s *Session) Tasks() []*tasks.Task {
	out := make([]*tasks.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksFor returns the filtered, sorted projection of the task list.
func (s *Session) TasksFor(subjectID string, filter tasks.FilterMode, sortMode tasks.SortMode) []*tasks.Task {
	return tasks.Project(s.tasks, subjectID, filter, sortMode)
}

// RecentTasks returns up to n tasks, most recently created first.
func (s *Session) RecentTasks(n int) []*tasks.Task {
	out := s.Tasks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Subjects returns the subjects in insertion order. The slice is a
// copy.
func (s *Session) Subjects() []*tasks.Subject {
	out := make([]*tasks.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// SubjectName resolves a subject ID to its display name, "" if absent.
func (s *Session) SubjectName(id string) string {
	for _, subj := range s.subjects {
		if subj.ID == id {
			return subj.Name
		}
	}
	return ""
}

// Ledger returns the achievement ledger for rendering.
func (s *Session) Ledger() achievements.Ledger {
	return s.ledger
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() *progress.Profile {
	return s.profile.Clone()
}
