// Package session is the orchestrator between the domain packages and
// the persistence layer. It owns the in-memory working state (profile,
// tasks, subjects, ledger, timer), applies commands from the UI, awards
// XP and achievements as side effects, and decides what gets written
// when: task and subject changes immediately, profile changes through a
// debounced writer.
//
// Persistence failures are never fatal. The in-memory state stays
// authoritative for the rest of the session and the failure surfaces as
// a sync warning in the next snapshot.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/pomodoro"
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/store"
	"github.com/studyos/studyos/internal/tasks"
)

// defaultDebounce is the quiet window before a profile write fires.
const defaultDebounce = 1500 * time.Millisecond

// Options configures Open. All four repos are required; Clock and
// DebounceDelay default to time.Now and defaultDebounce.
type Options struct {
	Profiles store.ProfileRepo
	Tasks    store.TaskRepo
	Subjects store.SubjectRepo
	Ledger   store.LedgerRepo

	Clock         func() time.Time
	DebounceDelay time.Duration
}

// Session holds the live application state. Commands are not safe for
// concurrent use; the TUI drives them from its single update loop.
type Session struct {
	ctx   context.Context
	clock func() time.Time

	profiles store.ProfileRepo
	taskRepo store.TaskRepo
	subjRepo store.SubjectRepo
	ledgRepo store.LedgerRepo

	profile  *progress.Profile
	tasks    []*tasks.Task
	subjects []*tasks.Subject
	ledger   achievements.Ledger
	timer    *pomodoro.Timer

	saver *profileSaver

	// One-shot flags drained by Snapshot.
	newlyUnlocked []achievements.Rule
	leveledUp     bool

	// syncWarning is also written from the saver's timer goroutine.
	warnMu      sync.Mutex
	syncWarning string
}

// Open loads persisted state and returns a ready session. A missing or
// unreadable profile falls back to a fresh level-1 profile; unreadable
// collections fall back to empty ones, with a sync warning either way.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.Profiles == nil || opts.Tasks == nil || opts.Subjects == nil || opts.Ledger == nil {
		return nil, fmt.Errorf("session: all repositories are required")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = defaultDebounce
	}

	s := &Session{
		ctx:      ctx,
		clock:    opts.Clock,
		profiles: opts.Profiles,
		taskRepo: opts.Tasks,
		subjRepo: opts.Subjects,
		ledgRepo: opts.Ledger,
		timer:    pomodoro.New(),
	}
	s.saver = newProfileSaver(opts.DebounceDelay, func(p *progress.Profile) {
		if err := s.profiles.Save(s.ctx, p); err != nil {
			s.warn("save profile", err)
		}
	})

	p, err := s.profiles.Load(ctx)
	if err != nil {
		s.warn("load profile", err)
	}
	if p == nil {
		p = progress.NewProfile()
	}
	s.profile = p

	if s.tasks, err = s.taskRepo.LoadAll(ctx); err != nil {
		s.warn("load tasks", err)
		s.tasks = nil
	}
	if s.subjects, err = s.subjRepo.LoadAll(ctx); err != nil {
		s.warn("load subjects", err)
		s.subjects = nil
	}
	if s.ledger, err = s.ledgRepo.Load(ctx); err != nil {
		s.warn("load achievements", err)
		s.ledger = achievements.NewLedger()
	}
	return s, nil
}

// Close flushes any pending profile write. Call on teardown.
func (s *Session) Close() {
	s.saver.Flush()
}

// Activate records activity for today's calendar day, advancing or
// resetting the streak. Call once when the session comes to the
// foreground, not per command.
func (s *Session) Activate() {
	counted, leveled := progress.CheckStreak(s.profile, s.clock())
	if !counted {
		return
	}
	s.leveledUp = s.leveledUp || leveled
	s.saver.Arm(s.profile)
	s.checkAchievements()
}

// AddTask creates a task and persists it at the end of the manual
// order. Returns tasks.ErrEmptyTitle for a blank title.
func (s *Session) AddTask(title, subjectID, dueDate string, priority tasks.Priority, estimatedMinutes int) error {
	t, err := tasks.NewTask(title, subjectID, dueDate, priority, estimatedMinutes, s.clock())
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks, t)
	if err := s.taskRepo.Save(s.ctx, t, len(s.tasks)-1); err != nil {
		s.warn("save task", err)
	}
	s.checkAchievements()
	return nil
}

// ToggleTask flips a task's completion. Completing awards the
// priority's XP and credits the task's estimated minutes to this week;
// un-completing takes nothing back. Unknown IDs are a no-op.
func (s *Session) ToggleTask(id string) {
	t := tasks.FindByID(s.tasks, id)
	if t == nil {
		return
	}
	t.Completed = !t.Completed
	if t.Completed {
		now := s.clock()
		leveled := progress.ApplyXP(s.profile, progress.TaskXP(string(t.Priority)))
		s.profile.AddWeeklyMinutes(progress.WeekKey(now), t.EstimatedMinutes)
		s.leveledUp = s.leveledUp || leveled
		s.saver.Arm(s.profile)
	}
	s.persistTask(t)
	s.checkAchievements()
}

// DeleteTask removes a task. Unknown IDs are a no-op.
func (s *Session) DeleteTask(id string) {
	if tasks.FindByID(s.tasks, id) == nil {
		return
	}
	s.tasks = tasks.Remove(s.tasks, id)
	if err := s.taskRepo.Delete(s.ctx, id); err != nil {
		s.warn("delete task", err)
	}
	s.checkAchievements()
}

// ReorderTask moves srcID immediately before destID in the manual
// order and persists the new sequence. Unknown IDs or src == dest are a
// no-op.
func (s *Session) ReorderTask(srcID, destID string) {
	out, moved := tasks.Reorder(s.tasks, srcID, destID)
	if !moved {
		return
	}
	s.tasks = out
	ids := make([]string, len(out))
	for i, t := range out {
		ids[i] = t.ID
	}
	if err := s.taskRepo.SavePositions(s.ctx, ids); err != nil {
		s.warn("save task order", err)
	}
}

// AddSubject creates a subject. Returns tasks.ErrEmptyName for a blank
// name.
func (s *Session) AddSubject(name, color string) error {
	subj, err := tasks.NewSubject(name, color)
	if err != nil {
		return err
	}
	s.subjects = append(s.subjects, subj)
	if err := s.subjRepo.Save(s.ctx, subj, len(s.subjects)-1); err != nil {
		s.warn("save subject", err)
	}
	s.checkAchievements()
	return nil
}

// DeleteSubject removes a subject and every task filed under it.
// Unknown IDs are a no-op.
func (s *Session) DeleteSubject(id string) {
	found := false
	out := make([]*tasks.Subject, 0, len(s.subjects))
	for _, subj := range s.subjects {
		if subj.ID == id {
			found = true
			continue
		}
		out = append(out, subj)
	}
	if !found {
		return
	}
	s.subjects = out
	s.tasks = tasks.RemoveSubjectTasks(s.tasks, id)
	if err := s.subjRepo.DeleteCascade(s.ctx, id); err != nil {
		s.warn("delete subject", err)
	}
}

// TimerStart begins the countdown.
func (s *Session) TimerStart() { s.timer.Start() }

// TimerPause halts the countdown, keeping the remaining time.
func (s *Session) TimerPause() { s.timer.Pause() }

// TimerReset returns the timer to a paused, full work phase.
func (s *Session) TimerReset() { s.timer.Reset() }

// TimerSkip jumps to the other phase without a completion, so no
// reward is earned.
func (s *Session) TimerSkip() { s.timer.Skip() }

// TimerSetPreset reconfigures the durations and resets the timer.
func (s *Session) TimerSetPreset(p pomodoro.Preset) {
	s.timer.SetPreset(p.WorkMinutes, p.BreakMinutes)
}

// TimerTick advances the countdown by one second. A naturally
// completed work phase earns the pomodoro rewards; a completed break
// earns nothing. Returns the ended phase when a phase just completed.
func (s *Session) TimerTick() (ended pomodoro.Phase, completed bool) {
	workMinutes := s.timer.WorkMinutes()
	ended, completed = s.timer.Tick()
	if !completed || ended != pomodoro.PhaseWork {
		return ended, completed
	}
	leveled := progress.RecordPomodoro(s.profile, s.clock(), workMinutes)
	s.leveledUp = s.leveledUp || leveled
	s.saver.Arm(s.profile)
	s.checkAchievements()
	return ended, completed
}

// checkAchievements runs the rule table against the current state and
// persists any new unlocks right away. The unlocks accumulate until the
// next snapshot drains them.
func (s *Session) checkAchievements() {
	now := s.clock()
	newly := achievements.Evaluate(s.ledger, achievements.State{
		Tasks:    s.tasks,
		Subjects: s.subjects,
		Profile:  s.profile,
	}, now)
	for _, r := range newly {
		if err := s.ledgRepo.Unlock(s.ctx, r.ID, now); err != nil {
			s.warn("save achievement", err)
		}
	}
	s.newlyUnlocked = append(s.newlyUnlocked, newly...)
}

func (s *Session) persistTask(t *tasks.Task) {
	pos := 0
	for i, cur := range s.tasks {
		if cur.ID == t.ID {
			pos = i
			break
		}
	}
	if err := s.taskRepo.Save(s.ctx, t, pos); err != nil {
		s.warn("save task", err)
	}
}

func (s *Session) warn(op string, err error) {
	s.warnMu.Lock()
	s.syncWarning = fmt.Sprintf("%s: %v", op, err)
	s.warnMu.Unlock()
}

func (s *Session) takeWarning() string {
	s.warnMu.Lock()
	w := s.syncWarning
	s.syncWarning = ""
	s.warnMu.Unlock()
	return w
}
