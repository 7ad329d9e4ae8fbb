package store

import (
	"context"
	"testing"
	"time"

	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		s.Reset(context.Background())
		s.Close()
	})
	return s
}

func TestProfileLoad_Empty(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Profiles().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before first save")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := progress.NewProfile()
	p.XP = 42
	p.Level = 3
	p.Streak = 5
	p.LastActiveDate = "2025-03-10"
	p.TotalPomodoros = 7
	p.AddWeeklyMinutes("w_2881", 90)
	p.PomoDayCount = 2
	p.PomoDayDate = "2025-03-10"
	p.PomoXPTotal = 210

	if err := s.Profiles().Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Profiles().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil profile")
	}
	if got.XP != 42 || got.Level != 3 || got.Streak != 5 {
		t.Errorf("profile = {xp:%d level:%d streak:%d}, want {42 3 5}", got.XP, got.Level, got.Streak)
	}
	if got.WeeklyMinutes["w_2881"] != 90 {
		t.Errorf("weekly minutes = %d, want 90", got.WeeklyMinutes["w_2881"])
	}
	if got.PomoXPTotal != 210 {
		t.Errorf("pomoXPTotal = %d, want 210", got.PomoXPTotal)
	}
}

func TestProfileSave_Upserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := progress.NewProfile()
	if err := s.Profiles().Save(ctx, p); err != nil {
		t.Fatalf("first save: %v", err)
	}
	p.XP = 99
	if err := s.Profiles().Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Profiles().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 99 {
		t.Errorf("xp = %d, want 99", got.XP)
	}
}

func TestTasksOrderedByPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Tasks()

	now := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		task, err := tasks.NewTask(title, "", "", tasks.PriorityMedium, 0, now)
		if err != nil {
			t.Fatalf("new task: %v", err)
		}
		if err := repo.Save(ctx, task, i); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "first" || got[2].Title != "third" {
		t.Errorf("order = [%s %s %s], want [first second third]", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestSavePositions_Reorders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Tasks()

	now := time.Now()
	var all []*tasks.Task
	for i, title := range []string{"a", "b", "c"} {
		task, _ := tasks.NewTask(title, "", "", tasks.PriorityMedium, 0, now)
		all = append(all, task)
		if err := repo.Save(ctx, task, i); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// Move c to the front.
	if err := repo.SavePositions(ctx, []string{all[2].ID, all[0].ID, all[1].ID}); err != nil {
		t.Fatalf("save positions: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[0].Title != "c" || got[1].Title != "a" || got[2].Title != "b" {
		t.Errorf("order = [%s %s %s], want [c a b]", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestSubjectDeleteCascade(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := tasks.NewSubject("Math", "#fff")
	other, _ := tasks.NewSubject("History", "#000")
	if err := s.Subjects().Save(ctx, subj, 0); err != nil {
		t.Fatalf("save subject: %v", err)
	}
	if err := s.Subjects().Save(ctx, other, 1); err != nil {
		t.Fatalf("save subject: %v", err)
	}

	now := time.Now()
	mine, _ := tasks.NewTask("algebra", subj.ID, "", tasks.PriorityMedium, 0, now)
	theirs, _ := tasks.NewTask("essay", other.ID, "", tasks.PriorityMedium, 0, now)
	s.Tasks().Save(ctx, mine, 0)
	s.Tasks().Save(ctx, theirs, 1)

	if err := s.Subjects().DeleteCascade(ctx, subj.ID); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	subjects, _ := s.Subjects().LoadAll(ctx)
	if len(subjects) != 1 || subjects[0].ID != other.ID {
		t.Errorf("subjects left = %d, want only %q", len(subjects), other.Name)
	}
	left, _ := s.Tasks().LoadAll(ctx)
	if len(left) != 1 || left[0].ID != theirs.ID {
		t.Errorf("tasks left = %d, want only the other subject's task", len(left))
	}
}

func TestLedgerWriteOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Ledger()

	first := time.Unix(1000000, 0)
	if err := repo.Unlock(ctx, "first_task", first); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	// Second unlock must not overwrite the original timestamp.
	if err := repo.Unlock(ctx, "first_task", first.Add(time.Hour)); err != nil {
		t.Fatalf("re-unlock: %v", err)
	}

	ledger, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ledger.Unlocked("first_task") {
		t.Fatal("expected first_task unlocked")
	}
	if !ledger["first_task"].Equal(first) {
		t.Errorf("unlock time = %v, want %v", ledger["first_task"], first)
	}
}
