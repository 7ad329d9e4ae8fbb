package tasks

import (
	"testing"
	"time"
)

// mk builds a test task without going through validation.
func mk(id, subjectID, due string, pri Priority, completed bool, order int) *Task {
	return &Task{
		ID:        id,
		Title:     id,
		SubjectID: subjectID,
		DueDate:   due,
		Priority:  pri,
		Completed: completed,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(order) * time.Minute),
	}
}

func ids(ts []*Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProject_FiltersBySubjectAndCompletion(t *testing.T) {
	all := []*Task{
		mk("a", "s1", "", PriorityMedium, false, 0),
		mk("b", "s2", "", PriorityMedium, false, 1),
		mk("c", "s1", "", PriorityMedium, true, 2),
	}

	got := Project(all, "s1", FilterPending, SortDate)
	if !equalIDs(ids(got), "a") {
		t.Errorf("pending view = %v, want [a]", ids(got))
	}

	got = Project(all, "s1", FilterCompleted, SortDate)
	if !equalIDs(ids(got), "c") {
		t.Errorf("completed view = %v, want [c]", ids(got))
	}

	got = Project(all, "s1", FilterAll, SortDate)
	if !equalIDs(ids(got), "a", "c") {
		t.Errorf("all view = %v, want [a c]", ids(got))
	}

	got = Project(all, "", FilterAll, SortDate)
	if !equalIDs(ids(got), "a", "b", "c") {
		t.Errorf("every-subject view = %v, want [a b c]", ids(got))
	}
}

func TestProject_DateSort(t *testing.T) {
	all := []*Task{
		mk("late", "s1", "2025-04-01", PriorityMedium, false, 0),
		mk("none", "s1", "", PriorityMedium, false, 1),
		mk("soon", "s1", "2025-03-12", PriorityMedium, false, 2),
	}

	got := Project(all, "s1", FilterAll, SortDate)
	if !equalIDs(ids(got), "soon", "late", "none") {
		t.Errorf("date sort = %v, want [soon late none]", ids(got))
	}
}

func TestProject_PrioritySortStable(t *testing.T) {
	all := []*Task{
		mk("m1", "s1", "", PriorityMedium, false, 0),
		mk("h1", "s1", "", PriorityHigh, false, 1),
		mk("l1", "s1", "", PriorityLow, false, 2),
		mk("h2", "s1", "", PriorityHigh, false, 3),
		mk("m2", "s1", "", PriorityMedium, false, 4),
	}

	got := Project(all, "s1", FilterAll, SortPriority)
	if !equalIDs(ids(got), "h1", "h2", "m1", "m2", "l1") {
		t.Errorf("priority sort = %v, want [h1 h2 m1 m2 l1]", ids(got))
	}
}

func TestProject_Pure(t *testing.T) {
	all := []*Task{
		mk("b", "s1", "2025-04-01", PriorityLow, false, 0),
		mk("a", "s1", "2025-03-01", PriorityHigh, false, 1),
	}

	first := ids(Project(all, "s1", FilterAll, SortPriority))
	second := ids(Project(all, "s1", FilterAll, SortPriority))

	if !equalIDs(first, second...) {
		t.Errorf("repeated projection differs: %v vs %v", first, second)
	}
	if !equalIDs(ids(all), "b", "a") {
		t.Errorf("input mutated: %v", ids(all))
	}
}

func TestReorder(t *testing.T) {
	all := []*Task{
		mk("a", "", "", PriorityMedium, false, 0),
		mk("b", "", "", PriorityMedium, false, 1),
		mk("c", "", "", PriorityMedium, false, 2),
	}

	got, moved := Reorder(all, "c", "a")
	if !moved {
		t.Fatal("expected move")
	}
	if !equalIDs(ids(got), "c", "a", "b") {
		t.Errorf("order = %v, want [c a b]", ids(got))
	}
}

func TestReorder_UnknownIDs(t *testing.T) {
	all := []*Task{mk("a", "", "", PriorityMedium, false, 0)}

	if _, moved := Reorder(all, "a", "ghost"); moved {
		t.Error("unknown dest should be a no-op")
	}
	if _, moved := Reorder(all, "ghost", "a"); moved {
		t.Error("unknown src should be a no-op")
	}
	if _, moved := Reorder(all, "a", "a"); moved {
		t.Error("src == dest should be a no-op")
	}
}

func TestRemoveSubjectTasks(t *testing.T) {
	all := []*Task{
		mk("a", "s1", "", PriorityMedium, false, 0),
		mk("b", "s2", "", PriorityMedium, false, 1),
		mk("c", "s1", "", PriorityMedium, false, 2),
		mk("d", "", "", PriorityMedium, false, 3),
	}

	got := RemoveSubjectTasks(all, "s1")
	if !equalIDs(ids(got), "b", "d") {
		t.Errorf("after cascade = %v, want [b d]", ids(got))
	}
}

func TestCountCompleted(t *testing.T) {
	all := []*Task{
		mk("a", "", "", PriorityMedium, true, 0),
		mk("b", "", "", PriorityMedium, false, 1),
		mk("c", "", "", PriorityMedium, true, 2),
	}
	if got := CountCompleted(all); got != 2 {
		t.Errorf("CountCompleted = %d, want 2", got)
	}
}
