package tasks

import "sort"

// FilterMode selects tasks by completion state.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterCompleted FilterMode = "completed"
	FilterPending   FilterMode = "pending"
)

// SortMode orders a task view.
type SortMode string

const (
	// SortDate orders by ascending due date, undated tasks last.
	SortDate SortMode = "date"

	// SortPriority orders high before medium before low.
	SortPriority SortMode = "priority"
)

// Project returns the view of all tasks for a subject under the given
// filter and sort modes. An empty subjectID selects every subject.
// Pure: the input slice and its tasks are never mutated, and equal
// inputs produce identical output. Both sorts are stable, so ties keep
// their original relative order.
func Project(all []*Task, subjectID string, filter FilterMode, sortMode SortMode) []*Task {
	view := make([]*Task, 0, len(all))
	for _, t := range all {
		if subjectID != "" && t.SubjectID != subjectID {
			continue
		}
		switch filter {
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterPending:
			if t.Completed {
				continue
			}
		}
		view = append(view, t)
	}

	if sortMode == SortPriority {
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Priority.rank() < view[j].Priority.rank()
		})
	} else {
		sort.SliceStable(view, func(i, j int) bool {
			a, b := view[i].DueDate, view[j].DueDate
			if a == "" || b == "" {
				// Undated tasks sort after dated ones.
				return a != "" && b == ""
			}
			return a < b
		})
	}
	return view
}
