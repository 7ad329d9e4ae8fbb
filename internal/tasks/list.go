package tasks

// FindByID returns the task with the given ID, nil if absent.
func FindByID(ts []*Task, id string) *Task {
	for _, t := range ts {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Remove returns ts without the task of the given ID. The input slice
// is not modified. Removing an unknown ID returns an equal list.
func Remove(ts []*Task, id string) []*Task {
	out := make([]*Task, 0, len(ts))
	for _, t := range ts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// RemoveSubjectTasks returns ts without every task referencing the
// subject. Used by the cascade on subject deletion.
func RemoveSubjectTasks(ts []*Task, subjectID string) []*Task {
	out := make([]*Task, 0, len(ts))
	for _, t := range ts {
		if t.SubjectID != subjectID {
			out = append(out, t)
		}
	}
	return out
}

// CountCompleted returns the number of completed tasks.
func CountCompleted(ts []*Task) int {
	n := 0
	for _, t := range ts {
		if t.Completed {
			n++
		}
	}
	return n
}

// Reorder moves the task srcID immediately before destID in the global
// sequence, defining the persisted manual order. Both indices are
// resolved before the move, matching drag-and-drop semantics: dropping
// onto a later task places the moved task just before it. Returns the
// new order and whether anything moved; unknown IDs or src == dest are
// a no-op.
func Reorder(ts []*Task, srcID, destID string) ([]*Task, bool) {
	if srcID == destID {
		return ts, false
	}
	srcIdx, destIdx := -1, -1
	for i, t := range ts {
		switch t.ID {
		case srcID:
			srcIdx = i
		case destID:
			destIdx = i
		}
	}
	if srcIdx < 0 || destIdx < 0 {
		return ts, false
	}

	out := make([]*Task, 0, len(ts))
	out = append(out, ts[:srcIdx]...)
	out = append(out, ts[srcIdx+1:]...)

	moved := ts[srcIdx]
	if destIdx > len(out) {
		destIdx = len(out)
	}
	out = append(out[:destIdx], append([]*Task{moved}, out[destIdx:]...)...)
	return out, true
}
