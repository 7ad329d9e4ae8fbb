// Package tasks holds the task and subject entities plus the pure view
// projection (filter/sort) and list operations (reorder, cascade delete)
// over them. Entities are mutated only through the session orchestrator.
package tasks

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the task urgency tier.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// rank orders priorities for sorting: high first. Unknown tiers sort
// with medium.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// ErrEmptyTitle rejects tasks whose title is empty after trimming.
var ErrEmptyTitle = errors.New("task title is empty")

// Task is a single to-do item.
type Task struct {
	// ID is an opaque unique identifier.
	ID string

	// Title is non-empty, trimmed display text.
	Title string

	// SubjectID references the owning Subject, "" if unassigned.
	SubjectID string

	// DueDate is an optional calendar date ("2006-01-02"), "" if none.
	DueDate string

	// Priority is the urgency tier.
	Priority Priority

	// EstimatedMinutes is the expected effort, credited to the weekly
	// focused-minutes metric on completion. Never negative.
	EstimatedMinutes int

	// Completed marks the task done.
	Completed bool

	// CreatedAt orders tasks by recency and breaks sort ties.
	CreatedAt time.Time
}

// NewTask validates the inputs and builds a task. The title is trimmed
// and must be non-empty; an unknown priority falls back to medium;
// negative estimates clamp to zero.
func NewTask(title, subjectID, dueDate string, priority Priority, estimatedMinutes int, now time.Time) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !priority.Valid() {
		priority = PriorityMedium
	}
	if estimatedMinutes < 0 {
		estimatedMinutes = 0
	}
	return &Task{
		ID:               uuid.NewString(),
		Title:            title,
		SubjectID:        subjectID,
		DueDate:          dueDate,
		Priority:         priority,
		EstimatedMinutes: estimatedMinutes,
		CreatedAt:        now,
	}, nil
}
