package tasks

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewTask(t *testing.T) {
	task, err := NewTask("  Read chapter 4  ", "subj1", "2025-03-15", PriorityHigh, 45, testNow)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	if task.Title != "Read chapter 4" {
		t.Errorf("title = %q, want trimmed %q", task.Title, "Read chapter 4")
	}
	if task.ID == "" {
		t.Error("expected non-empty ID")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if !task.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt = %v, want %v", task.CreatedAt, testNow)
	}
}

func TestNewTask_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewTask(title, "", "", PriorityMedium, 0, testNow)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("NewTask(%q) error = %v, want ErrEmptyTitle", title, err)
		}
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("x", "", "", Priority("urgent"), -5, testNow)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	if task.Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium fallback", task.Priority)
	}
	if task.EstimatedMinutes != 0 {
		t.Errorf("estimatedMinutes = %d, want 0", task.EstimatedMinutes)
	}
}

func TestNewSubject(t *testing.T) {
	s, err := NewSubject("  Math ", "")
	if err != nil {
		t.Fatalf("NewSubject: %v", err)
	}
	if s.Name != "Math" {
		t.Errorf("name = %q, want %q", s.Name, "Math")
	}
	if s.Color != DefaultSubjectColor {
		t.Errorf("color = %q, want default %q", s.Color, DefaultSubjectColor)
	}

	if _, err := NewSubject("   ", "#fff"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}
}
