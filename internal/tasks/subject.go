package tasks

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DefaultSubjectColor is used when no color is picked.
const DefaultSubjectColor = "#7c6af7"

// ErrEmptyName rejects subjects whose name is empty after trimming.
var ErrEmptyName = errors.New("subject name is empty")

// Subject groups tasks under a named, colored heading. The color is a
// display token, opaque to the core.
type Subject struct {
	ID    string
	Name  string
	Color string
}

// NewSubject validates the name and builds a subject.
func NewSubject(name, color string) (*Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if color == "" {
		color = DefaultSubjectColor
	}
	return &Subject{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}, nil
}
