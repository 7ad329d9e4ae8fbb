package components

import (
	"strings"

	"github.com/studyos/studyos/internal/ui/theme"
)

// Tabs is a horizontal row of labels with one active entry. Used for
// the filter and sort switches on the task list.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab row with the first entry active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Next cycles the active tab forward, wrapping around.
func (t *Tabs) Next() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Labels)
}

// View renders the tab row.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
