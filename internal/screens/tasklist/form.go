package tasklist

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/tasks"
	"github.com/studyos/studyos/internal/ui/components"
	"github.com/studyos/studyos/internal/ui/theme"
)

var priorities = []tasks.Priority{tasks.PriorityLow, tasks.PriorityMedium, tasks.PriorityHigh}

const (
	fieldTitle = iota
	fieldDue
	fieldMinutes
	fieldPriority
	fieldCount
)

// addForm collects the fields for a new task.
type addForm struct {
	title       components.TextInput
	due         components.TextInput
	minutes     components.TextInput
	priorityIdx int
	focus       int
	errText     string
}

func newAddForm() addForm {
	return addForm{
		title:       components.NewTextInput("What needs doing?", false, 80),
		due:         components.NewTextInput("Due date (YYYY-MM-DD, optional)", false, 10),
		minutes:     components.NewTextInput("Estimated minutes (optional)", true, 4),
		priorityIdx: 1, // medium
	}
}

func (t *TaskListScreen) updateAddTask(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, t.form.forward(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		t.form.focus = (t.form.focus + 1) % fieldCount
		return t, t.form.focusCmd()
	case "shift+tab", "up":
		t.form.focus = (t.form.focus + fieldCount - 1) % fieldCount
		return t, t.form.focusCmd()
	case "left":
		if t.form.focus == fieldPriority && t.form.priorityIdx > 0 {
			t.form.priorityIdx--
		}
		return t, nil
	case "right":
		if t.form.focus == fieldPriority && t.form.priorityIdx < len(priorities)-1 {
			t.form.priorityIdx++
		}
		return t, nil
	case "enter":
		return t, t.submitTask()
	}

	if t.form.focus != fieldPriority {
		return t, t.form.forward(msg)
	}
	return t, nil
}

func (t *TaskListScreen) submitTask() tea.Cmd {
	minutes, _ := t.form.minutes.NumericValue()
	err := t.session.AddTask(
		t.form.title.Value(),
		t.subjectID(),
		strings.TrimSpace(t.form.due.Value()),
		priorities[t.form.priorityIdx],
		minutes,
	)
	if errors.Is(err, tasks.ErrEmptyTitle) {
		t.form.errText = "A task needs a title."
		t.form.title.Submit(false)
		return nil
	}
	t.mode = modeBrowse
	t.status = "Task added."
	return nil
}

// forward routes a message to the focused text input.
func (f *addForm) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	case fieldMinutes:
		f.minutes, cmd = f.minutes.Update(msg)
	}
	return cmd
}

func (f *addForm) focusCmd() tea.Cmd {
	f.title.Model.Blur()
	f.due.Model.Blur()
	f.minutes.Model.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Model.Focus()
	case fieldDue:
		return f.due.Model.Focus()
	case fieldMinutes:
		return f.minutes.Model.Focus()
	}
	return nil
}

func (t *TaskListScreen) viewAddTask(width, height int) string {
	f := &t.form

	var rows []string
	rows = append(rows, theme.Title.Render("New task"), "")
	rows = append(rows, fieldLabel("Title", f.focus == fieldTitle)+f.title.View())
	rows = append(rows, fieldLabel("Due", f.focus == fieldDue)+f.due.View())
	rows = append(rows, fieldLabel("Minutes", f.focus == fieldMinutes)+f.minutes.View())
	rows = append(rows, fieldLabel("Priority", f.focus == fieldPriority)+renderPriorityPicker(f.priorityIdx))
	if f.errText != "" {
		rows = append(rows, "", theme.PriorityHigh.Render(f.errText))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(name string, focused bool) string {
	style := theme.Hint
	if focused {
		style = theme.Selected
	}
	return style.Render(padRight(name, 10))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func renderPriorityPicker(active int) string {
	parts := make([]string, 0, len(priorities))
	for i, p := range priorities {
		label := string(p)
		if i == active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (t *TaskListScreen) updateAddSubject(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if ok && kmsg.String() == "enter" {
		err := t.session.AddSubject(t.subjectInput.Value(), "")
		if errors.Is(err, tasks.ErrEmptyName) {
			t.subjectInput.Submit(false)
			return t, nil
		}
		t.mode = modeBrowse
		t.status = "Subject added."
		return t, nil
	}

	var cmd tea.Cmd
	t.subjectInput, cmd = t.subjectInput.Update(msg)
	return t, cmd
}

func (t *TaskListScreen) viewAddSubject(width, height int) string {
	card := theme.Card.Render(
		theme.Title.Render("New subject") + "\n\n" + t.subjectInput.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// HandleEsc cancels an open form instead of leaving the screen.
func (t *TaskListScreen) HandleEsc() bool {
	if t.mode != modeBrowse {
		t.mode = modeBrowse
		return true
	}
	return false
}
