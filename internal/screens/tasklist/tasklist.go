// Package tasklist is the task management screen: browse, filter and
// sort tasks, add and complete them, and manage subjects.
package tasklist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/tasks"
	"github.com/studyos/studyos/internal/ui/components"
	"github.com/studyos/studyos/internal/ui/layout"
	"github.com/studyos/studyos/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddTask
	modeAddSubject
)

var filterModes = []tasks.FilterMode{tasks.FilterAll, tasks.FilterPending, tasks.FilterCompleted}
var sortModes = []tasks.SortMode{tasks.SortDate, tasks.SortPriority}

// TaskListScreen shows tasks for the selected subject.
type TaskListScreen struct {
	session *session.Session

	cursor     int
	subjectIdx int // 0 = every subject, i>0 = subjects[i-1]
	filterTabs components.Tabs
	sortTabs   components.Tabs

	mode         mode
	form         addForm
	subjectInput components.TextInput
	status       string
}

var _ screen.Screen = (*TaskListScreen)(nil)
var _ screen.KeyHintProvider = (*TaskListScreen)(nil)

// New creates the task list screen.
func New(s *session.Session) *TaskListScreen {
	return &TaskListScreen{
		session:    s,
		filterTabs: components.NewTabs("All", "Pending", "Done"),
		sortTabs:   components.NewTabs("Date", "Priority"),
	}
}

func (t *TaskListScreen) Init() tea.Cmd {
	return nil
}

// subjectID returns the active subject filter, "" for every subject.
func (t *TaskListScreen) subjectID() string {
	if t.subjectIdx == 0 {
		return ""
	}
	subjects := t.session.Subjects()
	if t.subjectIdx-1 >= len(subjects) {
		return ""
	}
	return subjects[t.subjectIdx-1].ID
}

// visible returns the projected task view under the current tabs.
func (t *TaskListScreen) visible() []*tasks.Task {
	return t.session.TasksFor(
		t.subjectID(),
		filterModes[t.filterTabs.Active],
		sortModes[t.sortTabs.Active],
	)
}

func (t *TaskListScreen) clampCursor() {
	n := len(t.visible())
	if t.cursor >= n {
		t.cursor = n - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TaskListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch t.mode {
	case modeAddTask:
		return t.updateAddTask(msg)
	case modeAddSubject:
		return t.updateAddSubject(msg)
	}
	return t.updateBrowse(msg)
}

func (t *TaskListScreen) updateBrowse(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	t.status = ""

	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.visible())-1 {
			t.cursor++
		}
	case "tab":
		t.subjectIdx = (t.subjectIdx + 1) % (len(t.session.Subjects()) + 1)
		t.cursor = 0
	case "f":
		t.filterTabs.Next()
		t.clampCursor()
	case "o":
		t.sortTabs.Next()
		t.clampCursor()
	case "enter", "space":
		if cur := t.current(); cur != nil {
			t.session.ToggleTask(cur.ID)
		}
	case "d":
		if cur := t.current(); cur != nil {
			t.session.DeleteTask(cur.ID)
			t.clampCursor()
		}
	case "K", "shift+up":
		t.moveUp()
	case "J", "shift+down":
		t.moveDown()
	case "a":
		t.mode = modeAddTask
		t.form = newAddForm()
		return t, t.form.title.Init()
	case "s":
		t.mode = modeAddSubject
		t.subjectInput = components.NewTextInput("Subject name", false, 40)
		return t, t.subjectInput.Init()
	case "x":
		if id := t.subjectID(); id != "" {
			t.session.DeleteSubject(id)
			t.subjectIdx = 0
			t.clampCursor()
		}
	}
	return t, nil
}

func (t *TaskListScreen) current() *tasks.Task {
	view := t.visible()
	if t.cursor < 0 || t.cursor >= len(view) {
		return nil
	}
	return view[t.cursor]
}

// moveUp shifts the selected task one slot earlier in the manual
// order, using its on-screen neighbor as the anchor.
func (t *TaskListScreen) moveUp() {
	view := t.visible()
	if t.cursor <= 0 || t.cursor >= len(view) {
		return
	}
	t.session.ReorderTask(view[t.cursor].ID, view[t.cursor-1].ID)
	t.cursor--
}

func (t *TaskListScreen) moveDown() {
	view := t.visible()
	if t.cursor < 0 || t.cursor >= len(view)-1 {
		return
	}
	t.session.ReorderTask(view[t.cursor+1].ID, view[t.cursor].ID)
	t.cursor++
}

func (t *TaskListScreen) View(width, height int) string {
	switch t.mode {
	case modeAddTask:
		return t.viewAddTask(width, height)
	case modeAddSubject:
		return t.viewAddSubject(width, height)
	}
	return t.viewBrowse(width, height)
}

func (t *TaskListScreen) viewBrowse(width, height int) string {
	var b strings.Builder

	b.WriteString(t.renderSubjectTabs() + "\n")
	b.WriteString(theme.Hint.Render("filter ") + t.filterTabs.View() +
		theme.Hint.Render("   sort ") + t.sortTabs.View() + "\n\n")

	view := t.visible()
	if len(view) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing here. Press a to add a task."))
	}
	for i, task := range view {
		b.WriteString(t.renderRow(task, i == t.cursor) + "\n")
	}

	if t.status != "" {
		b.WriteString("\n" + theme.Hint.Render(t.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (t *TaskListScreen) renderSubjectTabs() string {
	labels := []string{"All"}
	for _, s := range t.session.Subjects() {
		labels = append(labels, s.Name)
	}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == t.subjectIdx {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (t *TaskListScreen) renderRow(task *tasks.Task, selected bool) string {
	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}

	prio := priorityStyle(task.Priority).Render(string(task.Priority))

	line := fmt.Sprintf("%s %-40s %s", mark, truncate(task.Title, 40), prio)
	if task.DueDate != "" {
		line += theme.Hint.Render("  due " + task.DueDate)
	}
	if name := t.session.SubjectName(task.SubjectID); name != "" && t.subjectIdx == 0 {
		line += theme.Hint.Render("  · " + name)
	}

	switch {
	case selected:
		return theme.Selected.Render("▸ " + line)
	case task.Completed:
		return "  " + theme.Done.Render(line)
	default:
		return "  " + theme.Body.Render(line)
	}
}

func priorityStyle(p tasks.Priority) lipgloss.Style {
	switch p {
	case tasks.PriorityHigh:
		return theme.PriorityHigh
	case tasks.PriorityLow:
		return theme.PriorityLow
	default:
		return theme.PriorityMedium
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func (t *TaskListScreen) Title() string {
	return "Tasks"
}

func (t *TaskListScreen) KeyHints() []layout.KeyHint {
	switch t.mode {
	case modeAddTask, modeAddSubject:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "a", Description: "Add"},
		{Key: "d", Description: "Delete"},
		{Key: "f/o", Description: "Filter/Sort"},
		{Key: "J/K", Description: "Move"},
		{Key: "Esc", Description: "Back"},
	}
}
