// Package analytics shows the productivity breakdown: composite score,
// completion, focused minutes and the task mix by priority.
package analytics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/tasks"
	"github.com/studyos/studyos/internal/ui/components"
	"github.com/studyos/studyos/internal/ui/theme"
)

// AnalyticsScreen renders the statistics view.
type AnalyticsScreen struct {
	session *session.Session
}

var _ screen.Screen = (*AnalyticsScreen)(nil)

// New creates the analytics screen.
func New(s *session.Session) *AnalyticsScreen {
	return &AnalyticsScreen{session: s}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AnalyticsScreen) View(width, height int) string {
	snap := a.session.Snapshot()

	var rows []string
	rows = append(rows, components.NewProgressBar("Productivity", float64(snap.Score)/100, true, 48).View())
	rows = append(rows, components.NewProgressBar("Completion  ", float64(snap.CompletionPct)/100, true, 48).View())
	rows = append(rows, "")
	rows = append(rows, theme.Body.Render(fmt.Sprintf(
		"Tasks        %d done / %d total", snap.CompletedTasks, snap.TotalTasks)))
	rows = append(rows, theme.Body.Render(fmt.Sprintf(
		"This week    %d focused minutes", snap.WeekMinutes)))
	rows = append(rows, theme.Body.Render(fmt.Sprintf(
		"Focus        %d sessions today, %d all time", snap.PomodorosToday, snap.TotalPomodoros)))
	rows = append(rows, theme.Body.Render(fmt.Sprintf(
		"Focus XP     %d earned from sessions", snap.PomoXPTotal)))
	rows = append(rows, "")
	rows = append(rows, theme.Subtitle.Render("Priority mix"))
	rows = append(rows, renderPriorityMix(snap.PriorityCounts))

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderPriorityMix(counts map[tasks.Priority]int) string {
	high := theme.PriorityHigh.Render(fmt.Sprintf("high %d", counts[tasks.PriorityHigh]))
	medium := theme.PriorityMedium.Render(fmt.Sprintf("medium %d", counts[tasks.PriorityMedium]))
	low := theme.PriorityLow.Render(fmt.Sprintf("low %d", counts[tasks.PriorityLow]))
	return high + "   " + medium + "   " + low
}

func (a *AnalyticsScreen) Title() string {
	return "Analytics"
}
