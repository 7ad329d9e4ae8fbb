// Package dashboard is the landing screen: level progress, today's
// numbers, the latest tasks, and the navigation menu.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/router"
	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/screens/analytics"
	"github.com/studyos/studyos/internal/screens/awards"
	"github.com/studyos/studyos/internal/screens/tasklist"
	"github.com/studyos/studyos/internal/screens/timer"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/tasks"
	"github.com/studyos/studyos/internal/ui/components"
	"github.com/studyos/studyos/internal/ui/theme"
)

const recentTaskCount = 5

// DashboardScreen is the root screen of the application.
type DashboardScreen struct {
	session *session.Session
	menu    components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for the given session.
func New(s *session.Session) *DashboardScreen {
	items := []components.MenuItem{
		{Label: "TASKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tasklist.New(s)}
			}
		}},
		{Label: "FOCUS TIMER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: timer.New(s)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: awards.New(s)}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analytics.New(s)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &DashboardScreen{
		session: s,
		menu:    components.NewMenu(items),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	snap := d.session.Snapshot()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("STUDYOS"))
	sections = append(sections, theme.Subtitle.Width(width).Render("your study companion"))

	xpBar := components.NewProgressBar(
		fmt.Sprintf("Lv %d %s", snap.Level, snap.LevelName),
		xpPercent(snap), true, 52)
	stats := fmt.Sprintf("score %d   🔥 %d day streak   %d min this week   %d focus today",
		snap.Score, snap.Streak, snap.WeekMinutes, snap.PomodorosToday)

	card := theme.Card.Render(xpBar.View() + "\n" + theme.Hint.Render(stats))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	recent := d.renderRecent()
	if recent != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, recent))
	}

	menu := d.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) renderRecent() string {
	recent := d.session.RecentTasks(recentTaskCount)
	if len(recent) == 0 {
		return theme.Hint.Render("No tasks yet. Add one from the TASKS screen.")
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Recent tasks") + "\n")
	for _, t := range recent {
		b.WriteString(renderTaskLine(t, d.session.SubjectName(t.SubjectID)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTaskLine(t *tasks.Task, subjectName string) string {
	mark := "[ ]"
	style := theme.Body
	if t.Completed {
		mark = "[x]"
		style = theme.Done
	}
	line := fmt.Sprintf("%s %s", mark, t.Title)
	if subjectName != "" {
		line += theme.Hint.Render("  · " + subjectName)
	}
	return style.Render(line)
}

func xpPercent(snap session.Snapshot) float64 {
	if snap.XPNeeded <= 0 {
		return 0
	}
	return float64(snap.XP) / float64(snap.XPNeeded)
}
