// Package timer is the focus timer screen: a two-phase countdown with
// presets. The countdown itself advances on the application heartbeat;
// this screen only issues commands and renders the state.
package timer

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/pomodoro"
	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/ui/components"
	"github.com/studyos/studyos/internal/ui/layout"
	"github.com/studyos/studyos/internal/ui/theme"
)

// TimerScreen renders the focus timer.
type TimerScreen struct {
	session *session.Session
}

var _ screen.Screen = (*TimerScreen)(nil)
var _ screen.KeyHintProvider = (*TimerScreen)(nil)

// New creates the timer screen.
func New(s *session.Session) *TimerScreen {
	return &TimerScreen{session: s}
}

func (t *TimerScreen) Init() tea.Cmd {
	return nil
}

func (t *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "space", "s":
		if t.session.Snapshot().TimerRunning {
			t.session.TimerPause()
		} else {
			t.session.TimerStart()
		}
	case "r":
		t.session.TimerReset()
	case "n":
		t.session.TimerSkip()
	case "1", "2", "3":
		presets := pomodoro.Presets()
		idx := int(kmsg.String()[0] - '1')
		if idx < len(presets) {
			t.session.TimerSetPreset(presets[idx])
		}
	}
	return t, nil
}

func (t *TimerScreen) View(width, height int) string {
	snap := t.session.Snapshot()

	phaseStyle := theme.Title
	if snap.TimerPhase == pomodoro.PhaseBreak {
		phaseStyle = theme.Title.Foreground(theme.Success)
	}

	state := "paused"
	if snap.TimerRunning {
		state = "running"
	}

	var rows []string
	rows = append(rows, phaseStyle.Render(snap.TimerPhase.String()))
	rows = append(rows, "")
	rows = append(rows, renderClock(snap.TimerRemaining))
	rows = append(rows, theme.Hint.Render(state))
	rows = append(rows, "")

	bar := components.NewProgressBar("", phasePercent(snap), false, 40)
	if snap.TimerPhase == pomodoro.PhaseBreak {
		bar.Color = theme.Success
	}
	rows = append(rows, bar.View())
	rows = append(rows, "")
	rows = append(rows, theme.Hint.Render(fmt.Sprintf(
		"%d today   %d total", snap.PomodorosToday, snap.TotalPomodoros)))
	rows = append(rows, "")
	rows = append(rows, renderPresets())

	card := theme.Card.Align(lipgloss.Center).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderClock(seconds int) string {
	text := fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(text)
}

func phasePercent(snap session.Snapshot) float64 {
	if snap.TimerTotal <= 0 {
		return 0
	}
	return float64(snap.TimerTotal-snap.TimerRemaining) / float64(snap.TimerTotal)
}

func renderPresets() string {
	parts := make([]string, 0, 3)
	for i, p := range pomodoro.Presets() {
		parts = append(parts, theme.Hint.Render(
			fmt.Sprintf("%d %s %d/%d", i+1, p.Name, p.WorkMinutes, p.BreakMinutes)))
	}
	return strings.Join(parts, "   ")
}

func (t *TimerScreen) Title() string {
	return "Focus Timer"
}

func (t *TimerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Start/Pause"},
		{Key: "r", Description: "Reset"},
		{Key: "n", Description: "Skip phase"},
		{Key: "1-3", Description: "Preset"},
		{Key: "Esc", Description: "Back"},
	}
}
