// Package app owns the root Bubble Tea model: the screen router, the
// one-second heartbeat that drives the focus timer, and the notice
// banner for level-ups and achievement unlocks.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/router"
	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/screens/dashboard"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/ui/layout"
)

// noticeSeconds is how long a banner stays up.
const noticeSeconds = 4

// heartbeatMsg arrives once per second while the program runs.
type heartbeatMsg time.Time

func heartbeat() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return heartbeatMsg(t)
	})
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session *session.Session
	router  *router.Router
	width   int
	height  int

	notice    string
	noticeTTL int
}

// newAppModel creates the root model with the dashboard on the stack.
func newAppModel(s *session.Session) AppModel {
	return AppModel{
		session: s,
		router:  router.New(dashboard.New(s)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return heartbeat()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case heartbeatMsg:
		m.session.TimerTick()
		if m.noticeTTL > 0 {
			m.noticeTTL--
			if m.noticeTTL == 0 {
				m.notice = ""
			}
		}
		m.collectEvents()
		return m, heartbeat()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandleEsc() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	m.collectEvents()
	return m, cmd
}

// collectEvents turns pending session events into the notice banner.
func (m *AppModel) collectEvents() {
	ev := m.session.DrainEvents()
	switch {
	case ev.LeveledUp:
		snap := m.session.Snapshot()
		m.setNotice(fmt.Sprintf("⬆ Level up! You are now Lv %d %s", snap.Level, snap.LevelName))
	case len(ev.Unlocked) > 0:
		r := ev.Unlocked[len(ev.Unlocked)-1]
		m.setNotice(fmt.Sprintf("%s Achievement unlocked: %s", r.Icon, r.Name))
	case ev.SyncWarning != "":
		m.setNotice("⚠ sync issue: " + ev.SyncWarning)
	}
}

func (m *AppModel) setNotice(text string) {
	m.notice = text
	m.noticeTTL = noticeSeconds
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.session.Snapshot()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:     snap.Level,
		LevelName: snap.LevelName,
		Streak:    snap.Streak,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(), m.width)
	if m.notice != "" {
		footer = layout.RenderNotice(m.notice, m.width) + "\n" + footer
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program over an open session. Today's
// activity is recorded before the first frame.
func Run(s *session.Session) error {
	s.Activate()

	p := tea.NewProgram(newAppModel(s))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
