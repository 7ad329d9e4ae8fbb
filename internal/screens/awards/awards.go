// Package awards lists every achievement with its locked or unlocked
// state.
package awards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/screen"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/ui/theme"
)

// AwardsScreen renders the achievement table.
type AwardsScreen struct {
	session *session.Session
}

var _ screen.Screen = (*AwardsScreen)(nil)

// New creates the achievements screen.
func New(s *session.Session) *AwardsScreen {
	return &AwardsScreen{session: s}
}

func (a *AwardsScreen) Init() tea.Cmd {
	return nil
}

func (a *AwardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AwardsScreen) View(width, height int) string {
	ledger := a.session.Ledger()

	unlocked := 0
	var rows []string
	for _, rule := range achievements.Rules() {
		rows = append(rows, renderRule(rule, ledger))
		if ledger.Unlocked(rule.ID) {
			unlocked++
		}
	}

	header := theme.Subtitle.Render(fmt.Sprintf(
		"%d of %d unlocked", unlocked, len(achievements.Rules())))

	content := header + "\n\n" + strings.Join(rows, "\n")
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderRule(rule achievements.Rule, ledger achievements.Ledger) string {
	name := fmt.Sprintf("%s %-18s", rule.Icon, rule.Name)
	if at, ok := ledger[rule.ID]; ok {
		check := lipgloss.NewStyle().Foreground(theme.Success).Render(" ✓ ")
		return theme.Body.Render(name) + check +
			theme.Hint.Render(rule.Description+"  ("+at.Format("2006-01-02")+")")
	}
	return theme.Done.Render(name) + theme.Hint.Render(" 🔒 "+rule.Description)
}

func (a *AwardsScreen) Title() string {
	return "Achievements"
}
