package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileLoadedMsg struct {
	ledger   *domain.Ledger
	attempts []*domain.AttemptLog
	err      error
}

const profileHistoryLimit = 8

// profileView shows the ledger stats, the achievement board, and the recent
// attempt history.
type profileView struct {
	state    *SharedState
	ledger   *domain.Ledger
	attempts []*domain.AttemptLog
	err      error
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *profileView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.Ledger(context.Background())
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		attempts, err := app.History.ListRecent(context.Background(), profileHistoryLimit)
		return profileLoadedMsg{ledger: ledger, attempts: attempts, err: err}
	}
}

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		v.ledger, v.attempts, v.err = msg.ledger, msg.attempts, msg.err
		return v, nil
	case refreshViewMsg:
		return v, v.Init()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, popView()
		}
	}
	return v, nil
}

func (v *profileView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.ledger == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Profile") + "\n\n")
	b.WriteString("  " + formatter.StatsLine(v.ledger) + "\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d lessons completed\n\n",
		formatter.Dim("progress:"), len(v.ledger.CompletedLessons), v.state.App.Catalog.LessonCount()))

	b.WriteString("  " + formatter.Bold("Achievements") + "\n")
	for _, a := range catalog.Achievements {
		if v.ledger.HasAchievement(a.ID) {
			b.WriteString("    " + formatter.StyleYellow.Render("🏆 "+a.Title) + "  " + formatter.Dim(a.Description) + "\n")
		} else {
			b.WriteString("    " + formatter.Dim("🔒 "+a.Title+"  "+a.Description) + "\n")
		}
	}

	b.WriteString("\n  " + formatter.Bold("Recent Lessons") + "\n")
	if len(v.attempts) == 0 {
		b.WriteString("    " + formatter.Dim("nothing yet, go finish a lesson") + "\n")
	}
	for _, a := range v.attempts {
		kind := ""
		if a.Practice {
			kind = formatter.Dim(" (practice)")
		}
		b.WriteString(fmt.Sprintf("    %s%s  %s  %s\n",
			a.Title, kind,
			formatter.StyleYellow.Render(fmt.Sprintf("+%d XP", a.XPEarned)),
			formatter.Dim(fmt.Sprintf("%d✓ %d✗ · %s", a.Correct, a.Wrong, a.CompletedAt.Format("Jan 2 15:04")))))
	}
	return b.String()
}
