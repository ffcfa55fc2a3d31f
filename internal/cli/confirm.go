package cli

import (
	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmView is the confirmation boundary: a message plus a continuation
// command that only runs if the user confirms. Declining pops the view and
// performs no mutation. Nothing ever blocks on it.
type confirmView struct {
	state     *SharedState
	title     string
	message   string
	onConfirm tea.Cmd
	yes       bool
}

func newConfirmView(state *SharedState, title, message string, onConfirm tea.Cmd) *confirmView {
	return &confirmView{
		state:     state,
		title:     title,
		message:   message,
		onConfirm: onConfirm,
	}
}

func (v *confirmView) ID() ViewID    { return ViewConfirm }
func (v *confirmView) Title() string { return v.title }

func (v *confirmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *confirmView) Init() tea.Cmd { return nil }

func (v *confirmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "left", "right", "tab":
		v.yes = !v.yes
	case "y":
		return v, tea.Batch(popView(), v.onConfirm)
	case "n", "esc":
		return v, popView()
	case "enter":
		if v.yes {
			return v, tea.Batch(popView(), v.onConfirm)
		}
		return v, popView()
	}
	return v, nil
}

func (v *confirmView) View() string {
	yesBtn := "  Yes  "
	noBtn := "  No  "
	if v.yes {
		yesBtn = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Render(yesBtn)
		noBtn = formatter.Dim(noBtn)
	} else {
		yesBtn = formatter.Dim(yesBtn)
		noBtn = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Render(noBtn)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(1, 3).
		Render(formatter.Header(v.title) + "\n\n" + v.message + "\n\n" + noBtn + "   " + yesBtn)

	return lipgloss.Place(v.state.Width, v.state.ContentHeight(), lipgloss.Center, lipgloss.Center, box)
}
