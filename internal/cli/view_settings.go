package cli

import (
	"context"

	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type settingsLoadedMsg struct {
	ledger *domain.Ledger
	err    error
}

type settingsSavedMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

// settingsView edits difficulty and theme through a huh form, and hosts the
// reset-everything action behind a confirmation.
type settingsView struct {
	state *SharedState
	form  *huh.Form
	err   error

	difficulty string
	theme      string
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset progress")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *settingsView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.Ledger(context.Background())
		return settingsLoadedMsg{ledger: ledger, err: err}
	}
}

// buildForm creates the settings form pre-set to the ledger's current values.
func (v *settingsView) buildForm(l *domain.Ledger) tea.Cmd {
	v.difficulty = string(l.Difficulty)
	v.theme = string(l.Theme)

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Difficulty").
				Description("Easy plays without hearts at stake.").
				Options(
					huh.NewOption("Easy", string(domain.DifficultyEasy)),
					huh.NewOption("Medium", string(domain.DifficultyMedium)),
					huh.NewOption("Hard", string(domain.DifficultyHard)),
				).
				Value(&v.difficulty),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", string(domain.ThemeDark)),
					huh.NewOption("Light", string(domain.ThemeLight)),
				).
				Value(&v.theme),
		),
	).WithTheme(drillHuhTheme()).WithShowHelp(false)

	return v.form.Init()
}

func (v *settingsView) save() tea.Cmd {
	app := v.state.App
	d := domain.Difficulty(v.difficulty)
	theme := domain.Theme(v.theme)
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Progress.SetDifficulty(ctx, d); err != nil {
			return settingsSavedMsg{err: err}
		}
		_, err := app.Progress.SetTheme(ctx, theme)
		return settingsSavedMsg{err: err}
	}
}

func (v *settingsView) confirmReset() tea.Cmd {
	app := v.state.App
	reset := func() tea.Msg {
		_, err := app.Progress.ResetAll(context.Background())
		return resetDoneMsg{err: err}
	}
	confirm := newConfirmView(v.state, "Reset Everything?",
		"All progress, XP, gems and achievements will be wiped. This cannot be undone.", reset)
	return pushView(confirm)
}

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, v.buildForm(msg.ledger)

	case settingsSavedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, tea.Batch(popView(), refreshViews(), showToast("Settings saved."))

	case resetDoneMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, tea.Batch(popView(), refreshViews(), showToast("Progress reset."))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, popView()
		case "ctrl+r":
			return v, v.confirmReset()
		}
	}

	if v.form == nil {
		return v, nil
	}
	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		return v, v.save()
	}
	return v, cmd
}

func (v *settingsView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.form == nil {
		return "\n  " + formatter.Dim("Loading...")
	}
	return "\n  " + formatter.Header("Settings") + "\n\n" + v.form.View()
}
