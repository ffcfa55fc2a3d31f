package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/drill/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastDuration is how long a transient notification stays on screen.
const toastDuration = 3 * time.Second

// appModel is the root bubbletea Model for the TUI. It manages a view stack,
// the breadcrumb/help chrome, and the transient toast banner.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient notification banner. toastGen invalidates stale clear
	// timers when a newer toast replaces an older one.
	toast    string
	toastGen int
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}

	// Start with the lesson path as the home view.
	m.viewStack = []View{newPathView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to every view so stale data under the top view reloads.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case toastMsg:
		m.toast = msg.text
		m.toastGen++
		gen := m.toastGen
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastClearMsg{gen: gen}
		})

	case toastClearMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(" " + formatter.Header("drill") + formatter.Dim(" · "+m.breadcrumb()) + "\n")

	if m.toast != "" {
		banner := lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Background(formatter.ColorHeader).
			Padding(0, 1).
			Render("★ " + m.toast)
		b.WriteString(" " + banner + "\n")
	}

	if v := m.activeView(); v != nil {
		b.WriteString(v.View())
		b.WriteString("\n " + m.helpLine(v))
	}
	return b.String()
}

func (m appModel) breadcrumb() string {
	parts := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		parts = append(parts, v.Title())
	}
	return strings.Join(parts, " › ")
}

func (m appModel) helpLine(v View) string {
	var parts []string
	for _, b := range v.ShortHelp() {
		parts = append(parts, formatter.StyleHeader.Render(b.Help().Key)+formatter.Dim(" "+b.Help().Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
