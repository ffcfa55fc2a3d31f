package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/engine"
	"github.com/alexanderramin/drill/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

type pathLoadedMsg struct {
	ledger *domain.Ledger
	err    error
}

type practiceBuiltMsg struct {
	lesson *domain.Lesson
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// pathView is the home screen: the linear lesson path with the stats header.
type pathView struct {
	state   *SharedState
	ledger  *domain.Ledger
	loading bool
	err     error

	// cursor indexes into the flattened lesson list.
	cursor  int
	lessons []pathEntry

	scroll int
}

type pathEntry struct {
	unitIdx   int
	lessonIdx int
}

func newPathView(state *SharedState) *pathView {
	v := &pathView{state: state, loading: true}
	for ui := range state.App.Catalog.Units {
		for li := range state.App.Catalog.Units[ui].Lessons {
			v.lessons = append(v.lessons, pathEntry{unitIdx: ui, lessonIdx: li})
		}
	}
	return v
}

func (v *pathView) ID() ViewID    { return ViewPath }
func (v *pathView) Title() string { return "Learn" }

func (v *pathView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "practice")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shop")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "profile")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "docs")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "settings")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *pathView) Init() tea.Cmd {
	return v.loadData()
}

func (v *pathView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.Ledger(context.Background())
		return pathLoadedMsg{ledger: ledger, err: err}
	}
}

func (v *pathView) buildPractice() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		lesson, err := app.Practice.BuildLesson(context.Background())
		return practiceBuiltMsg{lesson: lesson, err: err}
	}
}

func (v *pathView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case pathLoadedMsg:
		v.loading = false
		v.ledger = msg.ledger
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case practiceBuiltMsg:
		if msg.err != nil {
			if msg.err == service.ErrNoPracticePool {
				return v, showToast("Complete a lesson first, then come back to practice.")
			}
			v.err = msg.err
			return v, nil
		}
		return v, pushView(newQuizView(v.state, msg.lesson, true))

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *pathView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return v, func() tea.Msg { return quitMsg{} }
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.lessons)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.startSelected()
	case "p":
		return v, v.buildPractice()
	case "s":
		return v, pushView(newShopView(v.state))
	case "o":
		return v, pushView(newProfileView(v.state))
	case "d":
		return v, pushView(newDocsView(v.state, ""))
	case "g":
		return v, pushView(newSettingsView(v.state))
	}
	return v, nil
}

func (v *pathView) startSelected() tea.Cmd {
	if v.ledger == nil || v.cursor >= len(v.lessons) {
		return nil
	}
	entry := v.lessons[v.cursor]
	unit := &v.state.App.Catalog.Units[entry.unitIdx]
	lesson := &unit.Lessons[entry.lessonIdx]

	if !engine.IsLessonUnlocked(v.state.App.Catalog.Units, lesson.ID, v.ledger.HasCompleted) {
		return showToast("That lesson is still locked. Finish the one before it.")
	}
	if v.ledger.Hearts == 0 && v.ledger.Difficulty != domain.DifficultyEasy {
		return showToast("You are out of hearts! Visit the shop or practice to refill.")
	}
	return pushView(newQuizView(v.state, lesson, false))
}

func (v *pathView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StatsLine(v.ledger) + "\n\n")

	units := v.state.App.Catalog.Units
	lines := v.renderLessonLines(units)

	// Keep the cursor line visible within the content area.
	height := v.state.ContentHeight() - 4
	if height < 3 {
		height = 3
	}
	if v.cursorLine(units) < v.scroll {
		v.scroll = v.cursorLine(units)
	}
	if v.cursorLine(units) >= v.scroll+height {
		v.scroll = v.cursorLine(units) - height + 1
	}
	end := v.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[v.scroll:end], "\n"))
	return b.String()
}

// renderLessonLines flattens the curriculum into display lines: one header
// per unit, one node per lesson.
func (v *pathView) renderLessonLines(units []domain.Unit) []string {
	var lines []string
	flat := 0
	for ui := range units {
		unit := &units[ui]
		style := formatter.UnitStyle(unit.Color)
		unitUnlocked := engine.IsUnitUnlocked(units, unit.ID, v.ledger.HasCompleted)

		header := fmt.Sprintf("  Unit %d · %s", ui+1, unit.Title)
		if unitUnlocked {
			lines = append(lines, style.Bold(true).Render(header)+"  "+formatter.Dim(unit.Description))
		} else {
			lines = append(lines, formatter.Dim(header+"  🔒"))
		}

		for li := range unit.Lessons {
			lesson := &unit.Lessons[li]
			lines = append(lines, v.renderLessonLine(units, lesson, style, flat))
			flat++
		}
		lines = append(lines, "")
	}
	return lines
}

func (v *pathView) renderLessonLine(units []domain.Unit, lesson *domain.Lesson, style lipgloss.Style, flat int) string {
	completed := v.ledger.HasCompleted(lesson.ID)
	unlocked := engine.IsLessonUnlocked(units, lesson.ID, v.ledger.HasCompleted)

	marker := "○"
	label := lesson.Title
	switch {
	case completed:
		marker = formatter.StyleYellow.Render("✓")
	case !unlocked:
		marker = formatter.Dim("🔒")
		label = formatter.Dim(label)
	default:
		marker = style.Render("★")
	}

	cursor := "  "
	if flat == v.cursor {
		cursor = formatter.StyleHeader.Render("❯ ")
		label = formatter.Bold(lesson.Title)
	}
	return fmt.Sprintf("   %s%s %s %s", cursor, marker, lesson.Icon, label)
}

// cursorLine maps the lesson cursor to its display line index.
func (v *pathView) cursorLine(units []domain.Unit) int {
	line := 0
	flat := 0
	for ui := range units {
		line++ // unit header
		for range units[ui].Lessons {
			if flat == v.cursor {
				return line
			}
			line++
			flat++
		}
		line++ // blank separator
	}
	return line
}
