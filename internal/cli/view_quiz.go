package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/engine"
	"github.com/alexanderramin/drill/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

type quizReadyMsg struct {
	ledger *domain.Ledger
	err    error
}

type heartLostMsg struct {
	ledger *domain.Ledger
	err    error
}

type completionAppliedMsg struct {
	result *service.CompletionResult
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// quizView drives one quiz session. The engine session holds the state
// machine; this view translates keys into session events and ledger calls.
type quizView struct {
	state    *SharedState
	lesson   *domain.Lesson
	practice bool

	session *engine.Session
	ledger  *domain.Ledger
	loading bool
	err     error

	input  textinput.Model
	cursor int // option or order-list cursor

	// match_pairs navigation
	onRight     bool
	leftCursor  int
	rightCursor int

	healthOut bool
	applied   bool
}

func newQuizView(state *SharedState, lesson *domain.Lesson, practice bool) *quizView {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 120
	ti.Width = 40
	return &quizView{
		state:    state,
		lesson:   lesson,
		practice: practice,
		loading:  true,
		input:    ti,
	}
}

func (v *quizView) ID() ViewID { return ViewQuiz }

func (v *quizView) Title() string {
	if v.practice {
		return "Practice"
	}
	return v.lesson.Title
}

func (v *quizView) ShortHelp() []key.Binding {
	if v.session != nil && v.session.Status() == engine.StatusIncorrect {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
			key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wiki")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit lesson")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select / check")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit lesson")),
	}
}

func (v *quizView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.Ledger(context.Background())
		return quizReadyMsg{ledger: ledger, err: err}
	}
}

// ── service commands ─────────────────────────────────────────────────────────

func (v *quizView) loseHeart() tea.Cmd {
	app := v.state.App
	practice := v.practice
	return func() tea.Msg {
		ledger, err := app.Progress.ApplyHealthLoss(context.Background(), practice)
		return heartLostMsg{ledger: ledger, err: err}
	}
}

func (v *quizView) applyCompletion() tea.Cmd {
	app := v.state.App
	lesson := v.lesson
	stats := service.SessionStats{
		XPEarned: lesson.XP,
		Correct:  v.session.CorrectCount(),
		Wrong:    v.session.WrongCount(),
	}
	practice := v.practice
	return func() tea.Msg {
		result, err := app.Progress.ApplyLessonCompletion(context.Background(), lesson, stats, practice)
		return completionAppliedMsg{result: result, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *quizView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case quizReadyMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.ledger = msg.ledger
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		v.session = engine.NewSession(v.lesson, v.practice, msg.ledger.HealthExempt(v.practice), rng)
		v.prepareInput()
		return v, textinput.Blink

	case heartLostMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.ledger = msg.ledger
		if !v.ledger.HealthExempt(v.practice) && v.ledger.Hearts == 0 {
			v.healthOut = true
		}
		return v, nil

	case completionAppliedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.applied = true
		cmds := []tea.Cmd{popView(), refreshViews()}
		if len(msg.result.Unlocked) > 0 {
			cmds = append(cmds, showToast("Unlocked: "+msg.result.Unlocked[0].Title))
		}
		return v, tea.Batch(cmds...)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	// Cursor blink etc. for the text input.
	if v.session != nil && v.usesTextInput() && v.session.Status() == engine.StatusIdle {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *quizView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.session == nil {
		return v, nil
	}

	// Hearts exhausted: only way out is forward.
	if v.healthOut {
		if msg.String() == "enter" || msg.String() == "esc" {
			_ = v.session.Abort()
			return v, tea.Batch(popView(), refreshViews())
		}
		return v, nil
	}

	// Completed is terminal: the session cannot be aborted anymore, and the
	// earned rewards must land. Any exit key applies the completion once.
	if v.session.Status() == engine.StatusCompleted {
		if (msg.String() == "enter" || msg.String() == "esc") && !v.applied {
			return v, v.applyCompletion()
		}
		return v, nil
	}

	if msg.String() == "esc" {
		return v, v.confirmExit()
	}

	switch v.session.Status() {
	case engine.StatusCorrect, engine.StatusIncorrect:
		return v.handleFeedbackKey(msg)

	case engine.StatusIdle:
		return v.handleIdleKey(msg)
	}
	return v, nil
}

func (v *quizView) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := v.session.Continue(); err != nil {
			return v, nil
		}
		if v.session.Status() == engine.StatusIdle {
			v.prepareInput()
		}
		return v, nil
	case "w":
		if v.session.Status() != engine.StatusIncorrect {
			return v, nil
		}
		return v, v.openWiki()
	}
	return v, nil
}

func (v *quizView) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := v.session.Current()
	if q == nil {
		return v, nil
	}

	switch q.Type {
	case domain.QuestionMatchPairs:
		return v.handleMatchKey(msg)
	case domain.QuestionOrderList:
		return v.handleOrderKey(msg)
	}

	if v.usesTextInput() {
		if msg.String() == "enter" {
			v.session.SetText(v.input.Value())
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.session.SetText(v.input.Value())
		return v, cmd
	}

	// Option selection.
	options := v.session.Options()
	if len(options) == 0 {
		return v, nil
	}
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(options)-1 {
			v.cursor++
		}
	case " ":
		v.session.SelectOption(options[v.cursor].ID)
	case "enter":
		// First enter picks the cursored option; enter on the already
		// selected option checks it. No answer is ever submitted without
		// an explicit selection.
		if v.session.Response().SelectedOptionID == options[v.cursor].ID {
			return v, v.submit()
		}
		v.session.SelectOption(options[v.cursor].ID)
	}
	return v, nil
}

func (v *quizView) handleMatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	left := v.session.LeftColumn()
	right := v.session.RightColumn()

	switch msg.String() {
	case "left", "h":
		v.onRight = false
	case "right", "l", "tab":
		v.onRight = true
	case "up", "k":
		if v.onRight && v.rightCursor > 0 {
			v.rightCursor--
		} else if !v.onRight && v.leftCursor > 0 {
			v.leftCursor--
		}
	case "down", "j":
		if v.onRight && v.rightCursor < len(right)-1 {
			v.rightCursor++
		} else if !v.onRight && v.leftCursor < len(left)-1 {
			v.leftCursor++
		}
	case "enter", " ":
		if !v.onRight {
			pair := left[v.leftCursor]
			v.session.SelectLeft(pair.ID)
			v.onRight = true
			return v, nil
		}
		res, err := v.session.SubmitMatch(right[v.rightCursor].ID)
		if err != nil {
			return v, nil
		}
		v.onRight = false
		if res.LoseHeart {
			return v, v.loseHeart()
		}
		return v, nil
	}
	return v, nil
}

func (v *quizView) handleOrderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ordered := v.session.Response().Ordered
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(ordered)-1 {
			v.cursor++
		}
	case "K", "shift+up":
		v.session.MoveItem(v.cursor, -1)
		if v.cursor > 0 {
			v.cursor--
		}
	case "J", "shift+down":
		v.session.MoveItem(v.cursor, +1)
		if v.cursor < len(ordered)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.submit()
	}
	return v, nil
}

func (v *quizView) submit() tea.Cmd {
	if !v.session.CanSubmit() {
		return nil
	}
	res, err := v.session.Submit()
	if err != nil {
		v.err = err
		return nil
	}
	if res.LoseHeart {
		return v.loseHeart()
	}
	return nil
}

func (v *quizView) confirmExit() tea.Cmd {
	session := v.session
	abort := tea.Batch(
		func() tea.Msg {
			_ = session.Abort()
			return popViewMsg{}
		},
		refreshViews(),
	)
	confirm := newConfirmView(v.state, "Quit Lesson?",
		"Are you sure? You will lose progress for this lesson.", abort)
	return pushView(confirm)
}

// openWiki surfaces the reference doc for the missed question's concept. The
// lesson pauses (aborts) only after explicit confirmation; a missing doc is
// a notice, not an error.
func (v *quizView) openWiki() tea.Cmd {
	q := v.session.Current()
	if q == nil {
		return nil
	}
	doc, ok := v.state.App.Catalog.DocByConcept(q.Concept)
	if !ok {
		return showToast("Documentation not available for this concept yet.")
	}
	session := v.session
	state := v.state
	open := tea.Batch(
		func() tea.Msg {
			_ = session.Abort()
			return replaceViewMsg{view: newDocsView(state, doc.ID)}
		},
		refreshViews(),
	)
	confirm := newConfirmView(v.state, "Read Documentation?",
		"Pause this lesson to read the documentation? Lesson progress is lost.", open)
	return pushView(confirm)
}

// prepareInput resets the text input and cursors for a fresh question.
func (v *quizView) prepareInput() {
	v.cursor = 0
	v.onRight = false
	v.leftCursor = 0
	v.rightCursor = 0
	v.input.Reset()
	if v.usesTextInput() {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
}

func (v *quizView) usesTextInput() bool {
	q := v.session.Current()
	if q == nil {
		return false
	}
	switch q.Type {
	case domain.QuestionTextInput:
		return true
	case domain.QuestionFillCode, domain.QuestionFillBlankCode:
		return q.ExpectedAnswer != ""
	}
	return false
}

// ── render ───────────────────────────────────────────────────────────────────

func (v *quizView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.healthOut {
		return v.renderHealthOut()
	}
	if v.session.Status() == engine.StatusCompleted {
		return v.renderCompleted()
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.RenderProgress(v.session.Progress(), 30))
	b.WriteString("   " + formatter.Hearts(v.ledger.Hearts, v.ledger.HealthExempt(v.practice)) + "\n\n")

	q := v.session.Current()
	b.WriteString("  " + formatter.Bold(q.Prompt) + "\n\n")

	if q.CodeSnippet != "" && q.Type != domain.QuestionOrderList {
		b.WriteString(v.renderSnippet(q) + "\n")
	}

	switch q.Type {
	case domain.QuestionMatchPairs:
		b.WriteString(v.renderPairs(q))
	case domain.QuestionOrderList:
		b.WriteString(v.renderOrder())
	default:
		if v.usesTextInput() {
			b.WriteString("  " + v.input.View() + "\n")
		} else {
			b.WriteString(v.renderOptions())
		}
	}

	b.WriteString(v.renderFeedback(q))
	return b.String()
}

func (v *quizView) renderSnippet(q *domain.Question) string {
	snippet := q.CodeSnippet
	if v.usesTextInput() {
		typed := v.input.Value()
		if typed == "" {
			typed = "____"
		}
		snippet = strings.ReplaceAll(snippet, "____", formatter.StyleYellow.Render(typed))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 2).
		MarginLeft(2).
		Render(snippet)
}

func (v *quizView) renderOptions() string {
	var b strings.Builder
	status := v.session.Status()
	selected := v.session.Response().SelectedOptionID
	for i, o := range v.session.Options() {
		cursor := "  "
		if i == v.cursor && status == engine.StatusIdle {
			cursor = formatter.StyleHeader.Render("❯ ")
		}
		label := fmt.Sprintf("%c. %s", 'A'+i, o.Text)
		switch {
		case status != engine.StatusIdle && o.Correct:
			label = formatter.StyleGreen.Render(label)
		case status == engine.StatusIncorrect && o.ID == selected:
			label = formatter.StyleRed.Render(label)
		case o.ID == selected:
			label = formatter.StylePurple.Render(label)
		}
		b.WriteString("  " + cursor + label + "\n")
	}
	return b.String()
}

func (v *quizView) renderPairs(q *domain.Question) string {
	resp := v.session.Response()
	var left, right []string
	for i, p := range v.session.LeftColumn() {
		left = append(left, v.renderPairCell(p.ID, p.Left, !v.onRight && i == v.leftCursor, resp.SelectedLeft == p.ID, resp.MatchedPairs[p.ID]))
	}
	for i, p := range v.session.RightColumn() {
		right = append(right, v.renderPairCell(p.ID, p.Right, v.onRight && i == v.rightCursor, false, resp.MatchedPairs[p.ID]))
	}
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"), "      ", strings.Join(right, "\n"))
	return lipgloss.NewStyle().MarginLeft(2).Render(cols) + "\n"
}

func (v *quizView) renderPairCell(id, text string, hasCursor, selected, matched bool) string {
	cursor := "  "
	if hasCursor {
		cursor = formatter.StyleHeader.Render("❯ ")
	}
	switch {
	case matched:
		text = formatter.Dim(text + " ✓")
	case selected:
		text = formatter.StylePurple.Render(text)
	}
	return cursor + text
}

func (v *quizView) renderOrder() string {
	var b strings.Builder
	for i, item := range v.session.Response().Ordered {
		cursor := "  "
		if i == v.cursor && v.session.Status() == engine.StatusIdle {
			cursor = formatter.StyleHeader.Render("❯ ")
		}
		b.WriteString(fmt.Sprintf("  %s%d. %s\n", cursor, i+1, item))
	}
	b.WriteString("\n  " + formatter.Dim("K/J moves the selected item up/down") + "\n")
	return b.String()
}

func (v *quizView) renderFeedback(q *domain.Question) string {
	switch v.session.Status() {
	case engine.StatusCorrect:
		return "\n  " + formatter.StyleGreen.Render("✓ Correct!") + "  " + formatter.Dim("enter to continue")
	case engine.StatusIncorrect:
		return "\n  " + formatter.StyleRed.Render("✗ Incorrect.") + "\n" +
			"  " + formatter.Dim(q.Explanation) + "\n" +
			"  " + formatter.StylePurple.Render("w") + formatter.Dim(" wiki: "+q.Concept) +
			formatter.Dim("  ·  enter to continue")
	}
	return ""
}

func (v *quizView) renderCompleted() string {
	title := "Lesson Passed!"
	if v.practice {
		title = "Practice Complete!"
	}
	var b strings.Builder
	b.WriteString("\n\n  " + formatter.Header(title) + "\n\n")
	b.WriteString("  " + formatter.StyleYellow.Render(fmt.Sprintf("⚡ +%d XP", v.lesson.XP)) + "\n")
	if !v.practice {
		b.WriteString("  " + formatter.StyleCyan.Render(fmt.Sprintf("◆ +%d gems", v.lesson.Gems)) + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("press enter to continue"))
	return b.String()
}

func (v *quizView) renderHealthOut() string {
	return "\n\n  " + formatter.StyleRed.Render("Out of hearts!") + "\n\n" +
		"  You ran out of hearts. Time to practice or refill in the shop.\n\n" +
		"  " + formatter.Dim("press enter to leave the lesson")
}
