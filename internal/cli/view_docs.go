package cli

import (
	"strings"

	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// docsView is the reference wiki: a doc index plus a scrollable reader. It is
// reachable from the home screen and from a missed question's concept link.
type docsView struct {
	state   *SharedState
	docs    []domain.Doc
	cursor  int
	reading bool
	vp      viewport.Model
	current *domain.Doc
}

// newDocsView opens the index, or jumps straight into the doc with the given
// id when docID is non-empty.
func newDocsView(state *SharedState, docID string) *docsView {
	v := &docsView{
		state: state,
		docs:  state.App.Catalog.Docs,
		vp:    viewport.New(state.Width, state.ContentHeight()),
	}
	if docID != "" {
		for i := range v.docs {
			if v.docs[i].ID == docID {
				v.cursor = i
				v.open(&v.docs[i])
				break
			}
		}
	}
	return v
}

func (v *docsView) ID() ViewID { return ViewDocs }

func (v *docsView) Title() string {
	if v.reading && v.current != nil {
		return v.current.Title
	}
	return "Docs"
}

func (v *docsView) ShortHelp() []key.Binding {
	if v.reading {
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "index")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *docsView) Init() tea.Cmd { return nil }

func (v *docsView) open(doc *domain.Doc) {
	v.current = doc
	v.reading = true
	v.vp.SetContent(renderDoc(doc))
	v.vp.GotoTop()
}

func (v *docsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		if v.current != nil {
			v.vp.SetContent(renderDoc(v.current))
		}
		return v, nil

	case tea.KeyMsg:
		if v.reading {
			switch msg.String() {
			case "esc", "q":
				v.reading = false
				v.current = nil
				return v, nil
			}
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}
		switch msg.String() {
		case "esc", "q":
			return v, popView()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.docs)-1 {
				v.cursor++
			}
		case "enter":
			if len(v.docs) > 0 {
				v.open(&v.docs[v.cursor])
			}
		}
	}
	return v, nil
}

func renderDoc(doc *domain.Doc) string {
	body := lipgloss.NewStyle().Width(72).Render(doc.Content)
	return "\n  " + formatter.Header(doc.Title) + "\n" +
		"  " + formatter.Dim("concept: "+doc.Concept) + "\n\n" +
		lipgloss.NewStyle().MarginLeft(2).Render(body) + "\n"
}

func (v *docsView) View() string {
	if v.reading {
		return v.vp.View()
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Reference Docs") + "\n\n")
	if len(v.docs) == 0 {
		b.WriteString("  " + formatter.Dim("no docs available") + "\n")
		return b.String()
	}
	for i, d := range v.docs {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
		}
		b.WriteString("  " + cursor + formatter.Bold(d.Title) + "  " + formatter.Dim(d.Concept) + "\n")
	}
	return b.String()
}
