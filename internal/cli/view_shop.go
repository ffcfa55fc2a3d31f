package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/cli/formatter"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type shopLoadedMsg struct {
	ledger *domain.Ledger
	err    error
}

type purchaseDoneMsg struct {
	item   domain.ShopItem
	ledger *domain.Ledger
	err    error
}

// shopView lists the shop items and spends gems through the progress service.
// Purchase guards surface as toasts; the ledger is re-read after every
// successful purchase.
type shopView struct {
	state  *SharedState
	ledger *domain.Ledger
	cursor int
	err    error
}

func newShopView(state *SharedState) *shopView {
	return &shopView{state: state}
}

func (v *shopView) ID() ViewID    { return ViewShop }
func (v *shopView) Title() string { return "Shop" }

func (v *shopView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buy")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *shopView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.Ledger(context.Background())
		return shopLoadedMsg{ledger: ledger, err: err}
	}
}

func (v *shopView) buy(item domain.ShopItem) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ledger, err := app.Progress.ApplyPurchase(context.Background(), item)
		return purchaseDoneMsg{item: item, ledger: ledger, err: err}
	}
}

func (v *shopView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shopLoadedMsg:
		v.ledger, v.err = msg.ledger, msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.Init()

	case purchaseDoneMsg:
		if msg.err != nil {
			return v, showToast(purchaseErrorText(msg.err))
		}
		v.ledger = msg.ledger
		return v, tea.Batch(refreshViews(), showToast("Purchased "+msg.item.Title+"!"))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, popView()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(catalog.ShopItems)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.buy(catalog.ShopItems[v.cursor])
		}
	}
	return v, nil
}

func purchaseErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrInsufficientGems):
		return "Not enough gems."
	case errors.Is(err, service.ErrHeartsFull):
		return "Hearts are already full."
	case errors.Is(err, service.ErrAlreadyOwned):
		return "You already own that."
	}
	return "Purchase failed: " + err.Error()
}

func (v *shopView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.ledger == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Shop") + "   " + formatter.StyleCyan.Render(fmt.Sprintf("◆ %d gems", v.ledger.Gems)) + "\n\n")

	for i, item := range catalog.ShopItems {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
		}
		name := formatter.Bold(item.Title)
		note := ""
		switch {
		case item.Effect == domain.EffectHeartRefill && v.ledger.Hearts == domain.MaxHearts:
			note = formatter.Dim(" (hearts full)")
		case v.ledger.Owns(item.ID) && !item.Repeatable():
			note = formatter.StyleGreen.Render(" ✓ owned")
		}
		price := formatter.StyleCyan.Render(fmt.Sprintf("◆ %d", item.Cost))
		b.WriteString(fmt.Sprintf("  %s%s%s\n      %s  ·  %s\n\n",
			cursor, name, note, formatter.Dim(item.Description), price))
	}
	return b.String()
}
