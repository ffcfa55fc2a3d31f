package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drill/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Hearts renders the health meter, e.g. "♥ ♥ ♥ ♡ ♡", or the infinity badge
// when hearts are not at stake.
func Hearts(hearts int, exempt bool) string {
	if exempt {
		return StylePurple.Render("∞")
	}
	full := strings.Repeat("♥ ", hearts)
	empty := strings.Repeat("♡ ", domain.MaxHearts-hearts)
	return strings.TrimRight(StyleRed.Render(full)+StyleDim.Render(empty), " ")
}

// StatsLine renders the XP / gems / streak / hearts header shown above the
// lesson path.
func StatsLine(l *domain.Ledger) string {
	parts := []string{
		StyleYellow.Render(fmt.Sprintf("⚡ %d XP", l.XP)),
		StyleCyan.Render(fmt.Sprintf("◆ %d", l.Gems)),
		StyleHeader.Render(fmt.Sprintf("🔥 %d", l.Streak)),
		Hearts(l.Hearts, l.Difficulty == domain.DifficultyEasy),
	}
	return strings.Join(parts, Dim("  │  "))
}

// RenderProgress renders the quiz progress bar, e.g. [████░░░░]  50%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
