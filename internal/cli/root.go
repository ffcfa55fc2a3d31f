package cli

import (
	"fmt"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/service"
	"github.com/spf13/cobra"
)

// App holds the catalog and service interfaces used by the TUI and the
// utility subcommands.
type App struct {
	Catalog  *catalog.Catalog
	Progress service.ProgressService
	Practice service.PracticeService
	History  service.HistoryService

	// IsInteractive reports whether stdin is attached to a terminal; the
	// TUI only launches when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "drill" command. Running it with no
// subcommand starts the interactive TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "drill",
		Short: "Learn to code, one drill at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("drill is interactive; run it from a terminal (or see 'drill --help')")
			}
			return RunTUI(app)
		},
	}

	root.AddCommand(
		newStatsCmd(app),
		newCatalogCmd(app),
		newResetCmd(app),
	)

	return root
}
