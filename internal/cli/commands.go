package cli

import (
	"fmt"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/engine"
	"github.com/spf13/cobra"
)

// newStatsCmd prints the progression ledger without entering the TUI.
func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print your progression stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := app.Progress.Ledger(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading ledger: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "XP:          %d\n", ledger.XP)
			fmt.Fprintf(out, "Gems:        %d\n", ledger.Gems)
			fmt.Fprintf(out, "Hearts:      %d/%d\n", ledger.Hearts, domain.MaxHearts)
			fmt.Fprintf(out, "Streak:      %d day(s)\n", ledger.Streak)
			fmt.Fprintf(out, "Difficulty:  %s\n", ledger.Difficulty)
			fmt.Fprintf(out, "Lessons:     %d/%d completed\n", len(ledger.CompletedLessons), app.Catalog.LessonCount())
			fmt.Fprintf(out, "Achievements:\n")
			for _, a := range catalog.Achievements {
				mark := " "
				if ledger.HasAchievement(a.ID) {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %s - %s\n", mark, a.Title, a.Description)
			}
			return nil
		},
	}
}

// newCatalogCmd lists every unit and lesson with its unlock and completion
// state.
func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List all units and lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := app.Progress.Ledger(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading ledger: %w", err)
			}
			out := cmd.OutOrStdout()
			for i := range app.Catalog.Units {
				u := &app.Catalog.Units[i]
				fmt.Fprintf(out, "%s (%s)\n", u.Title, u.ID)
				for j := range u.Lessons {
					l := &u.Lessons[j]
					mark := " "
					switch {
					case ledger.HasCompleted(l.ID):
						mark = "x"
					case !engine.IsLessonUnlocked(app.Catalog.Units, l.ID, ledger.HasCompleted):
						mark = "-"
					}
					fmt.Fprintf(out, "  [%s] %-10s %s  (%d questions, %d XP)\n",
						mark, l.ID, l.Title, len(l.Questions), l.XP)
				}
			}
			return nil
		},
	}
}

// newResetCmd wipes the ledger back to its initial state. Destructive, so it
// refuses to run without --yes.
func newResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe progress without --yes")
			}
			if _, err := app.Progress.ResetAll(cmd.Context()); err != nil {
				return fmt.Errorf("resetting progress: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
