package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/cli"
	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/repository"
	"github.com/alexanderramin/drill/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.drill/drill.db
	dbPath := os.Getenv("DRILL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".drill", "drill.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Load the embedded curriculum
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// Wire repositories
	ledgerRepo := repository.NewSQLiteLedgerRepo(database)
	attemptRepo := repository.NewSQLiteAttemptRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	progressSvc := service.NewProgressService(ledgerRepo, attemptRepo, uow, catalog.Achievements)

	app := &cli.App{
		Catalog:  cat,
		Progress: progressSvc,
		Practice: service.NewPracticeService(cat, progressSvc, rng),
		History:  service.NewHistoryService(attemptRepo),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
