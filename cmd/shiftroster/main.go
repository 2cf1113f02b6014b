package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/shiftroster/internal/cli"
	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/db"
	"github.com/alexanderramin/shiftroster/internal/extract"
	"github.com/alexanderramin/shiftroster/internal/repository"
	"github.com/alexanderramin/shiftroster/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, then SHIFTROSTER_CONFIG, then SHIFTROSTER_* variables.
	cfg, err := config.Load(os.Getenv("SHIFTROSTER_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open history database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	runRepo := repository.NewSQLiteRunRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	warningRepo := repository.NewSQLiteWarningRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("SHIFTROSTER_LOG_USE_CASES") == "1" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	logger := service.NewLogger(os.Stderr, cfg.LogLevel)
	rosterSvc := service.NewRosterService(extract.ForPath, runRepo, scheduleRepo, warningRepo, uow, logger, observer)

	app := &cli.App{
		Roster: rosterSvc,
		Config: cfg,
	}

	// Tables and the spinner are only drawn on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
