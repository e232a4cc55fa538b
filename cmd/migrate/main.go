package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"bank-account-service/internal/config"
	"bank-account-service/internal/database"
	"bank-account-service/internal/logging"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
)

const usage = "Usage: migrate <up|down|status|seed>"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		slog.Error("migrate failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logging.New(cfg.Log)

	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migration files target postgres, got driver %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, cfg.Database.MigrationsPath, cfg.Database.SeedsPath)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.RunMigrations()
	case "down":
		if err := runner.RollbackLast(); err != nil {
			return err
		}
		slog.Info("Rolled back last migration")
		return nil
	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	case "seed":
		return runner.LoadSeeds()
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}
