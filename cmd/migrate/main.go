package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/saasnotes/backend/internal/infrastructure/config"
	"github.com/saasnotes/backend/internal/infrastructure/migration"
)

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up, down, or version")
		steps     = flag.Int("steps", 0, "Number of migration steps (0 = all, used with up/down)")
		path      = flag.String("path", "migrations", "Path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	migrator, err := migration.NewMigrator(cfg.Database.DSN(), *path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create migrator: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = migrator.Close()
	}()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = migrator.Steps(*steps)
		} else {
			err = migrator.Up()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Migration up failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied")
	case "down":
		if *steps > 0 {
			err = migrator.Steps(-*steps)
		} else {
			err = migrator.Down()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Migration down failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations rolled back")
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read version: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Version: %d, dirty: %t\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "Unknown direction %q (want up, down, or version)\n", *direction)
		os.Exit(1)
	}
}
