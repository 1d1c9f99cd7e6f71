package main

import (
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll migrations back instead of applying them")
	steps := flag.Int("steps", 0, "number of migrations to run (0 = all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if *down {
		direction = migrate.Down
	}

	logger.Info("🔄 Applying migrations...",
		zap.String("dir", cfg.Database.MigrationsDir),
		zap.Bool("down", *down),
		zap.Int("steps", *steps),
	)

	n, err := database.Migrate(db, cfg.Database.MigrationsDir, direction, *steps)
	if err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	logger.Info("✅ Migrations done", zap.Int("count", n))
}
