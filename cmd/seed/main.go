package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/repository"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func strPtr(s string) *string { return &s }

func main() {
	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("🚀 Seeding participants...")

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	participants := []entities.Participant{
		{Name: "Alice Nguyen", Email: "alice@test.local", Department: strPtr("Computer Science"), FacultyID: strPtr("CS-001")},
		{Name: "Bob Tran", Email: "bob@test.local", Department: strPtr("Computer Science"), FacultyID: strPtr("CS-002")},
		{Name: "Charlie Pham", Email: "charlie@test.local", Department: strPtr("Mathematics"), FacultyID: strPtr("MA-001")},
		{Name: "Diana Le", Email: "diana@test.local", Department: strPtr("Physics"), FacultyID: strPtr("PH-001")},
		{Name: "Eve Vo", Email: "eve@test.local", Department: strPtr("Mathematics"), FacultyID: strPtr("MA-002")},
	}

	repo := repository.NewParticipantRepository(db)
	ctx := context.Background()

	created := 0
	for i := range participants {
		p := &participants[i]
		if err := repo.Upsert(ctx, p); err != nil {
			logger.Error("❌ Failed to upsert participant", zap.String("email", p.Email), zap.Error(err))
			continue
		}
		created++
		logger.Info("✅ Participant ready", zap.String("email", p.Email), zap.String("id", p.ID.String()))
	}

	logger.Info("🎉 Seeding complete", zap.Int("participants", created))
}
