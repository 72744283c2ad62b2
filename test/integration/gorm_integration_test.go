package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"venture-advisory-be/internal/repository/unitofwork"
	"venture-advisory-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.VentureRepository())
	assert.NotNil(t, uow.PassageRepository())
	assert.NotNil(t, uow.KnowledgeEntityRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Venture Repository", func(t *testing.T) {
		count, err := uow.VentureRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Venture count: %d", count)
	})
}
