package handlers

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
	"boutiquehub/internal/permissions"
	"boutiquehub/internal/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := permissions.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func testStorer(t *testing.T) storage.Storer {
	t.Helper()
	return storage.NewLocal(t.TempDir())
}

func seedBoutique(t *testing.T, db *gorm.DB, nom string) models.Boutique {
	t.Helper()
	b := models.Boutique{Nom: nom, Type: models.TypeBoutique, NumeroTel: "0700000000", LienVitrine: "/boutique/" + nom}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed boutique: %v", err)
	}
	return b
}
