package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/config"
	"boutiquehub/internal/httpserver"
	"boutiquehub/internal/logger"
	"boutiquehub/internal/models"
	"boutiquehub/internal/permissions"
	"boutiquehub/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		// No logger yet at this point.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	if err := permissions.Seed(db); err != nil {
		lg.Fatalw("permission seed failed", "error", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		lg.Fatalw("upload dir", "error", err)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	st, err := storage.New(cfg, lg)
	if err != nil {
		lg.Fatalw("storage init failed", "error", err)
	}

	router := httpserver.NewRouter(db, tokens, st, lg)
	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
