package main

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/pkg/database"
	"SocialDash/internal/pkg/logger"
	log "log/slog"
	"os"
	"time"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg
	logger.InitLogger(cfg.Logstash)

	dbCfg := cfg.DB
	dbCfg.AutoMigrate = true
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		os.Exit(1)
	}

	ctx := logger.NewBackgroundContext("seed")
	if err = NewSeeder(db, time.Now(), uint64(time.Now().UnixNano())).Run(ctx); err != nil {
		log.ErrorContext(ctx, "seed failed", "err", err)
		os.Exit(1)
	}
	log.InfoContext(ctx, "Database has been seeded", "email", seedEmail)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
