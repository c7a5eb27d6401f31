// @title MVCC Spiritual Assessment API
// @version 1.0
// @description Backend for the Mountain View Community Church spiritual assessment.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"mvcc_assessment_backend/internal/app"
	"mvcc_assessment_backend/internal/config"
	"mvcc_assessment_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
