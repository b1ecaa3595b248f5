// @title Python Learning Platform API
// @version 1.0
// @description Backend for a curated Python learning platform: resource
// @description catalogs, completion tracking, recommendations, streaks,
// @description discussions and practice problems.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/app"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/config"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "migrate and seed the store, then exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("store migrated and seeded, exiting")
		return
	}

	application.Run()
}
