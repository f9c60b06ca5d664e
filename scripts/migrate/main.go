// Command migrate creates the kv_entries table for the postgres and sqlite
// stores without starting the bot.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/trebekbot/trebekbot/internal/config"
	"github.com/trebekbot/trebekbot/internal/database"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger.SetLevel(cfg.LogLevel)
	if cfg.StoreBackend == config.StoreRedis {
		log.Fatal("STORE_BACKEND is redis; nothing to migrate")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	log.Println("Migration completed")
}
