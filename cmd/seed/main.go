package main

import (
	"flag"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete existing restaurants, pizzas and prices before seeding")
	force := flag.Bool("force", false, "Seed even when restaurants already exist")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	dbConfig, err := database.ConfigFromURL(conf.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Invalid database connection string")
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.WithError(err).Fatal("Failed to clear database")
		}
	}

	empty, err := database.IsEmpty(db)
	if err != nil {
		log.WithError(err).Fatal("Failed to inspect database")
	}
	if !empty && !*force {
		log.Info("Database already contains restaurants, nothing to do (use -reset or -force)")
		return
	}

	if err := database.Seed(db); err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}
}
