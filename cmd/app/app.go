package app

import (
	"log"

	"blogCPT/internal/config"
	"blogCPT/internal/database"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo)

	return db, repo, services
}
