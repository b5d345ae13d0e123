package app

import (
	"log"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/repository"
	"devconnector/internal/service"
	"devconnector/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к MongoDB: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
