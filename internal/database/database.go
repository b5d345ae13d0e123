package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"devconnector/internal/config"
)

type DB struct {
	Client *mongo.Client
	Posts  *mongo.Collection
	Users  *mongo.Collection
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("Подключаемся к MongoDB: %s, база=%s", cfg.Mongo.URI, cfg.Mongo.Database)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ошибка при проверке подключения к MongoDB: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	log.Println("Успешное подключение к MongoDB")
	return &DB{
		Client: client,
		Posts:  db.Collection("posts"),
		Users:  db.Collection("users"),
	}, nil
}

func (db *DB) CloseDB(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return fmt.Errorf("подключение к MongoDB не инициализировано")
	}

	return db.Client.Ping(ctx, readpref.Primary())
}
