package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"devconnector/cmd/app"
	"devconnector/internal/config"
	handlers "devconnector/internal/handler"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB(context.Background())

	handler := handlers.NewHandlers(repo, services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)

	r.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	r.HandleFunc("/api/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	r.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/like/{id}", handler.LikePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/unlike/{id}", handler.UnlikePost).Methods(http.MethodPut)
	r.HandleFunc("/api/posts/comment/{id}/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)
	r.HandleFunc("/api/posts/comment/{id}", handler.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := handlers.Chain(
		r,
		handlers.LoggingMiddleware,
		handlers.CORSMiddleware,
		handlers.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
