package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"devconnector/internal/config"
	"devconnector/internal/repository"
	"devconnector/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserService service.UserService
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		PostService: service.Post,
		UserService: service.User,
		UserRepo:    repo.User,
		PostRepo:    repo.Post,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("API running..."))
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
