package service

import (
	"devconnector/internal/config"
	"devconnector/internal/repository"
	"devconnector/internal/storage"
)

type Service struct {
	Auth AuthService
	Post PostService
	User UserService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Post: NewPostService(rep.Post, rep.User),
		User: NewUserService(rep.User, storage),
	}
}
