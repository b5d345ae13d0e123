package service

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/storage"
)

type UserService interface {
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (s *userService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdateAvatar загружает файл в MinIO и сохраняет новый URL в профиле.
// Снимки имени и аватара в уже созданных постах не трогаются.
func (s *userService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, fileName string, file io.Reader, size int64) (string, error) {
	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, userID.Hex(), fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		s.storage.DeleteAvatar(ctx, objectName)
		return "", fmt.Errorf("ошибка сохранения аватара: %w", err)
	}

	return avatarURL, nil
}
