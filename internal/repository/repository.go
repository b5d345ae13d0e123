package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/database"
	"devconnector/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID primitive.ObjectID) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID primitive.ObjectID) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
