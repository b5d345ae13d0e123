package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/apperr"
	"devconnector/internal/database"
	"devconnector/internal/models"
)

type userRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{users: db.Users}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()

	_, err = r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.ErrEmailTaken
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// GetUserByID возвращает пользователя без хеша пароля.
func (r *userRepository) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User

	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})

	err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return user, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) error {
	result, err := r.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"avatar": avatarURL}})
	if err != nil {
		return fmt.Errorf("ошибка при обновлении аватара: %w", err)
	}

	if result.MatchedCount == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
