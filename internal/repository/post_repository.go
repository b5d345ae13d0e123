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

	"devconnector/internal/apperr"
	"devconnector/internal/database"
	"devconnector/internal/models"
)

type PostRepositoryImpl struct {
	posts *mongo.Collection
}

func NewPostRepository(db *database.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{posts: db.Posts}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.CreatedAt = time.Now()

	_, err := r.posts.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID primitive.ObjectID) (*models.Post, error) {
	var post models.Post

	err := r.posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// GetAll возвращает все посты, новые первыми.
func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("ошибка при чтении постов: %w", err)
	}

	return posts, nil
}

// Save перезаписывает документ целиком. Лайки и комментарии меняются в памяти
// и сохраняются вместе с постом, без частичных обновлений.
func (r *PostRepositoryImpl) Save(ctx context.Context, post *models.Post) error {
	result, err := r.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении поста: %w", err)
	}

	if result.MatchedCount == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID primitive.ObjectID) error {
	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
