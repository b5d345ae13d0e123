package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"userId" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash,omitempty"`
	Avatar       string             `json:"avatar" bson:"avatar"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
}

// Post хранит снимок имени и аватара автора на момент создания.
// Последующие изменения профиля на старые посты не влияют.
type Post struct {
	ID        primitive.ObjectID `json:"postId" bson:"_id,omitempty"`
	AuthorID  primitive.ObjectID `json:"authorId" bson:"author_id"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	Text      string             `json:"text" bson:"text"`
	Likes     []Like             `json:"likes" bson:"likes"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

type Like struct {
	UserID primitive.ObjectID `json:"userId" bson:"user_id"`
}

type Comment struct {
	ID        primitive.ObjectID `json:"commentId" bson:"comment_id"`
	UserID    primitive.ObjectID `json:"userId" bson:"user_id"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}
