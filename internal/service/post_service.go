package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/apperr"
	"devconnector/internal/models"
	"devconnector/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID primitive.ObjectID, text string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, requesterID primitive.ObjectID) error
	LikePost(ctx context.Context, postID, requesterID primitive.ObjectID) ([]models.Like, error)
	UnlikePost(ctx context.Context, postID, requesterID primitive.ObjectID) ([]models.Like, error)
	AddComment(ctx context.Context, postID, requesterID primitive.ObjectID, text string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, requesterID primitive.ObjectID) ([]models.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, authorID primitive.ObjectID, text string) (*models.Post, error) {
	// snapshot of the author's name and avatar, without password
	user, err := p.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении автора: %w", err)
	}

	post := &models.Post{
		AuthorID: authorID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Text:     text,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, requesterID primitive.ObjectID) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// only the author can delete the post
	if err := apperr.Authorize(requesterID, post.AuthorID); err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) LikePost(ctx context.Context, postID, requesterID primitive.ObjectID) ([]models.Like, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if likeIndex(post.Likes, requesterID) >= 0 {
		return nil, apperr.ErrAlreadyLiked
	}

	// new likes go to the front
	post.Likes = append([]models.Like{{UserID: requesterID}}, post.Likes...)

	if err := p.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (p *postService) UnlikePost(ctx context.Context, postID, requesterID primitive.ObjectID) ([]models.Like, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// the entry is searched by the requester id, not by position
	index := likeIndex(post.Likes, requesterID)
	if index < 0 {
		return nil, apperr.ErrNotLiked
	}

	post.Likes = append(post.Likes[:index], post.Likes[index+1:]...)

	if err := p.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (p *postService) AddComment(ctx context.Context, postID, requesterID primitive.ObjectID, text string) ([]models.Comment, error) {
	user, err := p.userRepo.GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении автора: %w", err)
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    requesterID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Text:      text,
		CreatedAt: time.Now(),
	}

	post.Comments = append([]models.Comment{comment}, post.Comments...)

	if err := p.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func (p *postService) DeleteComment(ctx context.Context, postID, commentID, requesterID primitive.ObjectID) ([]models.Comment, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			index = i
			break
		}
	}

	if index < 0 {
		return nil, apperr.ErrCommentNotFound
	}

	// the owner is the author of the comment, not the author of the post
	if err := apperr.Authorize(requesterID, post.Comments[index].UserID); err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments[:index], post.Comments[index+1:]...)

	if err := p.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func likeIndex(likes []models.Like, userID primitive.ObjectID) int {
	for i, like := range likes {
		if like.UserID == userID {
			return i
		}
	}
	return -1
}
