package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/apperr"
)

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.Text)
	if err != nil {
		log.Printf("ошибка создания поста: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ошибка получения постов: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		log.Printf("ошибка получения поста: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	err = h.PostService.DeletePost(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeError(w, "Пост не найден", http.StatusBadRequest)
		case errors.Is(err, apperr.ErrNotOwner):
			writeError(w, "Вы не автор этого поста", http.StatusUnauthorized)
		default:
			log.Printf("ошибка удаления поста: %v", err)
			writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, MessageResponse{Message: "Пост удален"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	likes, err := h.PostService.LikePost(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrAlreadyLiked):
			writeError(w, "Пост уже лайкнут", http.StatusBadRequest)
		case errors.Is(err, apperr.ErrNotFound):
			writeError(w, "Пост не найден", http.StatusNotFound)
		default:
			log.Printf("ошибка лайка: %v", err)
			writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	likes, err := h.PostService.UnlikePost(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotLiked):
			writeError(w, "Пост еще не лайкнут", http.StatusBadRequest)
		case errors.Is(err, apperr.ErrNotFound):
			writeError(w, "Пост не найден", http.StatusNotFound)
		default:
			log.Printf("ошибка снятия лайка: %v", err)
			writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	comments, err := h.PostService.AddComment(r.Context(), postID, userID, req.Text)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		log.Printf("ошибка добавления комментария: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, "Некорректный идентификатор поста", http.StatusBadRequest)
		return
	}

	commentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["commentId"])
	if err != nil {
		writeError(w, "Некорректный идентификатор комментария", http.StatusBadRequest)
		return
	}

	comments, err := h.PostService.DeleteComment(r.Context(), postID, commentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrCommentNotFound):
			writeError(w, "Комментарий не найден", http.StatusBadRequest)
		case errors.Is(err, apperr.ErrNotOwner):
			writeError(w, "Вы не автор этого комментария", http.StatusUnauthorized)
		case errors.Is(err, apperr.ErrNotFound):
			writeError(w, "Пост не найден", http.StatusBadRequest)
		default:
			log.Printf("ошибка удаления комментария: %v", err)
			writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, comments, http.StatusOK)
}

func requesterID(r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := r.Context().Value("userID").(primitive.ObjectID)
	return userID, ok
}

// некорректный hex отличаем от "не найден": запись с таким id существовать
// не может
func postIDFromRequest(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)["id"])
}
