package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"devconnector/internal/apperr"
	"devconnector/internal/models"
	"devconnector/internal/service"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			writeError(w, "Email уже зарегистрирован", http.StatusBadRequest)
			return
		}
		log.Printf("ошибка регистрации: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, AuthResponse{Token: token, User: userResponse(user)}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			writeError(w, "Неверный email или пароль", http.StatusBadRequest)
			return
		}
		log.Printf("ошибка входа: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, AuthResponse{Token: token, User: userResponse(user)}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		log.Printf("ошибка получения пользователя: %v", err)
		writeError(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, userResponse(user), http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "Файл слишком большой или запрос поврежден", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		writeError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	avatarURL, err := h.UserService.UpdateAvatar(r.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		log.Printf("ошибка загрузки аватара: %v", err)
		writeError(w, "Ошибка загрузки аватара", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]string{"avatar": avatarURL}, http.StatusOK)
}
