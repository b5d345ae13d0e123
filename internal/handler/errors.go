package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse - ответ с ошибками по полям запроса
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// writeError - универсальная функция для отправки ошибок
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeValidationError разворачивает ошибки валидатора в список по полям
func writeValidationError(w http.ResponseWriter, err error) {
	response := ValidationErrorResponse{Errors: []FieldError{}}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			response.Errors = append(response.Errors, FieldError{
				Field:   fieldError.Field(),
				Message: fieldErrorMessage(fieldError),
			})
		}
	} else {
		response.Errors = append(response.Errors, FieldError{Message: "Неверные данные"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(response)
}

func fieldErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "поле обязательно"
	case "email":
		return "неверный формат email"
	case "min":
		return fmt.Sprintf("минимальная длина %s", fieldError.Param())
	default:
		return "неверное значение"
	}
}
