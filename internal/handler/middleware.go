package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"devconnector/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware проверяет токен из заголовка x-auth-token и кладет
// идентификатор пользователя в контекст. Без валидного токена обернутый
// хендлер не вызывается.
func AuthMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Исключаем публичные эндпоинты
			publicPaths := []string{
				"/api/auth/register",
				"/api/auth/login",
				"/health",
				"/",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Токен передается в собственном заголовке, не в Authorization
			tokenString := r.Header.Get("x-auth-token")
			if tokenString == "" {
				writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			userID, err := authService.VerifyToken(tokenString)
			if err != nil {
				writeError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			// Добавляем идентификатор пользователя в контекст
			ctx := context.WithValue(r.Context(), "userID", userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSMiddleware - middleware для CORS
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-auth-token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware - middleware для логирования запросов
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		log.Printf("[%s] %s %s", requestID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
