package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/apperr"
	"devconnector/internal/config"
	handlers "devconnector/internal/handler"
	"devconnector/internal/models"
	"devconnector/internal/service"
)

func newAuthTestHandlers(authService *MockAuthService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService: authService,
		PostService: new(MockPostService),
		UserService: new(MockUserService),
		UserRepo:    new(MockUserRepository),
		PostRepo:    new(MockPostRepository),
		Cfg:         &config.Config{},
		Validate:    validator.New(),
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		mockSetup      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "Успешная регистрация",
			requestBody: map[string]interface{}{
				"name":     "Иван",
				"email":    "ivan@example.com",
				"password": "secret123",
			},
			mockSetup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, service.RegisterRequest{
					Name:     "Иван",
					Email:    "ivan@example.com",
					Password: "secret123",
				}).Return(&models.User{
					ID:    primitive.NewObjectID(),
					Name:  "Иван",
					Email: "ivan@example.com",
				}, "signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Email уже зарегистрирован",
			requestBody: map[string]interface{}{
				"name":     "Иван",
				"email":    "ivan@example.com",
				"password": "secret123",
			},
			mockSetup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, mock.Anything).
					Return(nil, "", apperr.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Короткий пароль отклоняется валидатором",
			requestBody: map[string]interface{}{
				"name":     "Иван",
				"email":    "ivan@example.com",
				"password": "123",
			},
			mockSetup:      func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Неверный email отклоняется валидатором",
			requestBody: map[string]interface{}{
				"name":     "Иван",
				"email":    "не email",
				"password": "secret123",
			},
			mockSetup:      func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(MockAuthService)
			tt.mockSetup(mockAuthService)

			handler := newAuthTestHandlers(mockAuthService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))

			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var response handlers.AuthResponse
				json.Unmarshal(rr.Body.Bytes(), &response)
				assert.Equal(t, "signed-token", response.Token)
				assert.Equal(t, "ivan@example.com", response.User.Email)
			}

			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		mockSetup      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "Успешный вход",
			requestBody: map[string]interface{}{
				"email":    "ivan@example.com",
				"password": "secret123",
			},
			mockSetup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "ivan@example.com", "secret123").
					Return(&models.User{ID: userID, Email: "ivan@example.com"}, "signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Неверный пароль",
			requestBody: map[string]interface{}{
				"email":    "ivan@example.com",
				"password": "wrong",
			},
			mockSetup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "ivan@example.com", "wrong").
					Return(nil, "", apperr.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(MockAuthService)
			tt.mockSetup(mockAuthService)

			handler := newAuthTestHandlers(mockAuthService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))

			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockAuthService.AssertExpectations(t)
		})
	}
}
