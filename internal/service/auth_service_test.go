package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devconnector/internal/config"
	"devconnector/internal/models"
)

func newTestAuthService(secret string, duration time.Duration) AuthService {
	cfg := &config.Config{
		JWTSecretKey:  secret,
		TokenDuration: duration,
	}
	return NewAuthService(nil, cfg)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService("test-secret", 2*time.Hour)

	user := &models.User{ID: primitive.NewObjectID()}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := newTestAuthService("secret-one", 2*time.Hour)
	verifier := newTestAuthService("secret-two", 2*time.Hour)

	token, err := issuer.GenerateToken(&models.User{ID: primitive.NewObjectID()})
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newTestAuthService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(&models.User{ID: primitive.NewObjectID()})
	assert.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenMalformed(t *testing.T) {
	svc := newTestAuthService("test-secret", 2*time.Hour)

	_, err := svc.VerifyToken("не токен вообще")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsNoneAlgorithm(t *testing.T) {
	svc := newTestAuthService("test-secret", 2*time.Hour)

	claims := jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.VerifyToken(tokenString)
	assert.Error(t, err)
}
