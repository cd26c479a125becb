package service

import (
	"context"
	"testing"
	"time"

	"app/internal/logger"
	"app/internal/model"
	"app/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupAuthService() AuthService {
	return NewAuthService(newMockUserRepo(), testSecret, time.Hour, logger.New())
}

func TestAuthService_RegisterIssuesValidToken(t *testing.T) {
	svc := setupAuthService()

	user, token, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", model.RoleInstructor)
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, model.RoleInstructor, user.Role)
	// The stored hash never equals the plaintext
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	claims, err := util.ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.Subject)
	assert.Equal(t, model.RoleInstructor, claims.Role)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := setupAuthService()
	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", "admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := setupAuthService()
	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", model.RoleStudent)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Eve", "ada@example.com", "hunter22", model.RoleStudent)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	svc := setupAuthService()
	registered, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", model.RoleStudent)
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, user.UserID)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	svc := setupAuthService()
	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", model.RoleStudent)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
