package services

import (
	"testing"
	"time"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (AuthService, *mockUserRepo, *auth.TokenManager) {
	userRepo := newMockUserRepo()
	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)
	return NewAuthService(userRepo, tokens), userRepo, tokens
}

func TestAuthService_Register(t *testing.T) {
	service, _, _ := newTestAuthService()

	user, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "password123",
		Role:     "student",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "student@example.com", user.Email)
	assert.Equal(t, models.UserRoleStudent, user.Role)
}

func TestAuthService_Register_PasswordNotStored(t *testing.T) {
	service, repo, _ := newTestAuthService()

	user, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "password123",
		Role:     "student",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(nil, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("password123", stored.PasswordHash))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestAuthService()

	req := &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Role:     "student",
	}
	_, err := service.Register(nil, req)
	require.NoError(t, err)

	// Та же почта с другой ролью — все равно Conflict
	req.Role = "organization"
	_, err = service.Register(nil, req)
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	service, _, _ := newTestAuthService()

	_, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "short",
		Role:     "student",
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	service, _, _ := newTestAuthService()

	for _, role := range []string{"manager", "", "admin", "Admin"} {
		_, err := service.Register(nil, &dto.RegisterRequest{
			Email:    "student@example.com",
			Password: "password123",
			Role:     role,
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole, "role=%q", role)
	}
}

func TestAuthService_Register_RoleCaseInsensitive(t *testing.T) {
	service, _, _ := newTestAuthService()

	user, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "org@example.com",
		Password: "password123",
		Role:     "Organization",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleOrganization, user.Role)
}

func TestAuthService_Login(t *testing.T) {
	service, _, tokens := newTestAuthService()

	registered, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "password123",
		Role:     "student",
	})
	require.NoError(t, err)

	resp, err := service.Login(nil, &dto.LoginRequest{
		Email:    "student@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, registered.ID, resp.User.ID)

	claims, err := tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, models.UserRoleStudent, claims.Role)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	service, _, _ := newTestAuthService()

	_, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "student@example.com",
		Password: "password123",
		Role:     "student",
	})
	require.NoError(t, err)

	// Неизвестный email и неверный пароль дают одну и ту же ошибку
	_, err = service.Login(nil, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = service.Login(nil, &dto.LoginRequest{
		Email:    "student@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}
