//go:build integration

package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"unibridge_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя в транзакции, хешируя сырой пароль
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser захеширует
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	rec, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, rec.Code, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	DecodeJSON(t, bodyStr, &loginResponse)
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateAndLoginStudent создает студента с уникальным email
func CreateAndLoginStudent(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("student_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleStudent)
}

// CreateAndLoginOrganization создает организацию с уникальным email
func CreateAndLoginOrganization(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("org_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleOrganization)
}

// CreateTestProject создает проект напрямую в транзакции
func CreateTestProject(t *testing.T, tx *gorm.DB, organizationID, title, description, skills string) models.Project {
	project := models.Project{
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		RequiredSkills: skills,
		Status:         models.ProjectStatusOpen,
	}
	if err := tx.Create(&project).Error; err != nil {
		t.Fatalf("Не удалось создать тестовый проект: %v", err)
	}
	return project
}
