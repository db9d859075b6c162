package repositories

import (
	"errors"

	"unibridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	ListByStudent(db *gorm.DB, studentID string) ([]models.Application, error)
	ListByProject(db *gorm.DB, projectID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create вставляет без предварительной проверки дубликата: пара
// (student_id, project_id) защищена композитным уникальным индексом,
// pre-check оставил бы окно гонки.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	if err := db.Create(application).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByStudent(db *gorm.DB, studentID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByProject(db *gorm.DB, projectID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
