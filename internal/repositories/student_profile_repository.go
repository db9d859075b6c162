package repositories

import (
	"errors"

	"unibridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type StudentProfileRepository interface {
	Create(db *gorm.DB, profile *models.StudentProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error)
	Save(db *gorm.DB, profile *models.StudentProfile) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type StudentProfileRepositoryImpl struct{}

func NewStudentProfileRepository() StudentProfileRepository {
	return &StudentProfileRepositoryImpl{}
}

// Create полагается на uniqueIndex(user_id): проверка наличия и вставка
// не разделяются, дубликат отсекает constraint.
func (r *StudentProfileRepositoryImpl) Create(db *gorm.DB, profile *models.StudentProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *StudentProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StudentProfileRepositoryImpl) Save(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Save(profile).Error
}

func (r *StudentProfileRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	result := db.Where("user_id = ?", userID).Delete(&models.StudentProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
