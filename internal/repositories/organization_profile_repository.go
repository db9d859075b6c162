package repositories

import (
	"errors"

	"unibridge_backend/internal/models"

	"gorm.io/gorm"
)

type OrganizationProfileRepository interface {
	Create(db *gorm.DB, profile *models.OrganizationProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.OrganizationProfile, error)
	Save(db *gorm.DB, profile *models.OrganizationProfile) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type OrganizationProfileRepositoryImpl struct{}

func NewOrganizationProfileRepository() OrganizationProfileRepository {
	return &OrganizationProfileRepositoryImpl{}
}

func (r *OrganizationProfileRepositoryImpl) Create(db *gorm.DB, profile *models.OrganizationProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *OrganizationProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	var profile models.OrganizationProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *OrganizationProfileRepositoryImpl) Save(db *gorm.DB, profile *models.OrganizationProfile) error {
	return db.Save(profile).Error
}

func (r *OrganizationProfileRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	result := db.Where("user_id = ?", userID).Delete(&models.OrganizationProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
