package services

import (
	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"
	"unibridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

type OrganizationProfileService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateOrganizationProfileRequest) (*models.OrganizationProfile, error)
	Get(db *gorm.DB, userID string) (*models.OrganizationProfile, error)
	Update(db *gorm.DB, userID string, req *dto.UpdateOrganizationProfileRequest) (*models.OrganizationProfile, error)
	Delete(db *gorm.DB, userID string) error
}

type OrganizationProfileServiceImpl struct {
	profileRepo repositories.OrganizationProfileRepository
}

func NewOrganizationProfileService(profileRepo repositories.OrganizationProfileRepository) OrganizationProfileService {
	return &OrganizationProfileServiceImpl{profileRepo: profileRepo}
}

func (s *OrganizationProfileServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateOrganizationProfileRequest) (*models.OrganizationProfile, error) {
	profile := &models.OrganizationProfile{
		UserID:           userID,
		OrganizationName: req.OrganizationName,
		Industry:         req.Industry,
		Website:          req.Website,
		Description:      req.Description,
	}

	if err := s.profileRepo.Create(db, profile); err != nil {
		if appErrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, appErrors.ErrProfileAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

func (s *OrganizationProfileServiceImpl) Get(db *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

// Update - merge, не replace
func (s *OrganizationProfileServiceImpl) Update(db *gorm.DB, userID string, req *dto.UpdateOrganizationProfileRequest) (*models.OrganizationProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.OrganizationName != nil {
		profile.OrganizationName = *req.OrganizationName
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

func (s *OrganizationProfileServiceImpl) Delete(db *gorm.DB, userID string) error {
	if err := s.profileRepo.DeleteByUserID(db, userID); err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
