package services

import (
	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"
	"unibridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

type StudentProfileService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateStudentProfileRequest) (*models.StudentProfile, error)
	Get(db *gorm.DB, userID string) (*models.StudentProfile, error)
	Update(db *gorm.DB, userID string, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	Delete(db *gorm.DB, userID string) error
}

type StudentProfileServiceImpl struct {
	profileRepo repositories.StudentProfileRepository
}

func NewStudentProfileService(profileRepo repositories.StudentProfileRepository) StudentProfileService {
	return &StudentProfileServiceImpl{profileRepo: profileRepo}
}

// Create создает профиль владельца. Повторное создание — Conflict;
// финальная защита от гонки — уникальный индекс по user_id.
func (s *StudentProfileServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateStudentProfileRequest) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		UserID:         userID,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Skills:         req.Skills,
		Bio:            req.Bio,
	}

	if err := s.profileRepo.Create(db, profile); err != nil {
		if appErrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, appErrors.ErrProfileAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

func (s *StudentProfileServiceImpl) Get(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

// Update - merge, не replace: непереданные поля сохраняют прежние значения.
func (s *StudentProfileServiceImpl) Update(db *gorm.DB, userID string, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.University != nil {
		profile.University = *req.University
	}
	if req.Major != nil {
		profile.Major = *req.Major
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = *req.GraduationYear
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return profile, nil
}

func (s *StudentProfileServiceImpl) Delete(db *gorm.DB, userID string) error {
	if err := s.profileRepo.DeleteByUserID(db, userID); err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
