package services

import (
	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"
	"unibridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, principal *auth.Principal, projectID string, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListOwn(db *gorm.DB, principal *auth.Principal) ([]models.Application, error)
	ListByProject(db *gorm.DB, principal *auth.Principal, projectID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, principal *auth.Principal, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	projectRepo     repositories.ProjectRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	projectRepo repositories.ProjectRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
	}
}

// Apply - отклик студента на проект. Дубликат пары (student, project)
// отсекается constraint'ом хранилища и приходит сюда как Conflict —
// предварительной проверки нет, она бы оставила окно гонки.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, principal *auth.Principal, projectID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if _, err := s.projectRepo.FindByID(db, projectID); err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	application := &models.Application{
		StudentID: principal.ID,
		ProjectID: projectID,
		Message:   req.Message,
		Status:    models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if appErrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, appErrors.ErrAlreadyApplied
		}
		return nil, appErrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) ListOwn(db *gorm.DB, principal *auth.Principal) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByStudent(db, principal.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return applications, nil
}

// ListByProject доступен только владельцу проекта.
func (s *ApplicationServiceImpl) ListByProject(db *gorm.DB, principal *auth.Principal, projectID string) ([]models.Application, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if project.OrganizationID != principal.ID {
		return nil, appErrors.ErrForbidden
	}

	applications, err := s.applicationRepo.ListByProject(db, projectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus - решение по отклику принимает владелец проекта.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, principal *auth.Principal, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	project, err := s.projectRepo.FindByID(db, application.ProjectID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if project.OrganizationID != principal.ID {
		return nil, appErrors.ErrForbidden
	}

	status, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		return nil, appErrors.NewBadRequestError("Invalid application status")
	}

	if err := s.applicationRepo.UpdateStatus(db, applicationID, status); err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	application.Status = status
	return application, nil
}
