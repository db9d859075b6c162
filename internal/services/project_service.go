package services

import (
	"strings"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"
	"unibridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

// DefaultSearchLimit применяется, когда клиент не задал размер страницы.
// Верхней границы limit нет — осознанно не капаем.
const DefaultSearchLimit = 20

type ProjectService interface {
	Create(db *gorm.DB, principal *auth.Principal, req *dto.CreateProjectRequest) (*models.Project, error)
	Get(db *gorm.DB, id string) (*models.Project, error)
	ListOwn(db *gorm.DB, principal *auth.Principal) ([]models.Project, error)
	Update(db *gorm.DB, principal *auth.Principal, id string, req *dto.UpdateProjectRequest) (*models.Project, error)
	Delete(db *gorm.DB, principal *auth.Principal, id string) error
	Search(db *gorm.DB, req *dto.SearchProjectsRequest) (*dto.ProjectListResponse, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// Create - владелец проекта всегда принципал, client-supplied id не принимается
func (s *ProjectServiceImpl) Create(db *gorm.DB, principal *auth.Principal, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		OrganizationID: principal.ID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Duration:       req.Duration,
		Status:         models.ProjectStatusOpen,
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Get(db *gorm.DB, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) ListOwn(db *gorm.DB, principal *auth.Principal) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOrganization(db, principal.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Update(db *gorm.DB, principal *auth.Principal, id string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.ownedProject(db, principal, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		project.RequiredSkills = *req.RequiredSkills
	}
	if req.Duration != nil {
		project.Duration = *req.Duration
	}
	if req.Status != nil {
		status, ok := models.ParseProjectStatus(*req.Status)
		if !ok {
			return nil, appErrors.NewBadRequestError("Invalid project status")
		}
		project.Status = status
	}

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Delete(db *gorm.DB, principal *auth.Principal, id string) error {
	if _, err := s.ownedProject(db, principal, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(db, id); err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return appErrors.ErrProjectNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// Search - AND по словам запроса, OR по полям внутри слова; только открытые
// проекты; пустой запрос эквивалентен отсутствию фильтра.
func (s *ProjectServiceImpl) Search(db *gorm.DB, req *dto.SearchProjectsRequest) (*dto.ProjectListResponse, error) {
	criteria := repositories.ProjectSearchCriteria{
		Terms: SplitSearchTerms(req.Search),
		Skip:  req.Skip,
		Limit: req.Limit,
	}
	if criteria.Skip < 0 {
		criteria.Skip = 0
	}
	if criteria.Limit <= 0 {
		criteria.Limit = DefaultSearchLimit
	}

	projects, total, err := s.projectRepo.Search(db, criteria)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return &dto.ProjectListResponse{
		Projects: projects,
		Total:    total,
		Skip:     criteria.Skip,
		Limit:    criteria.Limit,
	}, nil
}

// SplitSearchTerms разбивает строку поиска на слова по whitespace.
// Пустая или пробельная строка дает пустой срез — без фильтра.
func SplitSearchTerms(search string) []string {
	return strings.Fields(search)
}

func (s *ProjectServiceImpl) ownedProject(db *gorm.DB, principal *auth.Principal, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if project.OrganizationID != principal.ID {
		return nil, appErrors.ErrForbidden
	}
	return project, nil
}
