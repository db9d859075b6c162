package repositories

import (
	"errors"

	"unibridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectSearchCriteria — критерии поиска по открытым проектам.
// Terms уже разбиты на отдельные слова и нормализованы сервисом.
type ProjectSearchCriteria struct {
	Terms []string
	Skip  int
	Limit int
}

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	Save(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
	ListByOrganization(db *gorm.DB, organizationID string) ([]models.Project, error)
	Search(db *gorm.DB, criteria ProjectSearchCriteria) ([]models.Project, int64, error)
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Save(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

func (r *ProjectRepositoryImpl) ListByOrganization(db *gorm.DB, organizationID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("organization_id = ?", organizationID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	return projects, err
}

// Search возвращает открытые проекты, где КАЖДОЕ слово запроса встречается
// хотя бы в одном из полей title/description/required_skills (AND по словам,
// OR по полям внутри слова). Сортировка новые-первыми, id — детерминированный
// tie-break при равных created_at.
func (r *ProjectRepositoryImpl) Search(db *gorm.DB, criteria ProjectSearchCriteria) ([]models.Project, int64, error) {
	query := db.Model(&models.Project{}).Where("status = ?", models.ProjectStatusOpen)

	for _, term := range criteria.Terms {
		pattern := "%" + term + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR required_skills ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := query.
		Order("created_at DESC, id DESC").
		Offset(criteria.Skip).
		Limit(criteria.Limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
