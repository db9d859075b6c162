package services

import (
	"sort"
	"strings"

	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory реализации репозиториев для unit-тестов сервисов.
// Повторяют контракт хранилища, включая sentinel-ошибки.

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Delete(db *gorm.DB, userID string) error {
	if _, ok := m.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(m.users, userID)
	return nil
}

type mockStudentProfileRepo struct {
	profiles map[string]*models.StudentProfile // key: user_id
}

func newMockStudentProfileRepo() *mockStudentProfileRepo {
	return &mockStudentProfileRepo{profiles: make(map[string]*models.StudentProfile)}
}

func (m *mockStudentProfileRepo) Create(db *gorm.DB, profile *models.StudentProfile) error {
	if _, ok := m.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockStudentProfileRepo) FindByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockStudentProfileRepo) Save(db *gorm.DB, profile *models.StudentProfile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockStudentProfileRepo) DeleteByUserID(db *gorm.DB, userID string) error {
	if _, ok := m.profiles[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(m.profiles, userID)
	return nil
}

type mockOrganizationProfileRepo struct {
	profiles map[string]*models.OrganizationProfile
}

func newMockOrganizationProfileRepo() *mockOrganizationProfileRepo {
	return &mockOrganizationProfileRepo{profiles: make(map[string]*models.OrganizationProfile)}
}

func (m *mockOrganizationProfileRepo) Create(db *gorm.DB, profile *models.OrganizationProfile) error {
	if _, ok := m.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockOrganizationProfileRepo) FindByUserID(db *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockOrganizationProfileRepo) Save(db *gorm.DB, profile *models.OrganizationProfile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockOrganizationProfileRepo) DeleteByUserID(db *gorm.DB, userID string) error {
	if _, ok := m.profiles[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(m.profiles, userID)
	return nil
}

type mockProjectRepo struct {
	projects map[string]*models.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*models.Project)}
}

func (m *mockProjectRepo) Create(db *gorm.DB, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockProjectRepo) Save(db *gorm.DB, project *models.Project) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := m.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) ListByOrganization(db *gorm.DB, organizationID string) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range m.projects {
		if p.OrganizationID == organizationID {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

// Search фильтрует открытые проекты: AND по словам, OR по полям.
// Регистр и ILIKE-семантика здесь не воспроизводятся, это закрывает
// интеграционный тест на Postgres.
func (m *mockProjectRepo) Search(db *gorm.DB, criteria repositories.ProjectSearchCriteria) ([]models.Project, int64, error) {
	var matched []models.Project
	for _, p := range m.projects {
		if p.Status != models.ProjectStatusOpen {
			continue
		}
		if matchesAllTerms(p, criteria.Terms) {
			matched = append(matched, *p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if criteria.Skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[criteria.Skip:]
	if criteria.Limit > 0 && criteria.Limit < len(matched) {
		matched = matched[:criteria.Limit]
	}
	return matched, total, nil
}

func matchesAllTerms(p *models.Project, terms []string) bool {
	for _, term := range terms {
		if !containsFold(p.Title, term) &&
			!containsFold(p.Description, term) &&
			!containsFold(p.RequiredSkills, term) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type mockApplicationRepo struct {
	applications map[string]*models.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applications: make(map[string]*models.Application)}
}

func (m *mockApplicationRepo) Create(db *gorm.DB, application *models.Application) error {
	for _, a := range m.applications {
		if a.StudentID == application.StudentID && a.ProjectID == application.ProjectID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	m.applications[application.ID] = application
	return nil
}

func (m *mockApplicationRepo) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	a, ok := m.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *mockApplicationRepo) ListByStudent(db *gorm.DB, studentID string) ([]models.Application, error) {
	var applications []models.Application
	for _, a := range m.applications {
		if a.StudentID == studentID {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

func (m *mockApplicationRepo) ListByProject(db *gorm.DB, projectID string) ([]models.Application, error) {
	var applications []models.Application
	for _, a := range m.applications {
		if a.ProjectID == projectID {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

func (m *mockApplicationRepo) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	a, ok := m.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}
