package services

import (
	"testing"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	service  ApplicationService
	projects ProjectService
	owner    *auth.Principal
	student  *auth.Principal
	project  *models.Project
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	projectRepo := newMockProjectRepo()
	projectService := NewProjectService(projectRepo)
	owner := orgPrincipal()

	project, err := projectService.Create(nil, owner, &dto.CreateProjectRequest{
		Title:       "Research assistant",
		Description: "Help with a study",
	})
	require.NoError(t, err)

	return &applicationFixture{
		service:  NewApplicationService(newMockApplicationRepo(), projectRepo),
		projects: projectService,
		owner:    owner,
		student:  &auth.Principal{ID: uuid.NewString(), Role: models.UserRoleStudent},
		project:  project,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	f := newApplicationFixture(t)

	message := "I am interested"
	application, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{
		Message: &message,
	})
	require.NoError(t, err)
	assert.Equal(t, f.student.ID, application.StudentID)
	assert.Equal(t, f.project.ID, application.ProjectID)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	require.NotNil(t, application.Message)
	assert.Equal(t, "I am interested", *application.Message)
}

func TestApplicationService_Apply_NoMessage(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)
	assert.Nil(t, application.Message)
}

func TestApplicationService_Apply_ProjectMissing(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(nil, f.student, uuid.NewString(), &dto.CreateApplicationRequest{})
	assert.ErrorIs(t, err, appErrors.ErrProjectNotFound)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	_, err = f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	assert.ErrorIs(t, err, appErrors.ErrAlreadyApplied)

	// Другой студент на тот же проект — не дубликат
	other := &auth.Principal{ID: uuid.NewString(), Role: models.UserRoleStudent}
	_, err = f.service.Apply(nil, other, f.project.ID, &dto.CreateApplicationRequest{})
	assert.NoError(t, err)
}

func TestApplicationService_ListOwn(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	applications, err := f.service.ListOwn(nil, f.student)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, f.student.ID, applications[0].StudentID)

	// Чужих откликов в списке нет
	other := &auth.Principal{ID: uuid.NewString(), Role: models.UserRoleStudent}
	applications, err = f.service.ListOwn(nil, other)
	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestApplicationService_ListByProject_OwnerOnly(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	applications, err := f.service.ListByProject(nil, f.owner, f.project.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	// Другая организация не видит отклики на чужой проект
	_, err = f.service.ListByProject(nil, orgPrincipal(), f.project.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(nil, f.owner, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: "accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
}

func TestApplicationService_UpdateStatus_NotOwner(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(nil, orgPrincipal(), application.ID, &dto.UpdateApplicationStatusRequest{
		Status: "rejected",
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.service.Apply(nil, f.student, f.project.ID, &dto.CreateApplicationRequest{})
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(nil, f.owner, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: "cancelled",
	})
	assert.Error(t, err)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.UpdateStatus(nil, f.owner, uuid.NewString(), &dto.UpdateApplicationStatusRequest{
		Status: "accepted",
	})
	assert.ErrorIs(t, err, appErrors.ErrApplicationNotFound)
}
