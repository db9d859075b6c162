//go:build integration

package integration_test

import (
	"net/http"
	"strconv"
	"testing"

	"unibridge_backend/internal/models"
	"unibridge_backend/internal/services/dto"
	"unibridge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch_MultiTermAND - каждое слово запроса должно найтись хотя бы
// в одном из полей проекта
func TestSearch_MultiTermAND(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, org := helpers.CreateAndLoginOrganization(t, ts, tx)
	helpers.CreateTestProject(t, tx, org.ID, "Python data pipeline", "ETL work", "python, sql")
	helpers.CreateTestProject(t, tx, org.ID, "Frontend dashboard", "React and data viz", "react")
	helpers.CreateTestProject(t, tx, org.ID, "Data platform", "Python services", "go")

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/projects?search=python+data", "", nil)
	require.Equal(t, http.StatusOK, res.Code, bodyStr)

	var page dto.ProjectListResponse
	helpers.DecodeJSON(t, bodyStr, &page)
	// Слова могут совпасть в разных полях одного проекта
	assert.Equal(t, int64(2), page.Total)
	for _, p := range page.Projects {
		assert.NotEqual(t, "Frontend dashboard", p.Title)
	}
}

// TestSearch_CaseInsensitive - регистр запроса не влияет на результат
func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, org := helpers.CreateAndLoginOrganization(t, ts, tx)
	helpers.CreateTestProject(t, tx, org.ID, "Machine Learning study", "d", "")

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/projects?search=mAcHiNe+LEARNING", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var page dto.ProjectListResponse
	helpers.DecodeJSON(t, bodyStr, &page)
	assert.Equal(t, int64(1), page.Total)
}

// TestSearch_OpenOnly - закрытые проекты в выдачу не попадают
func TestSearch_OpenOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, org := helpers.CreateAndLoginOrganization(t, ts, tx)
	helpers.CreateTestProject(t, tx, org.ID, "Visible astronomy project", "d", "")

	closed := helpers.CreateTestProject(t, tx, org.ID, "Hidden astronomy project", "d", "")
	require.NoError(t, tx.Model(&closed).Update("status", models.ProjectStatusClosed).Error)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/projects?search=astronomy", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var page dto.ProjectListResponse
	helpers.DecodeJSON(t, bodyStr, &page)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Visible astronomy project", page.Projects[0].Title)
}

// TestSearch_Pagination - skip/limit и сортировка новые-первыми
func TestSearch_Pagination(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, org := helpers.CreateAndLoginOrganization(t, ts, tx)
	for i := 0; i < 5; i++ {
		helpers.CreateTestProject(t, tx, org.ID, "Paginated quantum project", "d", "")
	}

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/projects?search=quantum&skip=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var page dto.ProjectListResponse
	helpers.DecodeJSON(t, bodyStr, &page)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Projects, 2)
	assert.Equal(t, 2, page.Skip)
	assert.Equal(t, 2, page.Limit)

	// Страницы не пересекаются: собираем все id по 2 и сверяем
	seen := map[string]bool{}
	for skip := 0; skip < 5; skip += 2 {
		res, bodyStr = ts.SendRequest(t, tx, "GET",
			"/api/v1/projects?search=quantum&skip="+strconv.Itoa(skip)+"&limit=2", "", nil)
		require.Equal(t, http.StatusOK, res.Code)
		var p dto.ProjectListResponse
		helpers.DecodeJSON(t, bodyStr, &p)
		for _, project := range p.Projects {
			assert.False(t, seen[project.ID], "проект попал на две страницы")
			seen[project.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

// TestSearch_EmptyQuery - пустой запрос возвращает все открытые проекты
func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, org := helpers.CreateAndLoginOrganization(t, ts, tx)
	helpers.CreateTestProject(t, tx, org.ID, "Some project", "d", "")

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var page dto.ProjectListResponse
	helpers.DecodeJSON(t, bodyStr, &page)
	assert.GreaterOrEqual(t, page.Total, int64(1))
	assert.Equal(t, 20, page.Limit)
}
