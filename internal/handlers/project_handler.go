package handlers

import (
	"net/http"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/middleware"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/services"
	"unibridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

// RegisterRoutes - поиск и чтение публичные, мутации только для организаций
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup, guard *auth.Guard) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.Search)
		projects.GET("/:id", h.Get)
	}

	authed := rg.Group("/projects")
	authed.Use(middleware.AuthMiddleware(guard))
	authed.Use(middleware.RoleMiddleware(guard, models.UserRoleOrganization))
	{
		authed.POST("", h.Create)
		authed.GET("/mine/list", h.ListOwn)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Create(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	project, err := h.projectService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListOwn(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.ListOwn(db, principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Update(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	if err := h.projectService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Search - публичный поиск по открытым проектам
func (h *ProjectHandler) Search(c *gin.Context) {
	var req dto.SearchProjectsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.projectService.Search(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
