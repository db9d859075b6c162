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

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes - отклики: студент подает и смотрит свои, организация
// смотрит отклики на свои проекты и меняет их статус
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, guard *auth.Guard) {
	student := rg.Group("")
	student.Use(middleware.AuthMiddleware(guard))
	student.Use(middleware.RoleMiddleware(guard, models.UserRoleStudent))
	{
		student.POST("/projects/:id/applications", h.Apply)
		student.GET("/applications/mine", h.ListOwn)
	}

	organization := rg.Group("")
	organization.Use(middleware.AuthMiddleware(guard))
	organization.Use(middleware.RoleMiddleware(guard, models.UserRoleOrganization))
	{
		organization.GET("/projects/:id/applications", h.ListByProject)
		organization.PUT("/applications/:id/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Apply(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListOwn(db, principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) ListByProject(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListByProject(db, principal, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
