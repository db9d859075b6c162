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

type OrganizationProfileHandler struct {
	*BaseHandler
	profileService services.OrganizationProfileService
}

func NewOrganizationProfileHandler(base *BaseHandler, profileService services.OrganizationProfileService) *OrganizationProfileHandler {
	return &OrganizationProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes - профиль организации, только роль organization
func (h *OrganizationProfileHandler) RegisterRoutes(rg *gin.RouterGroup, guard *auth.Guard) {
	profile := rg.Group("/organization/profile")
	profile.Use(middleware.AuthMiddleware(guard))
	profile.Use(middleware.RoleMiddleware(guard, models.UserRoleOrganization))
	{
		profile.POST("", h.Create)
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.DELETE("", h.Delete)
	}
}

func (h *OrganizationProfileHandler) Create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateOrganizationProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Create(db, principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *OrganizationProfileHandler) Get(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Get(db, principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *OrganizationProfileHandler) Update(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateOrganizationProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Update(db, principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *OrganizationProfileHandler) Delete(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	if err := h.profileService.Delete(db, principal.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
