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

type StudentProfileHandler struct {
	*BaseHandler
	profileService services.StudentProfileService
}

func NewStudentProfileHandler(base *BaseHandler, profileService services.StudentProfileService) *StudentProfileHandler {
	return &StudentProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes - профиль студента, только роль student
func (h *StudentProfileHandler) RegisterRoutes(rg *gin.RouterGroup, guard *auth.Guard) {
	profile := rg.Group("/student/profile")
	profile.Use(middleware.AuthMiddleware(guard))
	profile.Use(middleware.RoleMiddleware(guard, models.UserRoleStudent))
	{
		profile.POST("", h.Create)
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.DELETE("", h.Delete)
	}
}

func (h *StudentProfileHandler) Create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateStudentProfileRequest
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

func (h *StudentProfileHandler) Get(c *gin.Context) {
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

func (h *StudentProfileHandler) Update(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateStudentProfileRequest
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

func (h *StudentProfileHandler) Delete(c *gin.Context) {
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
