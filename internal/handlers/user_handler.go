package handlers

import (
	"net/http"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/middleware"
	"unibridge_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes - маршруты текущего пользователя, любая аутентифицированная роль
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, guard *auth.Guard) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(guard))
	{
		users.GET("/me", h.GetCurrentUser)
		users.DELETE("/me", h.DeleteCurrentUser)
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.GetCurrentUser(db, principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteCurrentUser(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleServiceError(c, appErrors.ErrUnauthorized)
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, principal.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
