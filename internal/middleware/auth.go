package middleware

import (
	"strings"

	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/logger"
	"unibridge_backend/internal/models"
	"unibridge_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const principalKey = "principal"

// AuthMiddleware - middleware проверки токена. Разрешает Principal через
// Guard (токен + свежая загрузка субъекта) и кладет его в контекст.
func AuthMiddleware(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		db := dbFromContext(c)
		principal, err := guard.Authenticate(db, tokenStr)
		if err != nil {
			appErrors.HandleError(c, err)
			return
		}

		c.Set(principalKey, principal)
		ctx := logger.WithUserID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RoleMiddleware - middleware ограничения по ролям. Вешается после AuthMiddleware.
func RoleMiddleware(guard *auth.Guard, requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			return
		}

		if err := guard.Authorize(principal, requiredRole); err != nil {
			appErrors.HandleError(c, err)
			return
		}

		c.Next()
	}
}

// GetPrincipal извлекает аутентифицированного принципала из контекста
func GetPrincipal(c *gin.Context) *auth.Principal {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil
	}

	principal, ok := val.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}

func dbFromContext(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		return nil
	}
	db, _ := val.(*gorm.DB)
	return db
}
