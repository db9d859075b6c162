package auth

import (
	"unibridge_backend/internal/appErrors"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"

	"gorm.io/gorm"
)

// Principal — аутентифицированная личность, разрешенная из токена.
type Principal struct {
	ID   string
	Role models.UserRole
}

// Guard разрешает токен в Principal и проверяет роль перед защищенной
// операцией. Разделение authenticate/authorize позволяет одной и той же
// логике разбора токена обслуживать эндпоинты с разными требованиями к роли.
type Guard struct {
	tokens *TokenManager
	users  repositories.UserRepository
}

func NewGuard(tokens *TokenManager, users repositories.UserRepository) *Guard {
	return &Guard{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate проверяет токен и загружает субъект из хранилища.
// Субъект перечитывается на каждый вызов: токен может пережить своего
// пользователя, и тогда это NotFound, а не устаревший успех.
func (g *Guard) Authenticate(db *gorm.DB, token string) (*Principal, error) {
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return nil, appErrors.ErrUnauthorized
	}

	user, err := g.users.FindByID(db, claims.UserID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Роль берем из хранилища, а не из токена: вшитая в токен роль
	// могла устареть.
	return &Principal{
		ID:   user.ID,
		Role: user.Role,
	}, nil
}

// Authorize проверяет, что роль принципала совпадает с требуемой.
// Сравнение регистронезависимое.
func (g *Guard) Authorize(principal *Principal, requiredRole models.UserRole) error {
	if principal == nil {
		return appErrors.ErrUnauthorized
	}
	if !principal.Role.Equals(requiredRole) {
		return appErrors.ErrForbidden
	}
	return nil
}
