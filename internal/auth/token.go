package auth

import (
	"errors"
	"time"

	"unibridge_backend/internal/models"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken — единственная ошибка верификации. Подпись, формат и
// истечение срока намеренно не различаются для вызывающего.
var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка access token
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwtv5.RegisteredClaims
}

// TokenManager выпускает и проверяет подписанные токены. Секрет и TTL
// передаются при создании — никакого глобального состояния.
type TokenManager struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenManager(secret string, defaultTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Generate выпускает токен с TTL по умолчанию.
func (m *TokenManager) Generate(userID string, role models.UserRole) (string, error) {
	return m.GenerateWithTTL(userID, role, m.defaultTTL)
}

// GenerateWithTTL выпускает токен с переопределенным сроком жизни.
func (m *TokenManager) GenerateWithTTL(userID string, role models.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "unibridge",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse проверяет подпись и срок действия токена.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
