package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sensor-ops/internal/pkg/config"
	"sensor-ops/pkg/constants"
	"sensor-ops/pkg/responses"
)

// UserClaims carries the session identity. Username and Role replace the
// key/value state the old client persisted in the browser.
type UserClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"` // admin, member or user
	Type     string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a short-lived access token.
func GenerateAccessToken(username, role string) (string, error) {
	return generate(username, role, constants.JWTTypeAccess,
		config.GlobalConfig.Auth.JWT.AccessTokenExpire)
}

// GenerateRefreshToken issues a refresh token.
func GenerateRefreshToken(username, role string) (string, error) {
	return generate(username, role, constants.JWTTypeRefresh,
		config.GlobalConfig.Auth.JWT.RefreshTokenExpire)
}

func generate(username, role, tokenType string, expireSeconds int) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	claims := UserClaims{
		Username: username,
		Role:     role,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireSeconds) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken parses and verifies a token string.
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, responses.Wrap(responses.CodeUnauthorized, "parse token", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, responses.ErrInvalidToken
}

// ValidateToken parses a token and rejects expired ones.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, responses.ErrTokenExpired
	}

	return claims, nil
}
