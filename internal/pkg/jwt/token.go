package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/atapsolar/authhub/internal/pkg/models"
)

// SessionRole is the fixed role claim carried by every session token
const SessionRole = "user"

// GenerateToken generates a signed session token for the given user.
// The token is self-contained: validity is a function of signature and
// expiry only, nothing is persisted server-side.
func GenerateToken(user *models.User, phone string, isAdmin bool, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"phone":    phone,
		"role":     SessionRole,
		"is_admin": isAdmin,
		"name":     user.Name,
		"exp":      expiresAt,
		"iss":      cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns its claims.
// Expiry is checked by the parser against current wall-clock time.
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
