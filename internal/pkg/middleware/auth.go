package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/internal/utils"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "auth_token"

// CookieAuthMiddleware creates JWT middleware that reads the session token
// from the auth cookie. Claims are exposed to handlers via c.Get("user").
func CookieAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(config.Secret),
		TokenLookup: "cookie:" + SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Unauthorized: Invalid token")
		},
		SuccessHandler: func(c echo.Context) {
			if claims := SessionClaims(c); claims != nil {
				if userID, ok := claims["user_id"]; ok {
					c.Set("user_id", userID)
				}
			}
		},
	})
}

// RequireAdmin gates a route group to sessions carrying the is_admin claim.
// Must run after CookieAuthMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := SessionClaims(c)
			if claims == nil {
				return utils.UnauthorizedResponse(c, "Unauthorized: No token provided")
			}

			isAdmin, ok := claims["is_admin"].(bool)
			if !ok || !isAdmin {
				return utils.ForbiddenResponse(c, "Admin access required")
			}

			return next(c)
		}
	}
}

// SessionClaims extracts the verified session claims from the Echo context,
// or nil when the request carries no valid session
func SessionClaims(c echo.Context) jwt.MapClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	return claims
}
