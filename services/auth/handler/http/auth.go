package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/internal/pkg/middleware"
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/internal/utils"
	"github.com/atapsolar/authhub/services/auth"
)

// AuthHandler handles HTTP requests for OTP authentication
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// verifyOTPResponse is the body returned on successful verification. The
// session token travels only in the cookie, never in the body.
type verifyOTPResponse struct {
	Success bool               `json:"success"`
	User    models.SessionUser `json:"user"`
}

// SendOTP handles OTP generation and delivery requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	err := h.authUC.SendOTP(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Phone number is required")
		case errors.Is(err, auth.ErrUnregisteredNumber):
			return utils.ForbiddenResponse(c, "Access Denied: Number not registered")
		case errors.Is(err, auth.ErrDeliveryFailure):
			return utils.ServiceUnavailableResponse(c, "Failed to send OTP via WhatsApp")
		default:
			logger.Error("Failed to send OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		}
	}

	return utils.SuccessMessage(c, "OTP sent")
}

// VerifyOTP handles code verification and session issuance requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone number and code are required")
	}

	result, err := h.authUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Phone number and code are required")
		case errors.Is(err, auth.ErrInvalidOrExpiredOTP):
			return utils.BadRequestResponse(c, "Invalid or expired OTP")
		case errors.Is(err, auth.ErrIdentityNotFound):
			return utils.ForbiddenResponse(c, "User not found")
		default:
			logger.Error("Failed to verify OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
		}
	}

	c.SetCookie(h.sessionCookie(result.Token, h.cfg.JWT.Expiration*60))

	return c.JSON(http.StatusOK, verifyOTPResponse{
		Success: true,
		User:    result.User,
	})
}

// Me returns the claims of the current session
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": claims,
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return utils.SuccessMessage(c, "Logged out")
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		MaxAge:   maxAge,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
		Secure:   h.cfg.Cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
