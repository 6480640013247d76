package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/atapsolar/authhub/internal/pkg/middleware"
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler  *http.AuthHandler
	adminHandler *http.AdminHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	adminHandler *http.AdminHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		adminHandler: adminHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sessionAuth := middleware.CookieAuthMiddleware(h.cfg.JWT)

	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/logout", h.authHandler.Logout)

	// Session introspection requires a valid cookie
	authGroup.GET("/me", h.authHandler.Me, sessionAuth)

	// Admin routes require a valid session with the admin claim
	adminGroup := e.Group("/admin", sessionAuth, middleware.RequireAdmin())
	adminGroup.GET("/origins", h.adminHandler.GetOrigins)
	adminGroup.POST("/origins", h.adminHandler.AddOrigin)
	adminGroup.DELETE("/origins", h.adminHandler.RemoveOrigin)
}
