package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/internal/utils"
	"github.com/atapsolar/authhub/services/auth"
)

// AdminHandler handles HTTP requests for allow-list management
type AdminHandler struct {
	authUC auth.AuthUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authUC auth.AuthUC) *AdminHandler {
	return &AdminHandler{
		authUC: authUC,
	}
}

type originsResponse struct {
	Origins []string `json:"origins"`
}

// GetOrigins returns the durable CORS origin allow-list
func (h *AdminHandler) GetOrigins(c echo.Context) error {
	origins, err := h.authUC.ListOrigins(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list origins", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list origins")
	}

	return c.JSON(http.StatusOK, originsResponse{Origins: origins})
}

// AddOrigin adds an origin to the allow-list
func (h *AdminHandler) AddOrigin(c echo.Context) error {
	var req models.OriginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.authUC.AddOrigin(c.Request().Context(), req.Origin)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidOrigin) {
			return utils.BadRequestResponse(c, "Valid URL origin required (e.g. https://example.com)")
		}
		logger.Error("Failed to add origin", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to add origin")
	}

	return utils.SuccessMessage(c, "Origin added")
}

// RemoveOrigin removes an origin from the allow-list
func (h *AdminHandler) RemoveOrigin(c echo.Context) error {
	var req models.OriginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.authUC.RemoveOrigin(c.Request().Context(), req.Origin)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidOrigin) {
			return utils.BadRequestResponse(c, "Origin required")
		}
		logger.Error("Failed to remove origin", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to remove origin")
	}

	return utils.SuccessMessage(c, "Origin removed")
}
