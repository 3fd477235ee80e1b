package handler

import (
	"log/slog"
	"net/http"

	"housekeep/internal/delivery/http/response"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for alert-related handlers.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(alertUC usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
		logger:  logger,
	}
}

// ListHomeAlerts returns all alerts recorded for the home in the path.
func (h *AlertHandler) ListHomeAlerts(c echo.Context) error {
	homeID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid home id")
	}

	alerts, err := h.alertUC.ListHomeAlerts(c.Request().Context(), homeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
