package handler

import (
	"log/slog"
	"net/http"

	"housekeep/internal/delivery/http/response"
	"housekeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	identityUC  usecase.IdentityUsecase
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(identityUC usecase.IdentityUsecase, ingestionUC usecase.IngestionUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		identityUC:  identityUC,
		ingestionUC: ingestionUC,
		logger:      logger,
	}
}

// ResolveUser handles the identity resolution request. The same call both
// looks up and registers users; the response does not distinguish the two.
func (h *UserHandler) ResolveUser(c echo.Context) error {
	var input usecase.ResolveUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid identity input")
	}

	user, err := h.identityUC.ResolveOrCreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User resolved successfully")
}

// ListHomes returns all homes owned by the user in the path.
func (h *UserHandler) ListHomes(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	homes, err := h.ingestionUC.ListHomes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, homes, "")
}
