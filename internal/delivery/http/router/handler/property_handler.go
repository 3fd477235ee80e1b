package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"housekeep/internal/delivery/http/response"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property ingestion handlers.
type PropertyHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(ingestionUC usecase.IngestionUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		ingestionUC: ingestionUC,
		logger:      logger,
	}
}

// ingestPayloadRequest carries a pre-fetched provider payload.
// Payload is raw JSON so the archived bytes are exactly what the caller sent.
// StoreRaw is a pointer so an omitted field defaults to archiving.
type ingestPayloadRequest struct {
	UserID   uuid.UUID       `json:"user_id"`
	Source   string          `json:"source"`
	Payload  json.RawMessage `json:"payload"`
	StoreRaw *bool           `json:"store_raw"`
}

// fetchAddressRequest carries the address pair for provider-driven ingestion.
type fetchAddressRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	Address1 string    `json:"address1"`
	Address2 string    `json:"address2"`
	StoreRaw *bool     `json:"store_raw"`
}

// storeRawOrDefault treats an absent store_raw field as true.
func storeRawOrDefault(v *bool) bool {
	return v == nil || *v
}

// IngestPayload handles direct payload ingestion.
func (h *PropertyHandler) IngestPayload(c echo.Context) error {
	var req ingestPayloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingestion input")
	}
	if req.UserID == uuid.Nil || len(req.Payload) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "user_id and payload are required")
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	output, err := h.ingestionUC.IngestPayload(c.Request().Context(), &usecase.IngestPayloadInput{
		UserID:   req.UserID,
		Source:   source,
		Raw:      []byte(req.Payload),
		StoreRaw: storeRawOrDefault(req.StoreRaw),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, output, "Payload ingested successfully")
}

// FetchAndIngest handles address-driven ingestion through the property provider.
func (h *PropertyHandler) FetchAndIngest(c echo.Context) error {
	var req fetchAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if req.UserID == uuid.Nil || req.Address1 == "" {
		return response.BadRequest(c, "INVALID_INPUT", "user_id and address1 are required")
	}

	output, err := h.ingestionUC.IngestAddress(c.Request().Context(), &usecase.IngestAddressInput{
		UserID:   req.UserID,
		Address1: req.Address1,
		Address2: req.Address2,
		StoreRaw: storeRawOrDefault(req.StoreRaw),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, output, "Address ingested successfully")
}
