package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "tryon/internal/errors"
	"tryon/internal/service"
)

// TryOnHandler handles the virtual try-on endpoint.
type TryOnHandler struct {
	svc service.TryOnService
}

// NewTryOnHandler creates a new try-on handler.
func NewTryOnHandler(svc service.TryOnService) *TryOnHandler {
	return &TryOnHandler{svc: svc}
}

// TryOnRequest represents a virtual try-on request. UserPhoto is base64,
// optionally prefixed with a data-URL header.
type TryOnRequest struct {
	UserPhoto    string `json:"userPhoto" validate:"required"`
	ClothingID   FlexID `json:"clothingId" validate:"required"`
	ClothingName string `json:"clothingName"`
}

// TryOnResponse represents a completed try-on.
type TryOnResponse struct {
	Success          bool   `json:"success"`
	OriginalPhotoURL string `json:"originalPhotoUrl"`
	ResultPhotoURL   string `json:"resultPhotoUrl"`
	ClothingID       string `json:"clothingId"`
	ClothingName     string `json:"clothingName"`
	Message          string `json:"message"`
}

// TryOn godoc
// @Summary Apply a clothing item to a user photo
// @Tags tryon
// @Accept json
// @Produce json
// @Param request body TryOnRequest true "Try-on payload"
// @Success 200 {object} TryOnResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /virtual-tryon [post]
func (h *TryOnHandler) TryOn(c echo.Context) error {
	var req TryOnRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrTryOnFieldsMissing)
	}
	if req.ClothingName == "" {
		req.ClothingName = "Unknown"
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	result, err := h.svc.Process(c.Request().Context(), requestID, req.UserPhoto, string(req.ClothingID), req.ClothingName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TryOnResponse{
		Success:          true,
		OriginalPhotoURL: result.OriginalPhotoURL,
		ResultPhotoURL:   result.ResultPhotoURL,
		ClothingID:       result.ClothingID,
		ClothingName:     result.ClothingName,
		Message:          "Virtual try-on completed successfully",
	})
}
