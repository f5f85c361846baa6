package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "tryon/internal/errors"
	"tryon/internal/model"
	"tryon/internal/service"
)

// HeaderUserID carries the caller-supplied identity. The value is trusted
// as-is; there is no session or signature validation behind it.
const HeaderUserID = "X-User-Id"

// OutfitHandler handles saved-outfit endpoints.
type OutfitHandler struct {
	svc service.OutfitService
}

// NewOutfitHandler creates a new outfit handler.
func NewOutfitHandler(svc service.OutfitService) *OutfitHandler {
	return &OutfitHandler{svc: svc}
}

// SaveOutfitRequest represents a save-outfit request.
type SaveOutfitRequest struct {
	OriginalPhotoURL string  `json:"originalPhotoUrl" validate:"required"`
	ResultPhotoURL   string  `json:"resultPhotoUrl" validate:"required"`
	ClothingItemID   *FlexID `json:"clothingItemId"`
	ClothingName     *string `json:"clothingName"`
}

// OutfitListResponse wraps the outfit list.
type OutfitListResponse struct {
	Outfits []model.Outfit `json:"outfits"`
}

// SaveOutfitResponse confirms an inserted outfit.
type SaveOutfitResponse struct {
	Success   bool      `json:"success"`
	OutfitID  uint      `json:"outfitId"`
	CreatedAt time.Time `json:"createdAt"`
}

// identity extracts the trusted user id from the identity header.
// Header lookup is case-insensitive per net/http canonicalization.
func identity(c echo.Context) (uint, error) {
	v := c.Request().Header.Get(HeaderUserID)
	if v == "" {
		return 0, apperrors.ErrIdentityRequired
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidIdentity
	}
	return uint(id), nil
}

// MethodNotAllowed keeps the identity check ahead of method dispatch: an
// unsupported method without the identity header still yields 401.
func (h *OutfitHandler) MethodNotAllowed(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return respondError(c, err)
	}
	return echo.ErrMethodNotAllowed
}

// List godoc
// @Summary List the caller's saved outfits, newest first
// @Tags outfits
// @Produce json
// @Param X-User-Id header int true "User ID"
// @Success 200 {object} OutfitListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /outfits [get]
func (h *OutfitHandler) List(c echo.Context) error {
	userID, err := identity(c)
	if err != nil {
		return respondError(c, err)
	}

	outfits, err := h.svc.ListOutfits(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if outfits == nil {
		outfits = []model.Outfit{}
	}
	return c.JSON(http.StatusOK, OutfitListResponse{Outfits: outfits})
}

// Save godoc
// @Summary Save a try-on result as an outfit
// @Tags outfits
// @Accept json
// @Produce json
// @Param X-User-Id header int true "User ID"
// @Param request body SaveOutfitRequest true "Outfit payload"
// @Success 201 {object} SaveOutfitResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /outfits [post]
func (h *OutfitHandler) Save(c echo.Context) error {
	userID, err := identity(c)
	if err != nil {
		return respondError(c, err)
	}

	var req SaveOutfitRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrOutfitFieldsMissing)
	}

	outfit := &model.Outfit{
		OriginalPhotoURL: req.OriginalPhotoURL,
		ResultPhotoURL:   req.ResultPhotoURL,
		ClothingItemID:   (*string)(req.ClothingItemID),
		ClothingName:     req.ClothingName,
	}
	saved, err := h.svc.SaveOutfit(c.Request().Context(), userID, outfit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, SaveOutfitResponse{
		Success:   true,
		OutfitID:  saved.ID,
		CreatedAt: saved.CreatedAt,
	})
}
