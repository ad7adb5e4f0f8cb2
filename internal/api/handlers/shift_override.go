package handlers

import (
	"net/http"

	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftOverrideHandler handles HTTP requests for roster overrides
type ShiftOverrideHandler struct {
	overrideService service.ShiftOverrideServiceInterface
}

// NewShiftOverrideHandler creates a new shift override handler
func NewShiftOverrideHandler(overrideService service.ShiftOverrideServiceInterface) *ShiftOverrideHandler {
	return &ShiftOverrideHandler{overrideService: overrideService}
}

// ListOverrides handles GET /shift-overrides?date=YYYY-MM-DD
func (h *ShiftOverrideHandler) ListOverrides(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	overrides, err := h.overrideService.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// CreateOverride handles POST /shift-overrides
func (h *ShiftOverrideHandler) CreateOverride(c *gin.Context) {
	var req service.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	override, err := h.overrideService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, override)
}

// DeleteOverride handles DELETE /shift-overrides/:id, reverting the operator
// to their default shift for the date
func (h *ShiftOverrideHandler) DeleteOverride(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid override ID"})
		return
	}

	if err := h.overrideService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
