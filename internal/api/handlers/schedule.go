package handlers

import (
	"net/http"
	"strconv"

	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for the daily schedule
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetDailySchedule handles GET /schedule/:date
// @Summary Get the daily maintenance schedule
// @Description Computes the conflict-free schedule for a date: per-operator lanes within each shift, unplaceable tasks with reasons, and roll-up statistics, overlaid with persisted execution state.
// @Tags schedule
// @Produce json
// @Param date path string true "Schedule date (YYYY-MM-DD)"
// @Param buffer-minutes query int false "Safety margin subtracted from every lane"
// @Param break-minutes query int false "Break fallback for shifts without an encoded break"
// @Param group-by-machine query bool false "Keep a machine's tasks back-to-back in one lane"
// @Param prioritize-mandatory query bool false "Place mandatory tasks before ideal ones (default true)"
// @Success 200 {object} scheduling.DailySchedule "Successfully computed schedule"
// @Failure 400 {object} map[string]interface{} "Malformed date or options"
// @Failure 422 {object} map[string]interface{} "Inconsistent roster or shift data"
// @Router /schedule/{date} [get]
func (h *ScheduleHandler) GetDailySchedule(c *gin.Context) {
	opts, err := parseScheduleOptions(c)
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.scheduleService.GetDailySchedule(c.Request.Context(), c.Param("date"), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func parseScheduleOptions(c *gin.Context) (service.ScheduleOptions, error) {
	var opts service.ScheduleOptions

	if raw := c.Query("break-minutes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("break-minutes", "must be an integer")
		}
		opts.BreakMinutes = &v
	}
	if raw := c.Query("buffer-minutes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("buffer-minutes", "must be an integer")
		}
		opts.BufferMinutes = &v
	}
	if raw := c.Query("group-by-machine"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("group-by-machine", "must be a boolean")
		}
		opts.GroupByMachine = &v
	}
	if raw := c.Query("prioritize-mandatory"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("prioritize-mandatory", "must be a boolean")
		}
		opts.PrioritizeMandatory = &v
	}

	return opts, nil
}
