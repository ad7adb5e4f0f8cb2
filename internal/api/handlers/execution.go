package handlers

import (
	"net/http"

	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExecutionHandler handles HTTP requests for execution records
type ExecutionHandler struct {
	executionService service.ExecutionServiceInterface
}

// NewExecutionHandler creates a new execution handler
func NewExecutionHandler(executionService service.ExecutionServiceInterface) *ExecutionHandler {
	return &ExecutionHandler{executionService: executionService}
}

// UpsertExecution handles PUT /executions
// @Summary Record a task completion or skip
// @Description Creates or overwrites the execution record keyed by (action, machine, date). Last write wins; the key is serialized by a unique constraint.
// @Tags executions
// @Accept json
// @Produce json
// @Param request body service.UpsertExecutionRequest true "Execution record"
// @Success 200 {object} service.ExecutionResponse "Record stored"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Action, machine or operator not found"
// @Failure 503 {object} map[string]interface{} "Storage timeout, retryable"
// @Router /executions [put]
func (h *ExecutionHandler) UpsertExecution(c *gin.Context) {
	var req service.UpsertExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	response, err := h.executionService.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateExecution handles PATCH /executions/:id
// @Summary Correct an execution record
// @Tags executions
// @Accept json
// @Produce json
// @Param id path string true "Execution ID (UUID)"
// @Param request body service.UpdateExecutionRequest true "Fields to change"
// @Success 200 {object} service.ExecutionResponse "Record updated"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Execution not found"
// @Router /executions/{id} [patch]
func (h *ExecutionHandler) UpdateExecution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid execution ID"})
		return
	}

	var req service.UpdateExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	response, err := h.executionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteExecution handles DELETE /executions/:id
// @Summary Undo a completion
// @Description Removes the execution record; the task reads as pending again. Deleting a missing record succeeds (idempotent undo).
// @Tags executions
// @Produce json
// @Param id path string true "Execution ID (UUID)"
// @Success 204 "Record removed (or was already absent)"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Router /executions/{id} [delete]
func (h *ExecutionHandler) DeleteExecution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid execution ID"})
		return
	}

	if err := h.executionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
