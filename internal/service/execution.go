package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/repository"
	"maintenance-scheduler-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecutionService handles the write path for execution records. It mutates
// execution state only, never the generated allocation, and deliberately does
// not check the key against the allocator's output: a task the scheduler
// could not place may still be completed by hand.
type ExecutionService struct {
	repo        repository.MaintenanceExecutionRepositoryInterface
	actionRepo  repository.MaintenanceActionRepositoryInterface
	machineRepo repository.MachineRepositoryInterface
	opRepo      repository.OperatorRepositoryInterface
	validator   *validator.Validate
}

// NewExecutionService creates a new execution service
func NewExecutionService(
	repo repository.MaintenanceExecutionRepositoryInterface,
	actionRepo repository.MaintenanceActionRepositoryInterface,
	machineRepo repository.MachineRepositoryInterface,
	opRepo repository.OperatorRepositoryInterface,
	validator *validator.Validate,
) *ExecutionService {
	return &ExecutionService{
		repo:        repo,
		actionRepo:  actionRepo,
		machineRepo: machineRepo,
		opRepo:      opRepo,
		validator:   validator,
	}
}

// UpsertExecutionRequest represents the request to record a completion or skip
type UpsertExecutionRequest struct {
	ActionID      uuid.UUID              `json:"action_id" validate:"required"`
	MachineID     uuid.UUID              `json:"machine_id" validate:"required"`
	ScheduledDate string                 `json:"scheduled_date" validate:"required"`
	Status        models.ExecutionStatus `json:"status" validate:"required"`
	ActualMinutes int                    `json:"actual_minutes" validate:"min=0"`
	CompletedByID *uuid.UUID             `json:"completed_by_id,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
}

// UpdateExecutionRequest represents a correction to an existing record
type UpdateExecutionRequest struct {
	Status        *models.ExecutionStatus `json:"status,omitempty"`
	ActualMinutes *int                    `json:"actual_minutes,omitempty"`
	CompletedByID *uuid.UUID              `json:"completed_by_id,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

// ExecutionResponse represents the response for execution operations
type ExecutionResponse struct {
	ID            uuid.UUID              `json:"id"`
	ActionID      uuid.UUID              `json:"action_id"`
	MachineID     uuid.UUID              `json:"machine_id"`
	ScheduledDate string                 `json:"scheduled_date"`
	Status        models.ExecutionStatus `json:"status"`
	ActualMinutes int                    `json:"actual_minutes"`
	CompletedByID *uuid.UUID             `json:"completed_by_id,omitempty"`
	Notes         string                 `json:"notes"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	CreatedAt     string                 `json:"created_at"`
	UpdatedAt     string                 `json:"updated_at"`
}

// Upsert creates or overwrites the record keyed by (action, machine, date).
// Concurrent calls for the same key serialize on the unique constraint;
// the last write wins.
func (s *ExecutionService) Upsert(ctx context.Context, req *UpsertExecutionRequest) (*ExecutionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := scheduling.ParseDate(req.ScheduledDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	// A pending record is expressed by the absence of a row; undo is delete.
	if req.Status != models.ExecutionStatusCompleted && req.Status != models.ExecutionStatusSkipped {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.actionRepo.GetByID(req.ActionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to verify maintenance action: %w", err)
	}
	if _, err := s.machineRepo.GetByID(req.MachineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to verify machine: %w", err)
	}
	if req.CompletedByID != nil {
		if _, err := s.opRepo.GetByID(*req.CompletedByID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOperatorNotFound
			}
			return nil, fmt.Errorf("failed to verify operator: %w", err)
		}
	}

	now := time.Now().UTC()
	execution := &models.MaintenanceExecution{
		ActionID:      req.ActionID,
		MachineID:     req.MachineID,
		ScheduledDate: date,
		Status:        req.Status,
		ActualMinutes: req.ActualMinutes,
		CompletedByID: req.CompletedByID,
		Notes:         req.Notes,
		CompletedAt:   &now,
	}

	if err := s.repo.Upsert(ctx, execution); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewStorageTimeoutError("execution upsert")
		}
		return nil, fmt.Errorf("failed to upsert execution: %w", err)
	}

	// Re-read by key: on conflict the stored row keeps its original id.
	stored, err := s.repo.GetByKey(req.ActionID, req.MachineID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read back execution: %w", err)
	}

	return s.toResponse(stored), nil
}

// Update corrects an existing execution record
func (s *ExecutionService) Update(ctx context.Context, id uuid.UUID, req *UpdateExecutionRequest) (*ExecutionResponse, error) {
	execution, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExecutionNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	if req.Status != nil {
		if *req.Status != models.ExecutionStatusCompleted && *req.Status != models.ExecutionStatusSkipped {
			return nil, apperrors.ErrInvalidStatus
		}
		execution.Status = *req.Status
	}
	if req.ActualMinutes != nil {
		if *req.ActualMinutes < 0 {
			return nil, apperrors.NewInvalidInputError("actual_minutes", "must not be negative")
		}
		execution.ActualMinutes = *req.ActualMinutes
	}
	if req.CompletedByID != nil {
		if _, err := s.opRepo.GetByID(*req.CompletedByID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOperatorNotFound
			}
			return nil, fmt.Errorf("failed to verify operator: %w", err)
		}
		execution.CompletedByID = req.CompletedByID
	}
	if req.Notes != nil {
		execution.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, execution); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewStorageTimeoutError("execution update")
		}
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	return s.toResponse(execution), nil
}

// Delete removes an execution record, reverting the task to pending on the
// next schedule read. Deleting a missing record succeeds: undo is idempotent.
func (s *ExecutionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewStorageTimeoutError("execution delete")
		}
		return fmt.Errorf("failed to delete execution: %w", err)
	}
	return nil
}

// toResponse converts an execution model to response
func (s *ExecutionService) toResponse(execution *models.MaintenanceExecution) *ExecutionResponse {
	return &ExecutionResponse{
		ID:            execution.ID,
		ActionID:      execution.ActionID,
		MachineID:     execution.MachineID,
		ScheduledDate: execution.ScheduledDate.Format("2006-01-02"),
		Status:        execution.Status,
		ActualMinutes: execution.ActualMinutes,
		CompletedByID: execution.CompletedByID,
		Notes:         execution.Notes,
		CompletedAt:   execution.CompletedAt,
		CreatedAt:     execution.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     execution.UpdatedAt.Format(time.RFC3339),
	}
}
