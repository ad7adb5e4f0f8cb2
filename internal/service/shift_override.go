package service

import (
	"context"
	"errors"
	"fmt"

	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/repository"
	"maintenance-scheduler-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftOverrideService handles date-specific roster overrides. Creating an
// override replaces the operator's default shift for one date; deleting it
// reverts them to the default.
type ShiftOverrideService struct {
	repo      repository.ShiftOverrideRepositoryInterface
	opRepo    repository.OperatorRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// NewShiftOverrideService creates a new shift override service
func NewShiftOverrideService(
	repo repository.ShiftOverrideRepositoryInterface,
	opRepo repository.OperatorRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	validator *validator.Validate,
) *ShiftOverrideService {
	return &ShiftOverrideService{repo: repo, opRepo: opRepo, shiftRepo: shiftRepo, validator: validator}
}

// CreateOverrideRequest represents the request to create a shift override.
// A nil ShiftID removes the operator from the date's roster entirely.
type CreateOverrideRequest struct {
	OperatorID uuid.UUID  `json:"operator_id" validate:"required"`
	Date       string     `json:"date" validate:"required"`
	ShiftID    *uuid.UUID `json:"shift_id,omitempty"`
}

// OverrideResponse represents the response for override operations
type OverrideResponse struct {
	ID         uuid.UUID  `json:"id"`
	OperatorID uuid.UUID  `json:"operator_id"`
	Date       string     `json:"date"`
	ShiftID    *uuid.UUID `json:"shift_id,omitempty"`
}

// Create upserts the override for (operator, date)
func (s *ShiftOverrideService) Create(req *CreateOverrideRequest) (*OverrideResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	if _, err := s.opRepo.GetByID(req.OperatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to verify operator: %w", err)
	}
	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(*req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftNotFound
			}
			return nil, fmt.Errorf("failed to verify shift: %w", err)
		}
	}

	override := &models.ShiftOverride{
		OperatorID: req.OperatorID,
		Date:       date,
		ShiftID:    req.ShiftID,
	}
	if err := s.repo.Upsert(override); err != nil {
		return nil, fmt.Errorf("failed to upsert override: %w", err)
	}

	stored, err := s.repo.GetByOperatorAndDate(req.OperatorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read back override: %w", err)
	}
	return toOverrideResponse(stored), nil
}

// ListByDate retrieves the overrides active on a date
func (s *ShiftOverrideService) ListByDate(ctx context.Context, dateStr string) ([]OverrideResponse, error) {
	date, err := scheduling.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	overrides, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	responses := make([]OverrideResponse, len(overrides))
	for i := range overrides {
		responses[i] = *toOverrideResponse(&overrides[i])
	}
	return responses, nil
}

// Delete removes an override, reverting the operator to their default shift
func (s *ShiftOverrideService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOverrideNotFound
		}
		return fmt.Errorf("failed to get override: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete override: %w", err)
	}
	return nil
}

func toOverrideResponse(override *models.ShiftOverride) *OverrideResponse {
	return &OverrideResponse{
		ID:         override.ID,
		OperatorID: override.OperatorID,
		Date:       override.Date.Format("2006-01-02"),
		ShiftID:    override.ShiftID,
	}
}
