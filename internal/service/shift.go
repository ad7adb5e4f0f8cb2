package service

import (
	"context"
	"errors"
	"fmt"

	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles business logic for shift configuration
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{repo: repo, validator: validator}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=40"`
	DisplayName  string `json:"display_name" validate:"max=100"`
	StartMinute  int    `json:"start_minute" validate:"min=0,max=1439"`
	EndMinute    int    `json:"end_minute" validate:"required,min=1,max=1440"`
	BreakMinutes int    `json:"break_minutes" validate:"min=0"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	DisplayName  *string `json:"display_name,omitempty"`
	StartMinute  *int    `json:"start_minute,omitempty"`
	EndMinute    *int    `json:"end_minute,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	StartMinute  int       `json:"start_minute"`
	EndMinute    int       `json:"end_minute"`
	BreakMinutes int       `json:"break_minutes"`
}

// Create creates a new shift
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateWindow(req.StartMinute, req.EndMinute, req.BreakMinutes); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrShiftExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify shift name: %w", err)
	}

	shift := &models.Shift{
		Name:         req.Name,
		DisplayName:  req.DisplayName,
		StartMinute:  req.StartMinute,
		EndMinute:    req.EndMinute,
		BreakMinutes: req.BreakMinutes,
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// List retrieves all shifts ordered by start time
func (s *ShiftService) List(ctx context.Context) ([]ShiftResponse, error) {
	shifts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i])
	}
	return responses, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.DisplayName != nil {
		shift.DisplayName = *req.DisplayName
	}
	if req.StartMinute != nil {
		shift.StartMinute = *req.StartMinute
	}
	if req.EndMinute != nil {
		shift.EndMinute = *req.EndMinute
	}
	if req.BreakMinutes != nil {
		shift.BreakMinutes = *req.BreakMinutes
	}

	if err := validateWindow(shift.StartMinute, shift.EndMinute, shift.BreakMinutes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// Delete removes a shift. Shifts still assigned as an operator default
// cannot be removed; the roster would silently lose those operators.
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	count, err := s.repo.CountOperatorsWithDefault(id)
	if err != nil {
		return fmt.Errorf("failed to count default assignments: %w", err)
	}
	if count > 0 {
		return apperrors.NewDataIntegrityError("shift is the default for %d operator(s)", count)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func validateWindow(start, end, breakMinutes int) error {
	if end <= start {
		return apperrors.ErrShiftWindow
	}
	if breakMinutes >= end-start {
		return apperrors.ErrBreakExceedsShift
	}
	return nil
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:           shift.ID,
		Name:         shift.Name,
		DisplayName:  shift.DisplayName,
		StartTime:    models.ClockString(shift.StartMinute),
		EndTime:      models.ClockString(shift.EndMinute),
		StartMinute:  shift.StartMinute,
		EndMinute:    shift.EndMinute,
		BreakMinutes: shift.BreakMinutes,
	}
}
