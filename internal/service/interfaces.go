package service

import (
	"context"

	"maintenance-scheduler-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the read path exposed to handlers
type ScheduleServiceInterface interface {
	GetDailySchedule(ctx context.Context, dateStr string, opts ScheduleOptions) (*scheduling.DailySchedule, error)
}

// ExecutionServiceInterface defines the execution write path exposed to handlers
type ExecutionServiceInterface interface {
	Upsert(ctx context.Context, req *UpsertExecutionRequest) (*ExecutionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateExecutionRequest) (*ExecutionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShiftServiceInterface defines shift administration exposed to handlers
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftOverrideServiceInterface defines override administration exposed to handlers
type ShiftOverrideServiceInterface interface {
	Create(req *CreateOverrideRequest) (*OverrideResponse, error)
	ListByDate(ctx context.Context, dateStr string) ([]OverrideResponse, error)
	Delete(id uuid.UUID) error
}
