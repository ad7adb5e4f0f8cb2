package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"maintenance-scheduler-backend/internal/config"
	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/logger"
	"maintenance-scheduler-backend/internal/repository"
	"maintenance-scheduler-backend/internal/scheduling"
)

// ScheduleService computes the daily schedule: roster resolution and due-task
// collection feed the allocator, persisted executions are overlaid on the
// result, and the summary is derived from the merged view. The whole read
// path is stateless; repeated calls with unchanged inputs return identical
// schedules.
type ScheduleService struct {
	shiftRepo    repository.ShiftRepositoryInterface
	operatorRepo repository.OperatorRepositoryInterface
	overrideRepo repository.ShiftOverrideRepositoryInterface
	actionRepo   repository.MaintenanceActionRepositoryInterface
	execRepo     repository.MaintenanceExecutionRepositoryInterface
	cfg          *config.Config
	log          *logger.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	shiftRepo repository.ShiftRepositoryInterface,
	operatorRepo repository.OperatorRepositoryInterface,
	overrideRepo repository.ShiftOverrideRepositoryInterface,
	actionRepo repository.MaintenanceActionRepositoryInterface,
	execRepo repository.MaintenanceExecutionRepositoryInterface,
	cfg *config.Config,
) *ScheduleService {
	return &ScheduleService{
		shiftRepo:    shiftRepo,
		operatorRepo: operatorRepo,
		overrideRepo: overrideRepo,
		actionRepo:   actionRepo,
		execRepo:     execRepo,
		cfg:          cfg,
		log:          logger.New(),
	}
}

// ScheduleOptions are per-request overrides of the configured allocation
// defaults. Nil fields fall back to server configuration.
type ScheduleOptions struct {
	BreakMinutes        *int
	BufferMinutes       *int
	GroupByMachine      *bool
	PrioritizeMandatory *bool
}

// GetDailySchedule computes the full schedule for a date
func (s *ScheduleService) GetDailySchedule(ctx context.Context, dateStr string, opts ScheduleOptions) (*scheduling.DailySchedule, error) {
	date, err := scheduling.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	allocCfg, err := s.resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	// Catalog reads share one storage bound. Unlike the execution overlay
	// they cannot degrade: a schedule computed from partial catalogs would
	// be silently wrong, so a timeout here fails the request as retryable.
	catalogCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout())
	defer cancel()

	shiftModels, err := s.shiftRepo.GetAll(catalogCtx)
	if err != nil {
		return nil, catalogErr("shift catalog read", err)
	}
	shifts := toShiftSnapshots(shiftModels)

	// Roster resolution and due-task collection are independent reads and
	// run concurrently; the allocator itself is sequential by design.
	var (
		wg         sync.WaitGroup
		roster     []scheduling.RosterEntry
		rosterErr  error
		dueTasks   []scheduling.DueTask
		collectErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		roster, rosterErr = s.resolveRoster(catalogCtx, date)
	}()
	go func() {
		defer wg.Done()
		dueTasks, collectErr = s.collectDueTasks(catalogCtx, date)
	}()
	wg.Wait()

	if rosterErr != nil {
		return nil, catalogErr("roster read", rosterErr)
	}
	if collectErr != nil {
		return nil, catalogErr("action catalog read", collectErr)
	}

	lanes, unscheduled, err := scheduling.Allocate(dueTasks, roster, shifts, allocCfg)
	if err != nil {
		return nil, err
	}

	executions, degraded, err := s.loadExecutions(ctx, date)
	if err != nil {
		return nil, err
	}
	if degraded {
		s.log.WithField("date", dateStr).Warn("execution lookup timed out, serving schedule with unknown completion status")
	}

	schedule := scheduling.MergeExecutions(lanes, unscheduled, shifts, executions, date, degraded)
	return &schedule, nil
}

// resolveRoster loads operators and overrides and computes effective shifts
func (s *ScheduleService) resolveRoster(ctx context.Context, date time.Time) ([]scheduling.RosterEntry, error) {
	operators, err := s.operatorRepo.GetActiveWithGrants(ctx)
	if err != nil {
		return nil, err
	}
	overrideModels, err := s.overrideRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	overrides := make([]scheduling.Override, 0, len(overrideModels))
	for _, o := range overrideModels {
		overrides = append(overrides, scheduling.Override{OperatorID: o.OperatorID, ShiftID: o.ShiftID})
	}
	indexed, err := scheduling.OverridesByOperator(overrides)
	if err != nil {
		return nil, err
	}

	return scheduling.ResolveRoster(toOperatorSnapshots(operators), indexed)
}

// collectDueTasks loads the action catalog and filters it down to the date
func (s *ScheduleService) collectDueTasks(ctx context.Context, date time.Time) ([]scheduling.DueTask, error) {
	actions, err := s.actionRepo.GetActiveWithMachines(ctx)
	if err != nil {
		return nil, err
	}
	return scheduling.CollectDueTasks(actions, date), nil
}

// catalogErr reports a catalog read that hit the storage bound as retryable
func catalogErr(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStorageTimeoutError(operation)
	}
	return err
}

// loadExecutions fetches the date's execution records under the configured
// storage bound. A timeout degrades to an empty overlay instead of failing
// the schedule: the allocation is still useful without completion state.
func (s *ScheduleService) loadExecutions(ctx context.Context, date time.Time) ([]scheduling.ExecutionRecord, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout())
	defer cancel()

	executions, err := s.execRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, true, nil
		}
		return nil, false, err
	}

	records := make([]scheduling.ExecutionRecord, 0, len(executions))
	for _, exec := range executions {
		record := scheduling.ExecutionRecord{
			ActionID:      exec.ActionID,
			MachineID:     exec.MachineID,
			Status:        exec.Status,
			ActualMinutes: exec.ActualMinutes,
		}
		if exec.CompletedBy != nil {
			record.CompletedByName = exec.CompletedBy.FullName
		}
		records = append(records, record)
	}
	return records, false, nil
}

func (s *ScheduleService) resolveConfig(opts ScheduleOptions) (scheduling.Config, error) {
	cfg := scheduling.Config{
		BufferMinutes:       s.cfg.SchedulerBufferMinutes,
		GroupByMachine:      s.cfg.SchedulerGroupByMachine,
		PrioritizeMandatory: s.cfg.SchedulerPrioritizeMandatory,
	}

	if opts.BreakMinutes != nil {
		if *opts.BreakMinutes < 0 {
			return cfg, apperrors.ErrNegativeBreak
		}
		cfg.BreakMinutes = *opts.BreakMinutes
	}
	if opts.BufferMinutes != nil {
		if *opts.BufferMinutes < 0 {
			return cfg, apperrors.ErrNegativeBuffer
		}
		cfg.BufferMinutes = *opts.BufferMinutes
	}
	if opts.GroupByMachine != nil {
		cfg.GroupByMachine = *opts.GroupByMachine
	}
	if opts.PrioritizeMandatory != nil {
		cfg.PrioritizeMandatory = *opts.PrioritizeMandatory
	}
	return cfg, nil
}

func toShiftSnapshots(shifts []models.Shift) []scheduling.Shift {
	out := make([]scheduling.Shift, 0, len(shifts))
	for _, shift := range shifts {
		out = append(out, scheduling.Shift{
			ID:           shift.ID,
			Name:         shift.Name,
			StartMinute:  shift.StartMinute,
			EndMinute:    shift.EndMinute,
			BreakMinutes: shift.BreakMinutes,
		})
	}
	return out
}

func toOperatorSnapshots(operators []models.Operator) []scheduling.Operator {
	out := make([]scheduling.Operator, 0, len(operators))
	for _, op := range operators {
		grants := make([]string, 0, len(op.Grants))
		for _, g := range op.Grants {
			grants = append(grants, g.Group)
		}
		out = append(out, scheduling.Operator{
			ID:             op.ID,
			Code:           op.Code,
			Name:           op.FullName,
			DefaultShiftID: op.DefaultShiftID,
			Grants:         grants,
		})
	}
	return out
}
