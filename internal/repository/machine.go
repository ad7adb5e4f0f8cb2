package repository

import (
	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineRepository handles database operations for machines.
// Machines are an external catalog; the scheduler only reads them.
type MachineRepository struct {
	db *gorm.DB
}

// NewMachineRepository creates a new machine repository
func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// GetByID retrieves a machine by ID
func (r *MachineRepository) GetByID(id uuid.UUID) (*models.Machine, error) {
	var machine models.Machine
	err := r.db.First(&machine, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &machine, nil
}

// GetByCode retrieves a machine by its unique code
func (r *MachineRepository) GetByCode(code string) (*models.Machine, error) {
	var machine models.Machine
	err := r.db.First(&machine, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &machine, nil
}

// GetAll retrieves all machines ordered by code
func (r *MachineRepository) GetAll() ([]models.Machine, error) {
	var machines []models.Machine
	err := r.db.Order("code asc").Find(&machines).Error
	return machines, err
}
