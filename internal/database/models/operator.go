package models

import "github.com/google/uuid"

// Operator represents a maintenance operator that can be rostered onto shifts
type Operator struct {
	BaseModel
	Code           string     `json:"code" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	FullName       string     `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	DefaultShiftID *uuid.UUID `json:"default_shift_id" gorm:"type:uuid;index"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`

	DefaultShift *Shift               `json:"default_shift,omitempty" gorm:"foreignKey:DefaultShiftID"`
	Grants       []AuthorizationGrant `json:"grants,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Operator
func (Operator) TableName() string {
	return "operators"
}

// HasGrant reports whether the operator holds the given authorization group.
// An empty group means the task requires no authorization.
func (o *Operator) HasGrant(group string) bool {
	if group == "" {
		return true
	}
	for _, g := range o.Grants {
		if g.Group == group {
			return true
		}
	}
	return false
}

// AuthorizationGrant links an operator to an authorization group it may service
type AuthorizationGrant struct {
	BaseModel
	OperatorID uuid.UUID `json:"operator_id" gorm:"type:uuid;not null;uniqueIndex:uq_grants_operator_group" validate:"required"`
	Group      string    `json:"group" gorm:"size:40;not null;uniqueIndex:uq_grants_operator_group" validate:"required,min=1,max=40"`
}

// TableName returns the table name for AuthorizationGrant
func (AuthorizationGrant) TableName() string {
	return "authorization_grants"
}
