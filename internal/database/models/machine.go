package models

// Machine represents an external machine record the scheduler reads by reference.
// The scheduler never mutates machines; they are seeded by the surrounding system.
type Machine struct {
	BaseModel
	Code               string `json:"code" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	Description        string `json:"description" gorm:"size:200" validate:"max=200"`
	Area               string `json:"area" gorm:"size:60" validate:"max=60"`
	MaintenanceOnHold  bool   `json:"maintenance_on_hold" gorm:"default:false"`
	AuthorizationGroup string `json:"authorization_group" gorm:"size:40" validate:"max=40"`

	Actions []MaintenanceAction `json:"actions,omitempty" gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Machine
func (Machine) TableName() string {
	return "machines"
}
