package Models

import "gorm.io/gorm"

const (
	JobStatusPending    = "Pending"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCancelled  = "Cancelled"
)

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

type Job struct {
	gorm.Model
	CustomerID     uint     `json:"customer_id" gorm:"not null;index"`
	VehicleID      uint     `json:"vehicle_id" gorm:"not null;index"`
	TechnicianID   *uint    `json:"technician_id" gorm:"index"`
	Description    string   `json:"description" gorm:"type:text"`
	Status         string   `json:"status" gorm:"size:50;not null;default:Pending"`
	InitialAmount  *float64 `json:"initial_amount"`
	AdvanceAmount  *float64 `json:"advance_amount"`
	InvoiceCreated bool     `json:"invoice_created" gorm:"default:false"`

	// Relationships
	Customer   Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Vehicle    Vehicle     `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Technician *Technician `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
}

type JobRequest struct {
	CustomerID    uint        `json:"customer_id" validate:"required"`
	VehicleID     uint        `json:"vehicle_id" validate:"required"`
	TechnicianID  *uint       `json:"technician_id"`
	Description   string      `json:"description"`
	Status        string      `json:"status"`
	InitialAmount interface{} `json:"initial_amount"`
	AdvanceAmount interface{} `json:"advance_amount"`
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
