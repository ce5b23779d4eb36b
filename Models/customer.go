package Models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name    string `json:"name" gorm:"size:255;not null"`
	Phone   string `json:"phone" gorm:"size:50;index"`
	Email   string `json:"email" gorm:"size:255"`
	Address string `json:"address" gorm:"type:text"`
	Notes   string `json:"notes" gorm:"type:text"`

	// Relationships
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:CustomerID"`
}

type Vehicle struct {
	gorm.Model
	CustomerID uint   `json:"customer_id" gorm:"not null;index"`
	Make       string `json:"make" gorm:"size:100"`
	VehModel   string `json:"model" gorm:"column:model;size:100"`
	Year       int    `json:"year"`
	PlateNo    string `json:"plate_no" gorm:"size:50;index"`
	VIN        string `json:"vin" gorm:"size:100"`
	Mileage    int64  `json:"mileage"`
	Notes      string `json:"notes" gorm:"type:text"`

	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type VehicleRequest struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	Make       string `json:"make"`
	VehModel   string `json:"model"`
	Year       int    `json:"year"`
	PlateNo    string `json:"plate_no" validate:"required"`
	VIN        string `json:"vin"`
	Mileage    int64  `json:"mileage"`
	Notes      string `json:"notes"`
}
