package Models

import "gorm.io/gorm"

type Technician struct {
	gorm.Model
	Name       string  `json:"name" gorm:"size:255;not null"`
	Phone      string  `json:"phone" gorm:"size:50"`
	Specialty  string  `json:"specialty" gorm:"size:255"`
	HourlyRate float64 `json:"hourly_rate"`
	Active     bool    `json:"active" gorm:"default:true"`
}

type TechnicianRequest struct {
	Name       string  `json:"name" validate:"required"`
	Phone      string  `json:"phone"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	Active     *bool   `json:"active"`
}
