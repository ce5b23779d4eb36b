package Models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	ExpenseDate time.Time `json:"expense_date" gorm:"not null"`
}

type ExpenseRequest struct {
	Category    string      `json:"category" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Amount      interface{} `json:"amount"`
	Date        string      `json:"date" validate:"required"`
}
