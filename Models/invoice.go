package Models

import "gorm.io/gorm"

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPartial || s == PaymentStatusPaid
}

const (
	ExtraKindCharge    = "charge"
	ExtraKindDeduction = "deduction"
)

type Invoice struct {
	gorm.Model
	JobID           uint    `json:"job_id" gorm:"not null;uniqueIndex"`
	InvoiceNo       string  `json:"invoice_no" gorm:"size:50;not null;uniqueIndex"`
	ItemsTotal      float64 `json:"items_total"`
	TotalCharges    float64 `json:"total_charges"`
	TotalDeductions float64 `json:"total_deductions"`
	FinalTotal      float64 `json:"final_total"`
	PaymentStatus   string  `json:"payment_status" gorm:"size:50;not null;default:unpaid"`
	PaymentMethod   string  `json:"payment_method" gorm:"size:100"`
	Notes           string  `json:"notes" gorm:"type:text"`

	// Relationships
	Job    Job                `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Items  []InvoiceItem      `json:"items,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Extras []InvoiceExtraItem `json:"extras,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

type InvoiceItem struct {
	gorm.Model
	InvoiceID       uint    `json:"invoice_id" gorm:"not null;index"`
	InventoryItemID *uint   `json:"inventory_item_id" gorm:"index"`
	ItemName        string  `json:"item_name" gorm:"size:255;not null"`
	ItemType        string  `json:"item_type" gorm:"size:50;not null"`
	Quantity        float64 `json:"quantity" gorm:"not null;default:1"`
	UnitPrice       float64 `json:"unit_price" gorm:"not null;default:0"`
	LineTotal       float64 `json:"line_total" gorm:"not null;default:0"`
}

type InvoiceExtraItem struct {
	gorm.Model
	InvoiceID uint    `json:"invoice_id" gorm:"not null;index"`
	Kind      string  `json:"kind" gorm:"size:20;not null"`
	Label     string  `json:"label" gorm:"size:255;not null"`
	Amount    float64 `json:"amount" gorm:"not null;default:0"`
}

// InvoiceSequence backs per-day invoice numbering. One row per calendar
// day; Next is the suffix the next invoice of that day receives. The row
// is incremented inside the creating transaction, so concurrent creates
// cannot observe the same value.
type InvoiceSequence struct {
	ID   uint   `gorm:"primarykey"`
	Day  string `gorm:"size:8;not null;uniqueIndex"`
	Next int    `gorm:"not null;default:1"`
}

type InvoiceLineRequest struct {
	InventoryItemID *uint       `json:"inventory_item_id"`
	ItemName        string      `json:"item_name"`
	ItemType        string      `json:"item_type"`
	Quantity        interface{} `json:"quantity"`
	UnitPrice       interface{} `json:"unit_price"`
	Price           interface{} `json:"price"` // alias for unit_price
}

type ExtraItemRequest struct {
	Label  string      `json:"label"`
	Amount interface{} `json:"amount"`
}

type CreateInvoiceRequest struct {
	JobID         uint                 `json:"job_id"`
	Items         []InvoiceLineRequest `json:"items"`
	Charges       []ExtraItemRequest   `json:"charges"`
	Reductions    []ExtraItemRequest   `json:"reductions"`
	PaymentMethod string               `json:"payment_method"`
	PaymentStatus string               `json:"payment_status"`
	Notes         string               `json:"notes"`
}

// UpdateInvoiceRequest carries partial updates: nil sections are left
// untouched, non-nil ones replace that section wholesale.
type UpdateInvoiceRequest struct {
	Items         *[]InvoiceLineRequest `json:"items"`
	Charges       *[]ExtraItemRequest   `json:"charges"`
	Reductions    *[]ExtraItemRequest   `json:"reductions"`
	PaymentMethod *string               `json:"payment_method"`
	PaymentStatus *string               `json:"payment_status"`
	Notes         *string               `json:"notes"`
}
