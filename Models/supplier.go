package Models

import (
	"time"

	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null;uniqueIndex"`
	Contact string `json:"contact" gorm:"size:255"`
	Phone   string `json:"phone" gorm:"size:50"`
	Notes   string `json:"notes" gorm:"type:text"`

	Purchases []SupplierPurchase `json:"purchases,omitempty" gorm:"foreignKey:SupplierID"`
}

// SupplierPurchase records a stock-intake event. When linked to a
// consumable inventory item its quantity is increased in the same
// transaction that inserts the purchase.
type SupplierPurchase struct {
	gorm.Model
	SupplierID      uint      `json:"supplier_id" gorm:"not null;index"`
	InventoryItemID *uint     `json:"inventory_item_id" gorm:"index"`
	ItemName        string    `json:"item_name" gorm:"size:255;not null"`
	Quantity        float64   `json:"quantity" gorm:"not null"`
	UnitCost        float64   `json:"unit_cost"`
	Total           float64   `json:"total"`
	PurchasedAt     time.Time `json:"purchased_at"`

	InventoryItem *InventoryItem `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID"`
}

type SupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

type SupplierPurchaseRequest struct {
	InventoryItemID *uint       `json:"inventory_item_id"`
	ItemName        string      `json:"item_name"`
	Quantity        interface{} `json:"quantity"`
	UnitCost        interface{} `json:"unit_cost"`
	Date            string      `json:"date"`
}
