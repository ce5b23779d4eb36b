package Models

import "gorm.io/gorm"

// Inventory item categories. Only consumables participate in
// deduct/restock bookkeeping on invoices and supplier purchases.
const (
	ItemTypeConsumable    = "consumable"
	ItemTypeNonConsumable = "non-consumable"
	ItemTypeBulk          = "bulk"
)

func ValidItemType(t string) bool {
	return t == ItemTypeConsumable || t == ItemTypeNonConsumable || t == ItemTypeBulk
}

type InventoryItem struct {
	gorm.Model
	Name             string   `json:"name" gorm:"size:255;not null;index"`
	Category         string   `json:"category" gorm:"size:50;not null;default:consumable"`
	Quantity         float64  `json:"quantity" gorm:"not null;default:0"`
	UnitCost         *float64 `json:"unit_cost"`
	ReorderThreshold float64  `json:"reorder_threshold" gorm:"default:0"`
}

type InventoryItemRequest struct {
	Name             string      `json:"name" validate:"required"`
	Category         string      `json:"category"`
	Quantity         interface{} `json:"quantity"`
	UnitCost         interface{} `json:"unit_cost"`
	ReorderThreshold interface{} `json:"reorder_threshold"`
}
