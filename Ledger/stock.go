package Ledger

import (
	"errors"
	"fmt"

	"Garage/Models"

	"gorm.io/gorm"
)

// StockLedger owns inventory quantity bookkeeping inside one
// transaction. Lookups are cached so repeated references to the same
// item within a request hit the database once.
type StockLedger struct {
	tx    *gorm.DB
	cache map[uint]*Models.InventoryItem
}

func NewStockLedger(tx *gorm.DB) *StockLedger {
	return &StockLedger{tx: tx, cache: make(map[uint]*Models.InventoryItem)}
}

// Get loads an inventory item, caching it for the rest of the call.
func (s *StockLedger) Get(id uint) (*Models.InventoryItem, error) {
	if item, ok := s.cache[id]; ok {
		return item, nil
	}
	var item Models.InventoryItem
	if err := s.tx.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(fmt.Sprintf("Inventory item %d not found", id))
		}
		return nil, err
	}
	s.cache[id] = &item
	return &item, nil
}

// LowStockAlert reports an item that crossed its reorder threshold
// during a deduction.
type LowStockAlert struct {
	ItemID    uint
	ItemName  string
	Remaining float64
	Threshold float64
}

// Deduct decreases quantity on hand for a consumable item. The combined
// planned-usage check has already run in the line composer; this only
// applies the decrement and reports a low-stock alert when the result
// sits at or below the reorder threshold.
func (s *StockLedger) Deduct(id uint, qty float64) (*LowStockAlert, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Category != Models.ItemTypeConsumable {
		return nil, ValidationError(fmt.Sprintf("Item %s is not a consumable", item.Name))
	}
	if qty > item.Quantity {
		return nil, InsufficientStockError(item.Name)
	}

	item.Quantity -= qty
	if err := s.tx.Model(&Models.InventoryItem{}).Where("id = ?", id).
		Update("quantity", item.Quantity).Error; err != nil {
		return nil, err
	}

	if item.Quantity <= item.ReorderThreshold && (item.ReorderThreshold > 0 || item.Quantity <= 0) {
		return &LowStockAlert{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Remaining: item.Quantity,
			Threshold: item.ReorderThreshold,
		}, nil
	}
	return nil, nil
}

// Restock increases quantity on hand unconditionally.
func (s *StockLedger) Restock(id uint, qty float64) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	item.Quantity += qty
	return s.tx.Model(&Models.InventoryItem{}).Where("id = ?", id).
		Update("quantity", item.Quantity).Error
}
