package Ledger

import (
	"fmt"
	"strings"

	"Garage/Models"
)

// PreparedLine is a validated invoice line ready for insertion. Deduct
// marks lines whose consumable inventory must be decremented once the
// line is persisted.
type PreparedLine struct {
	Line   Models.InvoiceItem
	Deduct bool
}

// PrepareLines validates raw invoice lines and computes line totals.
// The pass is side-effect free and fails fast on the first invalid
// entry: planned consumable usage is summed per item and checked
// against quantity on hand before any deduction is applied, so one
// line's deduction can never mask another line's shortfall.
func PrepareLines(stock *StockLedger, raw []Models.InvoiceLineRequest) ([]PreparedLine, error) {
	prepared := make([]PreparedLine, 0, len(raw))
	planned := make(map[uint]float64)

	for i, entry := range raw {
		qty, err := ParseNumber(entry.Quantity, fmt.Sprintf("items[%d].quantity", i))
		if err != nil {
			return nil, err
		}
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, ValidationError(fmt.Sprintf("items[%d].quantity must be greater than zero", i))
		}

		priceRaw := entry.UnitPrice
		if priceRaw == nil {
			priceRaw = entry.Price
		}
		price, err := ParseNumber(priceRaw, fmt.Sprintf("items[%d].unit_price", i))
		if err != nil {
			return nil, err
		}

		line := Models.InvoiceItem{
			Quantity:  qty,
			UnitPrice: price,
			LineTotal: Round2(qty * price),
		}
		deduct := false

		if entry.InventoryItemID != nil {
			item, err := stock.Get(*entry.InventoryItemID)
			if err != nil {
				return nil, err
			}
			line.InventoryItemID = &item.ID
			line.ItemName = item.Name
			line.ItemType = item.Category

			if item.Category == Models.ItemTypeConsumable {
				planned[item.ID] += qty
				if planned[item.ID] > item.Quantity {
					return nil, InsufficientStockError(item.Name)
				}
				deduct = true
			}
		} else {
			name := strings.TrimSpace(entry.ItemName)
			if name == "" {
				return nil, ValidationError(fmt.Sprintf("items[%d] requires an inventory_item_id or item_name", i))
			}
			itemType := entry.ItemType
			if itemType == "" {
				itemType = Models.ItemTypeConsumable
			}
			if !Models.ValidItemType(itemType) {
				return nil, ValidationError(fmt.Sprintf("items[%d] has unknown item type %q", i, itemType))
			}
			line.ItemName = name
			line.ItemType = itemType
		}

		prepared = append(prepared, PreparedLine{Line: line, Deduct: deduct})
	}

	return prepared, nil
}
