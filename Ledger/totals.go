package Ledger

import (
	"Garage/Models"

	"gorm.io/gorm"
)

// Totals are the four derived monetary rollups on an invoice.
type Totals struct {
	ItemsTotal      float64
	TotalCharges    float64
	TotalDeductions float64
	FinalTotal      float64
}

// ComputeTotals derives the rollups from a line/extra set.
func ComputeTotals(items []Models.InvoiceItem, extras []Models.InvoiceExtraItem) Totals {
	var t Totals
	for _, item := range items {
		t.ItemsTotal += item.LineTotal
	}
	for _, extra := range extras {
		switch extra.Kind {
		case Models.ExtraKindCharge:
			t.TotalCharges += extra.Amount
		case Models.ExtraKindDeduction:
			t.TotalDeductions += extra.Amount
		}
	}
	t.ItemsTotal = Round2(t.ItemsTotal)
	t.TotalCharges = Round2(t.TotalCharges)
	t.TotalDeductions = Round2(t.TotalDeductions)
	t.FinalTotal = Round2(t.ItemsTotal + t.TotalCharges - t.TotalDeductions)
	return t
}

// RecomputeTotals reloads the persisted line set and writes fresh
// rollups to the invoice row. Totals always reflect the database's
// current state, not the in-memory request, so partial updates cannot
// leave them stale.
func RecomputeTotals(tx *gorm.DB, invoiceID uint) (Totals, error) {
	var items []Models.InvoiceItem
	if err := tx.Where("invoice_id = ?", invoiceID).Find(&items).Error; err != nil {
		return Totals{}, err
	}
	var extras []Models.InvoiceExtraItem
	if err := tx.Where("invoice_id = ?", invoiceID).Find(&extras).Error; err != nil {
		return Totals{}, err
	}

	t := ComputeTotals(items, extras)
	err := tx.Model(&Models.Invoice{}).Where("id = ?", invoiceID).Updates(map[string]interface{}{
		"items_total":      t.ItemsTotal,
		"total_charges":    t.TotalCharges,
		"total_deductions": t.TotalDeductions,
		"final_total":      t.FinalTotal,
	}).Error
	return t, err
}
