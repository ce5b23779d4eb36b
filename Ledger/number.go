package Ledger

import (
	"fmt"
	"time"

	"Garage/Models"

	"gorm.io/gorm"
)

// NextInvoiceNumber reserves the next INV-YYYYMMDD-NNNN number for the
// given day by incrementing that day's sequence row inside the caller's
// transaction. SQLite serializes writing transactions, so two
// concurrent creates cannot draw the same suffix; the unique index on
// invoice_no is the backstop.
func NextInvoiceNumber(tx *gorm.DB, now time.Time) (string, error) {
	day := now.Format("20060102")

	res := tx.Model(&Models.InvoiceSequence{}).Where("day = ?", day).
		Update("next", gorm.Expr("next + 1"))
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 0 {
		seq := Models.InvoiceSequence{Day: day, Next: 2}
		if err := tx.Create(&seq).Error; err != nil {
			return "", err
		}
		return fmt.Sprintf("INV-%s-%04d", day, 1), nil
	}

	var seq Models.InvoiceSequence
	if err := tx.Where("day = ?", day).First(&seq).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%s-%04d", day, seq.Next-1), nil
}
