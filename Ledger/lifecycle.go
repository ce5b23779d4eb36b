package Ledger

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Garage/Models"

	"gorm.io/gorm"
)

// Event is an outbound notification the caller publishes after the
// transaction commits. Ledger operations never persist notifications
// themselves; delivery failures must not undo ledger state.
type Event struct {
	Type    string
	Message string
	RefType string
	RefID   uint
}

// Manager orchestrates the invoice lifecycle. Each operation runs as
// one transaction: on any failure the transaction rolls back and no
// partial state persists.
type Manager struct {
	DB *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{DB: db}
}

// rollback reverts the transaction. A rollback failure is logged and
// never masks the error that caused it.
func rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		log.Printf("Rollback failed: %v", err)
	}
}

type movement struct {
	ItemName string
	Quantity float64
}

func movementSummary(moves []movement) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, fmt.Sprintf("%s × %g", m.ItemName, m.Quantity))
	}
	return strings.Join(parts, ", ")
}

func lowStockEvent(alert *LowStockAlert) Event {
	return Event{
		Type: Models.NotificationLowStock,
		Message: fmt.Sprintf("Low stock: %s has %g remaining (reorder threshold %g)",
			alert.ItemName, alert.Remaining, alert.Threshold),
		RefType: "inventory_item",
		RefID:   alert.ItemID,
	}
}

// Create builds an invoice for a completed job. Preconditions: the job
// exists, its status is Completed, and no invoice exists for it yet.
func (m *Manager) Create(req Models.CreateInvoiceRequest) (*Models.Invoice, []Event, error) {
	var job Models.Job
	if err := m.DB.First(&job, req.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFoundError("Job not found")
		}
		return nil, nil, err
	}
	if job.Status != Models.JobStatusCompleted {
		return nil, nil, ValidationError("An invoice can only be created for a completed job")
	}
	var existing int64
	if err := m.DB.Model(&Models.Invoice{}).Where("job_id = ?", job.ID).Count(&existing).Error; err != nil {
		return nil, nil, err
	}
	if job.InvoiceCreated || existing > 0 {
		return nil, nil, ConflictError("An invoice already exists for this job")
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = Models.PaymentStatusUnpaid
	}
	if !Models.ValidPaymentStatus(paymentStatus) {
		return nil, nil, ValidationError(fmt.Sprintf("Unknown payment status %q", paymentStatus))
	}

	tx := m.DB.Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}

	stock := NewStockLedger(tx)

	invoiceNo, err := NextInvoiceNumber(tx, time.Now())
	if err != nil {
		rollback(tx)
		return nil, nil, err
	}

	prepared, err := PrepareLines(stock, req.Items)
	if err != nil {
		rollback(tx)
		return nil, nil, err
	}

	charges, err := PrepareExtras(req.Charges, Models.ExtraKindCharge)
	if err != nil {
		rollback(tx)
		return nil, nil, err
	}
	deductions, err := PrepareExtras(req.Reductions, Models.ExtraKindDeduction)
	if err != nil {
		rollback(tx)
		return nil, nil, err
	}
	charges, deductions = injectJobExtras(&job, charges, deductions)

	invoice := Models.Invoice{
		JobID:         job.ID,
		InvoiceNo:     invoiceNo,
		PaymentStatus: paymentStatus,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := tx.Create(&invoice).Error; err != nil {
		rollback(tx)
		return nil, nil, err
	}

	var moves []movement
	var alerts []*LowStockAlert
	for _, p := range prepared {
		line := p.Line
		line.InvoiceID = invoice.ID
		if err := tx.Create(&line).Error; err != nil {
			rollback(tx)
			return nil, nil, err
		}
		if p.Deduct {
			alert, err := stock.Deduct(*line.InventoryItemID, line.Quantity)
			if err != nil {
				rollback(tx)
				return nil, nil, err
			}
			moves = append(moves, movement{ItemName: line.ItemName, Quantity: line.Quantity})
			if alert != nil {
				alerts = append(alerts, alert)
			}
		}
	}

	for _, extra := range append(charges, deductions...) {
		extra.InvoiceID = invoice.ID
		if err := tx.Create(&extra).Error; err != nil {
			rollback(tx)
			return nil, nil, err
		}
	}

	if _, err := RecomputeTotals(tx, invoice.ID); err != nil {
		rollback(tx)
		return nil, nil, err
	}

	if err := tx.Model(&Models.Job{}).Where("id = ?", job.ID).
		Update("invoice_created", true).Error; err != nil {
		rollback(tx)
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	events := []Event{{
		Type:    Models.NotificationInvoiceCreated,
		Message: fmt.Sprintf("Invoice %s created for job #%d", invoiceNo, job.ID),
		RefType: "invoice",
		RefID:   invoice.ID,
	}}
	if len(moves) > 0 {
		events = append(events, Event{
			Type:    Models.NotificationInventoryUsed,
			Message: fmt.Sprintf("Inventory used for invoice %s: %s", invoiceNo, movementSummary(moves)),
			RefType: "invoice",
			RefID:   invoice.ID,
		})
	}
	for _, alert := range alerts {
		events = append(events, lowStockEvent(alert))
	}

	loaded, err := m.Load(invoice.ID)
	if err != nil {
		return nil, events, err
	}
	return loaded, events, nil
}

// Update applies a partial invoice update. Lines and extras follow
// replace-all semantics: providing a section replaces it wholesale,
// omitting it leaves the persisted rows untouched.
func (m *Manager) Update(invoiceID uint, req Models.UpdateInvoiceRequest) (*Models.Invoice, []Event, error) {
	var invoice Models.Invoice
	if err := m.DB.First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFoundError("Invoice not found")
		}
		return nil, nil, err
	}

	if req.PaymentStatus != nil && !Models.ValidPaymentStatus(*req.PaymentStatus) {
		return nil, nil, ValidationError(fmt.Sprintf("Unknown payment status %q", *req.PaymentStatus))
	}

	tx := m.DB.Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}

	stock := NewStockLedger(tx)
	var moves []movement
	var alerts []*LowStockAlert

	if req.Items != nil {
		// Fully reverse the previous deductions before validating the
		// replacement set, so the new lines are checked against the
		// restored quantities.
		var oldItems []Models.InvoiceItem
		if err := tx.Where("invoice_id = ?", invoice.ID).Find(&oldItems).Error; err != nil {
			rollback(tx)
			return nil, nil, err
		}
		if err := restockConsumables(stock, oldItems); err != nil {
			rollback(tx)
			return nil, nil, err
		}
		if err := tx.Unscoped().Where("invoice_id = ?", invoice.ID).
			Delete(&Models.InvoiceItem{}).Error; err != nil {
			rollback(tx)
			return nil, nil, err
		}

		prepared, err := PrepareLines(stock, *req.Items)
		if err != nil {
			rollback(tx)
			return nil, nil, err
		}
		for _, p := range prepared {
			line := p.Line
			line.InvoiceID = invoice.ID
			if err := tx.Create(&line).Error; err != nil {
				rollback(tx)
				return nil, nil, err
			}
			if p.Deduct {
				alert, err := stock.Deduct(*line.InventoryItemID, line.Quantity)
				if err != nil {
					rollback(tx)
					return nil, nil, err
				}
				moves = append(moves, movement{ItemName: line.ItemName, Quantity: line.Quantity})
				if alert != nil {
					alerts = append(alerts, alert)
				}
			}
		}
	}

	if req.Charges != nil {
		if err := replaceExtras(tx, invoice.ID, Models.ExtraKindCharge, *req.Charges); err != nil {
			rollback(tx)
			return nil, nil, err
		}
	}
	if req.Reductions != nil {
		if err := replaceExtras(tx, invoice.ID, Models.ExtraKindDeduction, *req.Reductions); err != nil {
			rollback(tx)
			return nil, nil, err
		}
	}

	updates := make(map[string]interface{})
	becamePaid := false
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
		becamePaid = *req.PaymentStatus == Models.PaymentStatusPaid &&
			invoice.PaymentStatus != Models.PaymentStatusPaid
	}
	if len(updates) > 0 {
		if err := tx.Model(&Models.Invoice{}).Where("id = ?", invoice.ID).
			Updates(updates).Error; err != nil {
			rollback(tx)
			return nil, nil, err
		}
	}

	if _, err := RecomputeTotals(tx, invoice.ID); err != nil {
		rollback(tx)
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	var events []Event
	if len(moves) > 0 {
		events = append(events, Event{
			Type:    Models.NotificationInventoryUsed,
			Message: fmt.Sprintf("Inventory used for invoice %s: %s", invoice.InvoiceNo, movementSummary(moves)),
			RefType: "invoice",
			RefID:   invoice.ID,
		})
	}
	for _, alert := range alerts {
		events = append(events, lowStockEvent(alert))
	}
	if becamePaid {
		events = append(events, Event{
			Type:    Models.NotificationInvoicePaid,
			Message: fmt.Sprintf("Invoice %s marked as paid", invoice.InvoiceNo),
			RefType: "invoice",
			RefID:   invoice.ID,
		})
	}

	loaded, err := m.Load(invoice.ID)
	if err != nil {
		return nil, events, err
	}
	return loaded, events, nil
}

// Delete removes an invoice with its lines and extras, restocking every
// consumable the lines had deducted and clearing the job's flag.
func (m *Manager) Delete(invoiceID uint) ([]Event, error) {
	var invoice Models.Invoice
	if err := m.DB.Preload("Items").First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Invoice not found")
		}
		return nil, err
	}

	tx := m.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	stock := NewStockLedger(tx)
	if err := restockConsumables(stock, invoice.Items); err != nil {
		rollback(tx)
		return nil, err
	}

	if err := tx.Unscoped().Where("invoice_id = ?", invoice.ID).
		Delete(&Models.InvoiceExtraItem{}).Error; err != nil {
		rollback(tx)
		return nil, err
	}
	if err := tx.Unscoped().Where("invoice_id = ?", invoice.ID).
		Delete(&Models.InvoiceItem{}).Error; err != nil {
		rollback(tx)
		return nil, err
	}
	if err := tx.Unscoped().Delete(&Models.Invoice{}, invoice.ID).Error; err != nil {
		rollback(tx)
		return nil, err
	}
	if err := tx.Model(&Models.Job{}).Where("id = ?", invoice.JobID).
		Update("invoice_created", false).Error; err != nil {
		rollback(tx)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return []Event{{
		Type:    Models.NotificationInvoiceDeleted,
		Message: fmt.Sprintf("Invoice %s deleted", invoice.InvoiceNo),
		RefType: "invoice",
		RefID:   invoice.ID,
	}}, nil
}

// Load returns an invoice with its job (customer and vehicle included),
// lines, and extras.
func (m *Manager) Load(invoiceID uint) (*Models.Invoice, error) {
	var invoice Models.Invoice
	err := m.DB.Preload("Job").Preload("Job.Customer").Preload("Job.Vehicle").
		Preload("Items").Preload("Extras").
		First(&invoice, invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Invoice not found")
		}
		return nil, err
	}
	return &invoice, nil
}

// restockConsumables reverses the deduction of every consumable,
// inventory-linked line. Items that no longer exist are skipped.
func restockConsumables(stock *StockLedger, items []Models.InvoiceItem) error {
	for _, item := range items {
		if item.InventoryItemID == nil || item.ItemType != Models.ItemTypeConsumable {
			continue
		}
		if err := stock.Restock(*item.InventoryItemID, item.Quantity); err != nil {
			if StatusOf(err) == 404 {
				continue
			}
			return err
		}
	}
	return nil
}

func replaceExtras(tx *gorm.DB, invoiceID uint, kind string, raw []Models.ExtraItemRequest) error {
	extras, err := PrepareExtras(raw, kind)
	if err != nil {
		return err
	}
	if err := tx.Unscoped().Where("invoice_id = ? AND kind = ?", invoiceID, kind).
		Delete(&Models.InvoiceExtraItem{}).Error; err != nil {
		return err
	}
	for _, extra := range extras {
		extra.InvoiceID = invoiceID
		if err := tx.Create(&extra).Error; err != nil {
			return err
		}
	}
	return nil
}
