package Controllers

import (
	"errors"
	"strconv"

	"Garage/Ledger"
	"Garage/Models"
	"Garage/Notifications"
	"Garage/email"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateInvoice creates an invoice for a completed job
// POST /api/invoices
func CreateInvoice(c *fiber.Ctx) error {
	var req Models.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.JobID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "job_id is required"})
	}

	manager := Ledger.NewManager(Models.DB)
	invoice, events, err := manager.Create(req)
	// Events accompany every committed operation, even when the
	// post-commit reload fails, so publish before reporting the error.
	if len(events) > 0 {
		Notifications.Publish(Models.DB, events)
	}
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetInvoice retrieves an invoice with its job, customer, vehicle,
// lines, and extras
// GET /api/invoices/:id
func GetInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	manager := Ledger.NewManager(Models.DB)
	invoice, err := manager.Load(uint(id))
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(invoice)
}

// GetJobInvoice retrieves the invoice belonging to a job
// GET /api/jobs/:id/invoice
func GetJobInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job ID"})
	}

	var invoice Models.Invoice
	if err := Models.DB.Where("job_id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No invoice exists for this job"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch invoice"})
	}

	manager := Ledger.NewManager(Models.DB)
	loaded, err := manager.Load(invoice.ID)
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(loaded)
}

// GetAllInvoices retrieves all invoices with pagination
// GET /api/invoices?page=1&limit=10&payment_status=unpaid
func GetAllInvoices(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := Models.DB.Model(&Models.Invoice{})
	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var total int64
	query.Count(&total)

	var invoices []Models.Invoice
	err := query.Preload("Job").Preload("Job.Customer").Preload("Job.Vehicle").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&invoices).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}

	return c.JSON(fiber.Map{
		"data": invoices,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// UpdateInvoice applies a partial update to an invoice
// PUT /api/invoices/:id
func UpdateInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var req Models.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	manager := Ledger.NewManager(Models.DB)
	invoice, events, err := manager.Update(uint(id), req)
	if len(events) > 0 {
		Notifications.Publish(Models.DB, events)
	}
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(invoice)
}

// DeleteInvoice deletes an invoice, restocking its consumables
// DELETE /api/invoices/:id
func DeleteInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	manager := Ledger.NewManager(Models.DB)
	events, err := manager.Delete(uint(id))
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	Notifications.Publish(Models.DB, events)
	return c.JSON(fiber.Map{"message": "Invoice deleted successfully"})
}

// EmailInvoice sends the invoice to a recipient address
// POST /api/invoices/:id/email
func EmailInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var req Models.InvoiceEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	manager := Ledger.NewManager(Models.DB)
	invoice, err := manager.Load(uint(id))
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := email.SendInvoiceEmail(Models.LoadEmailConfig(), invoice, req.Recipient); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send invoice email"})
	}
	return c.JSON(fiber.Map{"message": "Invoice emailed successfully"})
}
