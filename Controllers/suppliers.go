package Controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSupplier creates a new supplier
// POST /api/suppliers
func CreateSupplier(c *fiber.Ctx) error {
	var req Models.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplier := Models.Supplier{
		Name:    strings.TrimSpace(req.Name),
		Contact: req.Contact,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
	if err := Models.DB.Create(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A supplier with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create supplier"})
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetAllSuppliers retrieves all suppliers
// GET /api/suppliers
func GetAllSuppliers(c *fiber.Ctx) error {
	var suppliers []Models.Supplier
	if err := Models.DB.Order("name ASC").Find(&suppliers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve suppliers"})
	}
	return c.JSON(suppliers)
}

// GetSupplier retrieves a supplier with its purchase history
// GET /api/suppliers/:id
func GetSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := Models.DB.Preload("Purchases").Preload("Purchases.InventoryItem").First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}
	return c.JSON(supplier)
}

// UpdateSupplier updates an existing supplier
// PUT /api/suppliers/:id
func UpdateSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := Models.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}

	var req Models.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.Name = strings.TrimSpace(req.Name)
	supplier.Contact = req.Contact
	supplier.Phone = req.Phone
	supplier.Notes = req.Notes
	if err := Models.DB.Save(&supplier).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update supplier"})
	}
	return c.JSON(supplier)
}

// DeleteSupplier deletes a supplier
// DELETE /api/suppliers/:id
func DeleteSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := Models.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}

	if err := Models.DB.Delete(&supplier).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete supplier"})
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}

// RecordSupplierPurchase records a stock purchase from a supplier.
// A purchase linked to a consumable inventory item restocks that item
// inside the same transaction.
// POST /api/suppliers/:id/purchases
func RecordSupplierPurchase(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := Models.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}

	var req Models.SupplierPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	qty, err := Ledger.ParseNumber(req.Quantity, "quantity")
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if qty <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be greater than zero"})
	}
	unitCost, err := Ledger.ParseNumber(req.UnitCost, "unit_cost")
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if unitCost < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unit_cost cannot be negative"})
	}

	purchasedAt := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		purchasedAt = parsed
	}

	purchase := Models.SupplierPurchase{
		SupplierID:      supplier.ID,
		InventoryItemID: req.InventoryItemID,
		ItemName:        strings.TrimSpace(req.ItemName),
		Quantity:        qty,
		UnitCost:        unitCost,
		Total:           Ledger.Round2(qty * unitCost),
		PurchasedAt:     purchasedAt,
	}

	tx := Models.DB.Begin()
	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start transaction"})
	}

	if req.InventoryItemID != nil {
		stock := Ledger.NewStockLedger(tx)
		item, err := stock.Get(*req.InventoryItemID)
		if err != nil {
			tx.Rollback()
			return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
		}
		if purchase.ItemName == "" {
			purchase.ItemName = item.Name
		}
		// Only consumables track on-hand quantity; other purchases are
		// recorded without touching stock.
		if item.Category == Models.ItemTypeConsumable {
			if err := stock.Restock(item.ID, qty); err != nil {
				tx.Rollback()
				return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
			}
		}
	} else if purchase.ItemName == "" {
		tx.Rollback()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item_name is required for purchases without an inventory item"})
	}

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record purchase"})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record purchase"})
	}

	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// GetSupplierPurchases retrieves a supplier's purchase history
// GET /api/suppliers/:id/purchases
func GetSupplierPurchases(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var purchases []Models.SupplierPurchase
	err = Models.DB.Where("supplier_id = ?", id).Preload("InventoryItem").
		Order("purchased_at DESC").Find(&purchases).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchases"})
	}
	return c.JSON(purchases)
}
