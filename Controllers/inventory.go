package Controllers

import (
	"errors"
	"strconv"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllInventoryItems retrieves all inventory items
// GET /api/inventory
func GetAllInventoryItems(c *fiber.Ctx) error {
	var items []Models.InventoryItem
	query := Models.DB.Order("name ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve inventory"})
	}
	return c.JSON(items)
}

// GetLowStockItems retrieves items at or below their reorder threshold
// GET /api/inventory/low-stock
func GetLowStockItems(c *fiber.Ctx) error {
	var items []Models.InventoryItem
	err := Models.DB.Where("reorder_threshold > 0 AND quantity <= reorder_threshold").
		Or("quantity <= 0").
		Order("quantity ASC").
		Find(&items).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve inventory"})
	}
	return c.JSON(items)
}

// GetInventoryItem retrieves a single inventory item
// GET /api/inventory/:id
func GetInventoryItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item Models.InventoryItem
	if err := Models.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch item"})
	}
	return c.JSON(item)
}

func inventoryItemFromRequest(req Models.InventoryItemRequest) (*Models.InventoryItem, error) {
	category := req.Category
	if category == "" {
		category = Models.ItemTypeConsumable
	}
	if !Models.ValidItemType(category) {
		return nil, Ledger.ValidationError("Unknown item category " + category)
	}

	quantity, err := Ledger.ParseNumber(req.Quantity, "quantity")
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, Ledger.ValidationError("quantity must not be negative")
	}
	unitCost, err := Ledger.ParseNullableNumber(req.UnitCost, "unit_cost")
	if err != nil {
		return nil, err
	}
	threshold, err := Ledger.ParseNumber(req.ReorderThreshold, "reorder_threshold")
	if err != nil {
		return nil, err
	}

	return &Models.InventoryItem{
		Name:             req.Name,
		Category:         category,
		Quantity:         quantity,
		UnitCost:         unitCost,
		ReorderThreshold: threshold,
	}, nil
}

// CreateInventoryItem creates a new inventory item
// POST /api/inventory
func CreateInventoryItem(c *fiber.Ctx) error {
	var req Models.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := inventoryItemFromRequest(req)
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Models.DB.Create(item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create item"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateInventoryItem updates an existing inventory item
// PUT /api/inventory/:id
func UpdateInventoryItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item Models.InventoryItem
	if err := Models.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch item"})
	}

	var req Models.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := inventoryItemFromRequest(req)
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	Models.DB.Model(&item).Updates(map[string]interface{}{
		"name":              updated.Name,
		"category":          updated.Category,
		"quantity":          updated.Quantity,
		"unit_cost":         updated.UnitCost,
		"reorder_threshold": updated.ReorderThreshold,
	})

	return c.JSON(item)
}

// DeleteInventoryItem soft deletes an inventory item
// DELETE /api/inventory/:id
func DeleteInventoryItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item Models.InventoryItem
	if err := Models.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	Models.DB.Delete(&item)
	return c.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
}
