package Controllers

import (
	"errors"
	"strconv"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllTechnicians retrieves all technicians
// GET /api/technicians
func GetAllTechnicians(c *fiber.Ctx) error {
	var technicians []Models.Technician
	query := Models.DB.Order("name ASC")
	if c.Query("active") == "1" {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&technicians).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve technicians"})
	}
	return c.JSON(technicians)
}

// GetTechnician retrieves a single technician
// GET /api/technicians/:id
func GetTechnician(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid technician ID"})
	}

	var technician Models.Technician
	if err := Models.DB.First(&technician, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Technician not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch technician"})
	}
	return c.JSON(technician)
}

// CreateTechnician creates a new technician
// POST /api/technicians
func CreateTechnician(c *fiber.Ctx) error {
	var req Models.TechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	technician := Models.Technician{
		Name:       req.Name,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		Active:     active,
	}
	if err := Models.DB.Create(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create technician"})
	}
	return c.Status(fiber.StatusCreated).JSON(technician)
}

// UpdateTechnician updates an existing technician
// PUT /api/technicians/:id
func UpdateTechnician(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid technician ID"})
	}

	var technician Models.Technician
	if err := Models.DB.First(&technician, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Technician not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch technician"})
	}

	var req Models.TechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"phone":       req.Phone,
		"specialty":   req.Specialty,
		"hourly_rate": req.HourlyRate,
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	Models.DB.Model(&technician).Updates(updates)

	return c.JSON(technician)
}

// DeleteTechnician soft deletes a technician
// DELETE /api/technicians/:id
func DeleteTechnician(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid technician ID"})
	}

	var technician Models.Technician
	if err := Models.DB.First(&technician, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Technician not found"})
	}

	Models.DB.Delete(&technician)
	return c.JSON(fiber.Map{"message": "Technician deleted successfully"})
}
