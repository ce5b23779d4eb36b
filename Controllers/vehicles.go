package Controllers

import (
	"errors"
	"strconv"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllVehicles retrieves all vehicles with their customers
// GET /api/vehicles
func GetAllVehicles(c *fiber.Ctx) error {
	var vehicles []Models.Vehicle
	query := Models.DB.Preload("Customer")
	if plate := c.Query("plate"); plate != "" {
		query = query.Where("plate_no LIKE ?", "%"+plate+"%")
	}
	if err := query.Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return c.JSON(vehicles)
}

// GetVehicle retrieves a single vehicle
// GET /api/vehicles/:id
func GetVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.Preload("Customer").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch vehicle"})
	}
	return c.JSON(vehicle)
}

// CreateVehicle creates a new vehicle for a customer
// POST /api/vehicles
func CreateVehicle(c *fiber.Ctx) error {
	var req Models.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer Models.Customer
	if err := Models.DB.First(&customer, req.CustomerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	vehicle := Models.Vehicle{
		CustomerID: req.CustomerID,
		Make:       req.Make,
		VehModel:   req.VehModel,
		Year:       req.Year,
		PlateNo:    req.PlateNo,
		VIN:        req.VIN,
		Mileage:    req.Mileage,
		Notes:      req.Notes,
	}
	if err := Models.DB.Create(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates an existing vehicle
// PUT /api/vehicles/:id
func UpdateVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch vehicle"})
	}

	var req Models.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	Models.DB.Model(&vehicle).Updates(map[string]interface{}{
		"customer_id": req.CustomerID,
		"make":        req.Make,
		"model":       req.VehModel,
		"year":        req.Year,
		"plate_no":    req.PlateNo,
		"vin":         req.VIN,
		"mileage":     req.Mileage,
		"notes":       req.Notes,
	})

	return c.JSON(vehicle)
}

// DeleteVehicle soft deletes a vehicle
// DELETE /api/vehicles/:id
func DeleteVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	Models.DB.Delete(&vehicle)
	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
