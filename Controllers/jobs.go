package Controllers

import (
	"errors"
	"strconv"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllJobs retrieves all jobs with pagination
// GET /api/jobs?page=1&limit=10&status=Completed
func GetAllJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := Models.DB.Model(&Models.Job{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var jobs []Models.Job
	err := query.Preload("Customer").Preload("Vehicle").Preload("Technician").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve jobs"})
	}

	return c.JSON(fiber.Map{
		"data": jobs,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetJob retrieves a single job
// GET /api/jobs/:id
func GetJob(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job ID"})
	}

	var job Models.Job
	err = Models.DB.Preload("Customer").Preload("Vehicle").Preload("Technician").
		First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch job"})
	}
	return c.JSON(job)
}

func jobFromRequest(req Models.JobRequest) (*Models.Job, error) {
	status := req.Status
	if status == "" {
		status = Models.JobStatusPending
	}
	if !Models.ValidJobStatus(status) {
		return nil, Ledger.ValidationError("Unknown job status " + status)
	}

	initial, err := Ledger.ParseNullableNumber(req.InitialAmount, "initial_amount")
	if err != nil {
		return nil, err
	}
	advance, err := Ledger.ParseNullableNumber(req.AdvanceAmount, "advance_amount")
	if err != nil {
		return nil, err
	}

	return &Models.Job{
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		TechnicianID:  req.TechnicianID,
		Description:   req.Description,
		Status:        status,
		InitialAmount: initial,
		AdvanceAmount: advance,
	}, nil
}

// CreateJob creates a new job for a customer's vehicle
// POST /api/jobs
func CreateJob(c *fiber.Ctx) error {
	var req Models.JobRequest
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
	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, req.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	if vehicle.CustomerID != req.CustomerID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle does not belong to this customer"})
	}

	job, err := jobFromRequest(req)
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Models.DB.Create(job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job"})
	}

	Models.DB.Preload("Customer").Preload("Vehicle").Preload("Technician").First(job, job.ID)
	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob updates an existing job
// PUT /api/jobs/:id
func UpdateJob(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job ID"})
	}

	var job Models.Job
	if err := Models.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch job"})
	}

	var req Models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := jobFromRequest(req)
	if err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	Models.DB.Model(&job).Updates(map[string]interface{}{
		"customer_id":    updated.CustomerID,
		"vehicle_id":     updated.VehicleID,
		"technician_id":  updated.TechnicianID,
		"description":    updated.Description,
		"status":         updated.Status,
		"initial_amount": updated.InitialAmount,
		"advance_amount": updated.AdvanceAmount,
	})

	return c.JSON(job)
}

// UpdateJobStatus changes only the status of a job
// PATCH /api/jobs/:id/status
func UpdateJobStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job ID"})
	}

	var job Models.Job
	if err := Models.DB.First(&job, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	var req Models.JobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !Models.ValidJobStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown job status " + req.Status})
	}

	Models.DB.Model(&job).Update("status", req.Status)
	return c.JSON(job)
}

// DeleteJob soft deletes a job without an invoice
// DELETE /api/jobs/:id
func DeleteJob(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job ID"})
	}

	var job Models.Job
	if err := Models.DB.First(&job, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.InvoiceCreated {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Delete the job's invoice before deleting the job"})
	}

	Models.DB.Delete(&job)
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
