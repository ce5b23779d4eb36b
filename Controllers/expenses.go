package Controllers

import (
	"errors"
	"strconv"
	"time"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func expenseFromRequest(req Models.ExpenseRequest, expense *Models.Expense) error {
	amount, err := Ledger.ParseNumber(req.Amount, "amount")
	if err != nil {
		return err
	}
	if amount <= 0 {
		return Ledger.ValidationError("amount must be greater than zero")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return Ledger.ValidationError("Invalid date format. Use YYYY-MM-DD")
	}

	expense.Category = req.Category
	expense.Description = req.Description
	expense.Amount = Ledger.Round2(amount)
	expense.ExpenseDate = date
	return nil
}

// CreateExpense records a workshop expense
// POST /api/expenses
func CreateExpense(c *fiber.Ctx) error {
	var req Models.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var expense Models.Expense
	if err := expenseFromRequest(req, &expense); err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Models.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// GetAllExpenses retrieves expenses, optionally filtered by category
// and date range
// GET /api/expenses?category=parts&from=2024-01-01&to=2024-12-31
func GetAllExpenses(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Expense{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if from := c.Query("from"); from != "" {
		date, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid from date. Use YYYY-MM-DD"})
		}
		query = query.Where("expense_date >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid to date. Use YYYY-MM-DD"})
		}
		query = query.Where("expense_date <= ?", date)
	}

	var expenses []Models.Expense
	if err := query.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve expenses"})
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	return c.JSON(fiber.Map{
		"data":  expenses,
		"total": Ledger.Round2(total),
	})
}

// GetExpense retrieves a single expense
// GET /api/expenses/:id
func GetExpense(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var expense Models.Expense
	if err := Models.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}
	return c.JSON(expense)
}

// UpdateExpense updates an existing expense
// PUT /api/expenses/:id
func UpdateExpense(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var expense Models.Expense
	if err := Models.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}

	var req Models.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := expenseFromRequest(req, &expense); err != nil {
		return c.Status(Ledger.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Models.DB.Save(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update expense"})
	}
	return c.JSON(expense)
}

// DeleteExpense deletes an expense
// DELETE /api/expenses/:id
func DeleteExpense(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var expense Models.Expense
	if err := Models.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}

	if err := Models.DB.Delete(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
