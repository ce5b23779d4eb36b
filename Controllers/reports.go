package Controllers

import (
	"fmt"
	"time"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func reportHeaderStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	return style
}

func sendExcel(c *fiber.Ctx, f *excelize.File, baseName string) error {
	buffer, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	filename := fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("20060102_150405"))
	c.Set("Content-Type", excelContentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buffer.Bytes())
}

// ExportInvoiceReport exports invoices in a date range to Excel
// GET /api/reports/invoices?from=2024-01-01&to=2024-12-31
func ExportInvoiceReport(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Invoice{})
	if from := c.Query("from"); from != "" {
		date, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid from date. Use YYYY-MM-DD"})
		}
		query = query.Where("created_at >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid to date. Use YYYY-MM-DD"})
		}
		query = query.Where("created_at < ?", date.AddDate(0, 0, 1))
	}

	var invoices []Models.Invoice
	err := query.Preload("Job").Preload("Job.Customer").Preload("Job.Vehicle").
		Order("created_at ASC").Find(&invoices).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}

	f := excelize.NewFile()
	sheetName := "Invoices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Invoice No", "Date", "Customer", "Vehicle", "Items Total", "Charges", "Deductions", "Final Total", "Payment Status", "Payment Method"}
	headerStyle := reportHeaderStyle(f)
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "J", 18)

	var grandTotal, paidTotal float64
	for rowIdx, invoice := range invoices {
		row := rowIdx + 2
		vehicle := ""
		if invoice.Job.Vehicle.ID != 0 {
			vehicle = fmt.Sprintf("%s %s (%s)", invoice.Job.Vehicle.Make, invoice.Job.Vehicle.VehModel, invoice.Job.Vehicle.PlateNo)
		}
		values := []interface{}{
			invoice.InvoiceNo,
			invoice.CreatedAt.Format("2006-01-02"),
			invoice.Job.Customer.Name,
			vehicle,
			invoice.ItemsTotal,
			invoice.TotalCharges,
			invoice.TotalDeductions,
			invoice.FinalTotal,
			invoice.PaymentStatus,
			invoice.PaymentMethod,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
		grandTotal += invoice.FinalTotal
		if invoice.PaymentStatus == Models.PaymentStatusPaid {
			paidTotal += invoice.FinalTotal
		}
	}

	summaryRow := len(invoices) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheetName, cell, "Invoices")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow)
	f.SetCellValue(sheetName, cell, len(invoices))
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+1)
	f.SetCellValue(sheetName, cell, "Grand Total")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow+1)
	f.SetCellValue(sheetName, cell, Ledger.Round2(grandTotal))
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+2)
	f.SetCellValue(sheetName, cell, "Paid Total")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow+2)
	f.SetCellValue(sheetName, cell, Ledger.Round2(paidTotal))

	return sendExcel(c, f, "invoices")
}

// ExportInventoryReport exports the current inventory state to Excel
// GET /api/reports/inventory
func ExportInventoryReport(c *fiber.Ctx) error {
	var items []Models.InventoryItem
	if err := Models.DB.Order("name ASC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve inventory"})
	}

	f := excelize.NewFile()
	sheetName := "Inventory"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Type", "Quantity", "Unit Cost", "Stock Value", "Reorder Threshold", "Low Stock"}
	headerStyle := reportHeaderStyle(f)
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "G", 18)

	var stockValue float64
	for rowIdx, item := range items {
		row := rowIdx + 2
		unitCost := 0.0
		if item.UnitCost != nil {
			unitCost = *item.UnitCost
		}
		value := Ledger.Round2(item.Quantity * unitCost)
		lowStock := item.Quantity <= 0 || (item.ReorderThreshold > 0 && item.Quantity <= item.ReorderThreshold)

		values := []interface{}{
			item.Name,
			item.Category,
			item.Quantity,
			unitCost,
			value,
			item.ReorderThreshold,
			lowStock,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		stockValue += value
	}

	summaryRow := len(items) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheetName, cell, "Total Stock Value")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow)
	f.SetCellValue(sheetName, cell, Ledger.Round2(stockValue))

	return sendExcel(c, f, "inventory")
}
