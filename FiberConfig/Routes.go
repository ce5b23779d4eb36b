package FiberConfig

import (
	"fmt"
	"os"

	"Garage/Controllers"
	"Garage/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupRoutes(app *fiber.App) {
	// Auth routes
	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Use("/api/User", Controllers.User)
	app.Use("/api/Logout", Controllers.Logout)
	app.Post("/api/UpdateToken", middleware.Verify(1), Controllers.UpdateToken)

	// Customer routes
	customers := app.Group("/api/customers", middleware.Verify(1))
	customers.Get("/", Controllers.GetAllCustomers)
	customers.Post("/", Controllers.CreateCustomer)
	customers.Get("/:id", Controllers.GetCustomer)
	customers.Put("/:id", Controllers.UpdateCustomer)
	customers.Delete("/:id", middleware.Verify(3), Controllers.DeleteCustomer)
	customers.Get("/:id/vehicles", Controllers.GetCustomerVehicles)

	// Vehicle routes
	vehicles := app.Group("/api/vehicles", middleware.Verify(1))
	vehicles.Get("/", Controllers.GetAllVehicles)
	vehicles.Post("/", Controllers.CreateVehicle)
	vehicles.Get("/:id", Controllers.GetVehicle)
	vehicles.Put("/:id", Controllers.UpdateVehicle)
	vehicles.Delete("/:id", middleware.Verify(3), Controllers.DeleteVehicle)

	// Technician routes
	technicians := app.Group("/api/technicians", middleware.Verify(1))
	technicians.Get("/", Controllers.GetAllTechnicians)
	technicians.Post("/", middleware.Verify(3), Controllers.CreateTechnician)
	technicians.Get("/:id", Controllers.GetTechnician)
	technicians.Put("/:id", middleware.Verify(3), Controllers.UpdateTechnician)
	technicians.Delete("/:id", middleware.Verify(3), Controllers.DeleteTechnician)

	// Inventory routes
	inventory := app.Group("/api/inventory", middleware.Verify(1))
	inventory.Get("/", Controllers.GetAllInventoryItems)
	inventory.Get("/low-stock", Controllers.GetLowStockItems)
	inventory.Post("/", Controllers.CreateInventoryItem)
	inventory.Get("/:id", Controllers.GetInventoryItem)
	inventory.Put("/:id", Controllers.UpdateInventoryItem)
	inventory.Delete("/:id", middleware.Verify(3), Controllers.DeleteInventoryItem)

	// Job routes
	jobs := app.Group("/api/jobs", middleware.Verify(1))
	jobs.Get("/", Controllers.GetAllJobs)
	jobs.Post("/", Controllers.CreateJob)
	jobs.Get("/:id", Controllers.GetJob)
	jobs.Put("/:id", Controllers.UpdateJob)
	jobs.Patch("/:id/status", Controllers.UpdateJobStatus)
	jobs.Delete("/:id", middleware.Verify(3), Controllers.DeleteJob)
	jobs.Get("/:id/invoice", Controllers.GetJobInvoice)

	// Invoice routes
	invoices := app.Group("/api/invoices", middleware.Verify(1))
	invoices.Post("/", Controllers.CreateInvoice)
	invoices.Get("/", Controllers.GetAllInvoices)
	invoices.Get("/:id", Controllers.GetInvoice)
	invoices.Put("/:id", Controllers.UpdateInvoice)
	invoices.Delete("/:id", middleware.Verify(3), Controllers.DeleteInvoice)
	invoices.Post("/:id/email", Controllers.EmailInvoice)

	// Supplier routes
	suppliers := app.Group("/api/suppliers", middleware.Verify(1))
	suppliers.Get("/", Controllers.GetAllSuppliers)
	suppliers.Post("/", middleware.Verify(3), Controllers.CreateSupplier)
	suppliers.Get("/:id", Controllers.GetSupplier)
	suppliers.Put("/:id", middleware.Verify(3), Controllers.UpdateSupplier)
	suppliers.Delete("/:id", middleware.Verify(3), Controllers.DeleteSupplier)
	suppliers.Get("/:id/purchases", Controllers.GetSupplierPurchases)
	suppliers.Post("/:id/purchases", Controllers.RecordSupplierPurchase)

	// Expense routes
	expenses := app.Group("/api/expenses", middleware.Verify(3))
	expenses.Get("/", Controllers.GetAllExpenses)
	expenses.Post("/", Controllers.CreateExpense)
	expenses.Get("/:id", Controllers.GetExpense)
	expenses.Put("/:id", Controllers.UpdateExpense)
	expenses.Delete("/:id", Controllers.DeleteExpense)

	// Notification routes
	notifications := app.Group("/api/notifications", middleware.Verify(1))
	notifications.Get("/", Controllers.GetNotifications)
	notifications.Put("/read-all", Controllers.MarkAllNotificationsRead)
	notifications.Put("/:id/read", Controllers.MarkNotificationRead)

	// Log routes
	app.Get("/api/logs", middleware.Verify(4), Controllers.GetLogs)
	app.Get("/api/logs/stats", middleware.Verify(4), Controllers.GetLogStats)

	// Report routes
	reports := app.Group("/api/reports", middleware.Verify(3))
	reports.Get("/invoices", Controllers.ExportInvoiceReport)
	reports.Get("/inventory", Controllers.ExportInventoryReport)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
