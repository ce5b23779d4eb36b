package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	Models.DB = db

	app := fiber.New()
	app.Post("/api/invoices", CreateInvoice)
	app.Get("/api/invoices/:id", GetInvoice)
	app.Put("/api/invoices/:id", UpdateInvoice)
	app.Delete("/api/invoices/:id", DeleteInvoice)
	app.Get("/api/jobs/:id/invoice", GetJobInvoice)
	return app
}

func seedInvoiceFixtures(t *testing.T) (*Models.Job, *Models.InventoryItem) {
	t.Helper()
	customer := Models.Customer{Name: "Mona Adel"}
	require.NoError(t, Models.DB.Create(&customer).Error)
	vehicle := Models.Vehicle{CustomerID: customer.ID, Make: "Honda", VehModel: "Civic", PlateNo: "XYZ 987"}
	require.NoError(t, Models.DB.Create(&vehicle).Error)
	job := Models.Job{CustomerID: customer.ID, VehicleID: vehicle.ID, Status: Models.JobStatusCompleted}
	require.NoError(t, Models.DB.Create(&job).Error)
	item := Models.InventoryItem{Name: "Oil filter", Category: Models.ItemTypeConsumable, Quantity: 10}
	require.NoError(t, Models.DB.Create(&item).Error)
	return &job, &item
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	app := setupTestApp(t)
	job, item := seedInvoiceFixtures(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{
		"job_id": job.ID,
		"items": []fiber.Map{
			{"inventory_item_id": item.ID, "quantity": 2, "unit_price": 50},
		},
		"charges":    []fiber.Map{{"label": "Labor", "amount": 100}},
		"reductions": []fiber.Map{{"label": "Discount", "amount": 30}},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, 170.0, body["final_total"])
	assert.Equal(t, "unpaid", body["payment_status"])
	assert.NotEmpty(t, body["invoice_no"])

	// The creation is recorded as a notification.
	var count int64
	require.NoError(t, Models.DB.Model(&Models.Notification{}).
		Where("type = ?", Models.NotificationInvoiceCreated).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateInvoiceReloadFailureKeepsNotificationTrail(t *testing.T) {
	app := setupTestApp(t)
	job, item := seedInvoiceFixtures(t)

	// Break the post-commit reload only: creation never touches the
	// customers table, but the reload preloads Job.Customer.
	require.NoError(t, Models.DB.Migrator().DropTable(&Models.Customer{}))

	resp, err := app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{
		"job_id": job.ID,
		"items": []fiber.Map{
			{"inventory_item_id": item.ID, "quantity": 2, "unit_price": 50},
		},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// The invoice committed and its trail survives the failed reload.
	var invoices int64
	require.NoError(t, Models.DB.Model(&Models.Invoice{}).
		Where("job_id = ?", job.ID).Count(&invoices).Error)
	assert.Equal(t, int64(1), invoices)

	var count int64
	require.NoError(t, Models.DB.Model(&Models.Notification{}).
		Where("type = ?", Models.NotificationInvoiceCreated).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateInvoiceEndpointErrors(t *testing.T) {
	app := setupTestApp(t)
	job, item := seedInvoiceFixtures(t)

	// Unknown job
	resp, err := app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{"job_id": 999}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Insufficient stock
	resp, err = app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{
		"job_id": job.ID,
		"items": []fiber.Map{
			{"inventory_item_id": item.ID, "quantity": 50, "unit_price": 10},
		},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "Insufficient stock")

	// Duplicate invoice
	resp, err = app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{"job_id": job.ID}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, err = app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{"job_id": job.ID}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestInvoiceEndpointLifecycle(t *testing.T) {
	app := setupTestApp(t)
	job, item := seedInvoiceFixtures(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/invoices", fiber.Map{
		"job_id": job.ID,
		"items": []fiber.Map{
			{"inventory_item_id": item.ID, "quantity": 2, "unit_price": 50},
		},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	invoiceID := int(created["ID"].(float64))

	// Fetch by job
	resp, err = app.Test(jsonRequest(t, "GET", fmt.Sprintf("/api/jobs/%d/invoice", job.ID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Mark as paid
	resp, err = app.Test(jsonRequest(t, "PUT", fmt.Sprintf("/api/invoices/%d", invoiceID), fiber.Map{
		"payment_status": "paid",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "paid", updated["payment_status"])

	// Delete restocks
	resp, err = app.Test(jsonRequest(t, "DELETE", fmt.Sprintf("/api/invoices/%d", invoiceID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded Models.InventoryItem
	require.NoError(t, Models.DB.First(&reloaded, item.ID).Error)
	assert.Equal(t, 10.0, reloaded.Quantity)

	resp, err = app.Test(jsonRequest(t, "GET", fmt.Sprintf("/api/invoices/%d", invoiceID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
