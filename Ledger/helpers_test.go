package Ledger

import (
	"path/filepath"
	"testing"

	"Garage/Models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

func seedCompletedJob(t *testing.T, db *gorm.DB) *Models.Job {
	t.Helper()
	customer := Models.Customer{Name: "Amr Khaled", Phone: "0100000000"}
	require.NoError(t, db.Create(&customer).Error)
	vehicle := Models.Vehicle{CustomerID: customer.ID, Make: "Toyota", VehModel: "Corolla", PlateNo: "ABC 123"}
	require.NoError(t, db.Create(&vehicle).Error)
	job := Models.Job{
		CustomerID:  customer.ID,
		VehicleID:   vehicle.ID,
		Description: "Oil change and brake check",
		Status:      Models.JobStatusCompleted,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func seedItem(t *testing.T, db *gorm.DB, name, category string, qty, threshold float64) *Models.InventoryItem {
	t.Helper()
	item := Models.InventoryItem{
		Name:             name,
		Category:         category,
		Quantity:         qty,
		ReorderThreshold: threshold,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func itemQuantity(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var item Models.InventoryItem
	require.NoError(t, db.First(&item, id).Error)
	return item.Quantity
}
