package Notifications

import (
	"path/filepath"
	"testing"

	"Garage/Ledger"
	"Garage/Models"

	"github.com/stretchr/testify/assert"
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

func countNotifications(t *testing.T, db *gorm.DB, notifType string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&Models.Notification{}).
		Where("type = ?", notifType).Count(&count).Error)
	return count
}

func TestPublishPersistsEvents(t *testing.T) {
	db := newTestDB(t)

	Publish(db, []Ledger.Event{
		{Type: Models.NotificationInvoiceCreated, Message: "Invoice INV-20240101-0001 created for job #1", RefType: "invoice", RefID: 1},
		{Type: Models.NotificationInventoryUsed, Message: "Inventory used for invoice INV-20240101-0001: Oil filter × 2", RefType: "invoice", RefID: 1},
	})

	var notifications []Models.Notification
	require.NoError(t, db.Order("id ASC").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	assert.Equal(t, Models.NotificationInvoiceCreated, notifications[0].Type)
	assert.Equal(t, uint(1), notifications[0].RefID)
	assert.False(t, notifications[0].Read)
}

func TestPublishDedupesOpenLowStockAlerts(t *testing.T) {
	db := newTestDB(t)
	event := Ledger.Event{
		Type:    Models.NotificationLowStock,
		Message: formatLowStock("Oil filter", 2, 5),
		RefType: "inventory_item",
		RefID:   7,
	}

	Publish(db, []Ledger.Event{event})
	Publish(db, []Ledger.Event{event})
	assert.Equal(t, int64(1), countNotifications(t, db, Models.NotificationLowStock))

	// A different item alerts independently.
	other := event
	other.RefID = 8
	Publish(db, []Ledger.Event{other})
	assert.Equal(t, int64(2), countNotifications(t, db, Models.NotificationLowStock))

	// Once the alert is read, the item may alert again.
	require.NoError(t, db.Model(&Models.Notification{}).
		Where("type = ? AND ref_id = ?", Models.NotificationLowStock, 7).
		Update("read", true).Error)
	Publish(db, []Ledger.Event{event})
	assert.Equal(t, int64(3), countNotifications(t, db, Models.NotificationLowStock))
}

func TestSweepLowStock(t *testing.T) {
	db := newTestDB(t)
	items := []Models.InventoryItem{
		{Name: "Oil filter", Category: Models.ItemTypeConsumable, Quantity: 2, ReorderThreshold: 5},
		{Name: "Coolant", Category: Models.ItemTypeConsumable, Quantity: 0, ReorderThreshold: 0},
		{Name: "Brake pads", Category: Models.ItemTypeConsumable, Quantity: 10, ReorderThreshold: 5},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	require.NoError(t, SweepLowStock(db))
	assert.Equal(t, int64(2), countNotifications(t, db, Models.NotificationLowStock))

	// A second sweep adds nothing while the alerts stay unread.
	require.NoError(t, SweepLowStock(db))
	assert.Equal(t, int64(2), countNotifications(t, db, Models.NotificationLowStock))
}
