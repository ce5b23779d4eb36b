package Ledger

import (
	"testing"

	"Garage/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductDecrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Oil filter", Models.ItemTypeConsumable, 10, 2)

	stock := NewStockLedger(db)
	alert, err := stock.Deduct(item.ID, 3)
	require.NoError(t, err)
	assert.Nil(t, alert)
	assert.Equal(t, 7.0, itemQuantity(t, db, item.ID))
}

func TestDeductInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Brake pads", Models.ItemTypeConsumable, 2, 0)

	stock := NewStockLedger(db)
	_, err := stock.Deduct(item.ID, 5)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
	assert.Contains(t, err.Error(), "Insufficient stock for Brake pads")
	assert.Equal(t, 2.0, itemQuantity(t, db, item.ID))
}

func TestDeductRejectsNonConsumables(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Torque wrench", Models.ItemTypeNonConsumable, 1, 0)

	stock := NewStockLedger(db)
	_, err := stock.Deduct(item.ID, 1)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestDeductMissingItem(t *testing.T) {
	db := newTestDB(t)
	stock := NewStockLedger(db)
	_, err := stock.Deduct(999, 1)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}

func TestDeductLowStockAlert(t *testing.T) {
	cases := []struct {
		name      string
		start     float64
		threshold float64
		deduct    float64
		alerts    bool
	}{
		{name: "crosses threshold", start: 10, threshold: 5, deduct: 6, alerts: true},
		{name: "lands on threshold", start: 10, threshold: 5, deduct: 5, alerts: true},
		{name: "stays above threshold", start: 10, threshold: 5, deduct: 4, alerts: false},
		{name: "no threshold, stock left", start: 10, threshold: 0, deduct: 9, alerts: false},
		{name: "no threshold, exhausted", start: 10, threshold: 0, deduct: 10, alerts: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			item := seedItem(t, db, "Coolant", Models.ItemTypeConsumable, tc.start, tc.threshold)

			stock := NewStockLedger(db)
			alert, err := stock.Deduct(item.ID, tc.deduct)
			require.NoError(t, err)
			if tc.alerts {
				require.NotNil(t, alert)
				assert.Equal(t, item.ID, alert.ItemID)
				assert.Equal(t, tc.start-tc.deduct, alert.Remaining)
			} else {
				assert.Nil(t, alert)
			}
		})
	}
}

func TestRestock(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Oil filter", Models.ItemTypeConsumable, 3, 0)

	stock := NewStockLedger(db)
	require.NoError(t, stock.Restock(item.ID, 4))
	assert.Equal(t, 7.0, itemQuantity(t, db, item.ID))
}

func TestCacheSeesOwnWrites(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Grease", Models.ItemTypeConsumable, 5, 0)

	stock := NewStockLedger(db)
	require.NoError(t, stock.Restock(item.ID, 5))

	// A follow-up deduction within the same ledger must see the restored
	// quantity, not the value first loaded.
	alert, err := stock.Deduct(item.ID, 8)
	require.NoError(t, err)
	assert.Nil(t, alert)
	assert.Equal(t, 2.0, itemQuantity(t, db, item.ID))
}
