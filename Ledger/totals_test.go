package Ledger

import (
	"testing"

	"Garage/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []Models.InvoiceItem{
		{LineTotal: 60},
		{LineTotal: 40},
	}
	extras := []Models.InvoiceExtraItem{
		{Kind: Models.ExtraKindCharge, Label: "Labor", Amount: 80},
		{Kind: Models.ExtraKindCharge, Label: "Initial Amount", Amount: 20},
		{Kind: Models.ExtraKindDeduction, Label: "Discount", Amount: 30},
	}

	totals := ComputeTotals(items, extras)
	assert.Equal(t, 100.0, totals.ItemsTotal)
	assert.Equal(t, 100.0, totals.TotalCharges)
	assert.Equal(t, 30.0, totals.TotalDeductions)
	assert.Equal(t, 170.0, totals.FinalTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil, nil)
	assert.Equal(t, Totals{}, totals)
}

func TestComputeTotalsRounding(t *testing.T) {
	items := []Models.InvoiceItem{
		{LineTotal: 0.1},
		{LineTotal: 0.2},
	}
	totals := ComputeTotals(items, nil)
	assert.Equal(t, 0.3, totals.ItemsTotal)
	assert.Equal(t, 0.3, totals.FinalTotal)
}

func TestRecomputeTotalsReflectsPersistedRows(t *testing.T) {
	db := newTestDB(t)

	invoice := Models.Invoice{JobID: seedCompletedJob(t, db).ID, InvoiceNo: "INV-20240101-0001"}
	require.NoError(t, db.Create(&invoice).Error)
	require.NoError(t, db.Create(&Models.InvoiceItem{
		InvoiceID: invoice.ID, ItemName: "Oil filter", ItemType: Models.ItemTypeConsumable,
		Quantity: 2, UnitPrice: 50, LineTotal: 100,
	}).Error)
	require.NoError(t, db.Create(&Models.InvoiceExtraItem{
		InvoiceID: invoice.ID, Kind: Models.ExtraKindDeduction, Label: "Advance", Amount: 30,
	}).Error)

	totals, err := RecomputeTotals(db, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, totals.FinalTotal)

	// Running it again changes nothing.
	again, err := RecomputeTotals(db, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, totals, again)

	var reloaded Models.Invoice
	require.NoError(t, db.First(&reloaded, invoice.ID).Error)
	assert.Equal(t, 100.0, reloaded.ItemsTotal)
	assert.Equal(t, 30.0, reloaded.TotalDeductions)
	assert.Equal(t, 70.0, reloaded.FinalTotal)
}
