package Ledger

import (
	"testing"

	"Garage/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareLinesFromInventory(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Oil filter", Models.ItemTypeConsumable, 10, 0)

	prepared, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{InventoryItemID: &item.ID, Quantity: 2.0, UnitPrice: 50.0},
	})
	require.NoError(t, err)
	require.Len(t, prepared, 1)

	line := prepared[0]
	assert.True(t, line.Deduct)
	assert.Equal(t, "Oil filter", line.Line.ItemName)
	assert.Equal(t, Models.ItemTypeConsumable, line.Line.ItemType)
	assert.Equal(t, 100.0, line.Line.LineTotal)

	// Validation is side-effect free.
	assert.Equal(t, 10.0, itemQuantity(t, db, item.ID))
}

func TestPrepareLinesExplicitEntry(t *testing.T) {
	db := newTestDB(t)
	prepared, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{ItemName: "  Labor  ", ItemType: Models.ItemTypeNonConsumable, Quantity: 1.0, Price: 250.0},
	})
	require.NoError(t, err)
	require.Len(t, prepared, 1)
	assert.False(t, prepared[0].Deduct)
	assert.Equal(t, "Labor", prepared[0].Line.ItemName)
	assert.Equal(t, 250.0, prepared[0].Line.UnitPrice)
}

func TestPrepareLinesQuantityDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	prepared, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{ItemName: "Wiper blade", UnitPrice: 15.0},
		{ItemName: "Bulb", Quantity: "", UnitPrice: 5.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, prepared[0].Line.Quantity)
	assert.Equal(t, 1.0, prepared[1].Line.Quantity)
}

func TestPrepareLinesRejectsNegativeQuantity(t *testing.T) {
	db := newTestDB(t)
	_, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{ItemName: "Bolt", Quantity: -1.0, UnitPrice: 2.0},
	})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestPrepareLinesRequiresNameOrItem(t *testing.T) {
	db := newTestDB(t)
	_, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{Quantity: 1.0, UnitPrice: 2.0},
	})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestPrepareLinesUnknownItemType(t *testing.T) {
	db := newTestDB(t)
	_, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{ItemName: "Thing", ItemType: "magic", Quantity: 1.0},
	})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestPrepareLinesCombinedUsageCheck(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Coolant", Models.ItemTypeConsumable, 5, 0)

	// Each line alone fits the stock. Together they do not.
	_, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{InventoryItemID: &item.ID, Quantity: 3.0, UnitPrice: 10.0},
		{InventoryItemID: &item.ID, Quantity: 3.0, UnitPrice: 10.0},
	})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
	assert.Equal(t, 5.0, itemQuantity(t, db, item.ID))
}

func TestPrepareLinesNonConsumableSkipsStockCheck(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "Diagnostic scanner", Models.ItemTypeNonConsumable, 1, 0)

	prepared, err := PrepareLines(NewStockLedger(db), []Models.InvoiceLineRequest{
		{InventoryItemID: &item.ID, Quantity: 3.0, UnitPrice: 40.0},
	})
	require.NoError(t, err)
	assert.False(t, prepared[0].Deduct)
}

func TestPrepareExtras(t *testing.T) {
	extras, err := PrepareExtras([]Models.ExtraItemRequest{
		{Label: " Labor ", Amount: 80.555},
	}, Models.ExtraKindCharge)
	require.NoError(t, err)
	require.Len(t, extras, 1)
	assert.Equal(t, "Labor", extras[0].Label)
	assert.Equal(t, 80.56, extras[0].Amount)

	_, err = PrepareExtras([]Models.ExtraItemRequest{{Label: "  ", Amount: 1.0}}, Models.ExtraKindCharge)
	require.Error(t, err)

	_, err = PrepareExtras([]Models.ExtraItemRequest{{Label: "Discount", Amount: -5.0}}, Models.ExtraKindDeduction)
	require.Error(t, err)
}

func TestInjectJobExtras(t *testing.T) {
	initial := 200.0
	advance := 50.0
	job := &Models.Job{InitialAmount: &initial, AdvanceAmount: &advance}

	charges, deductions := injectJobExtras(job, nil, nil)
	require.Len(t, charges, 1)
	require.Len(t, deductions, 1)
	assert.Equal(t, LabelInitialAmount, charges[0].Label)
	assert.Equal(t, 200.0, charges[0].Amount)
	assert.Equal(t, LabelAdvance, deductions[0].Label)
	assert.Equal(t, 50.0, deductions[0].Amount)

	// Caller-provided entries with the same label win.
	charges, deductions = injectJobExtras(job,
		[]Models.InvoiceExtraItem{{Kind: Models.ExtraKindCharge, Label: "initial amount", Amount: 120}},
		[]Models.InvoiceExtraItem{{Kind: Models.ExtraKindDeduction, Label: "Advance", Amount: 10}})
	assert.Len(t, charges, 1)
	assert.Len(t, deductions, 1)

	// Zero and missing amounts inject nothing.
	zero := 0.0
	charges, deductions = injectJobExtras(&Models.Job{InitialAmount: &zero}, nil, nil)
	assert.Empty(t, charges)
	assert.Empty(t, deductions)
}
