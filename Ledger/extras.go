package Ledger

import (
	"fmt"
	"strings"

	"Garage/Models"
)

// Conventional labels auto-populated from the job at creation time.
const (
	LabelInitialAmount = "Initial Amount"
	LabelAdvance       = "Advance"
)

// PrepareExtras validates charge/deduction entries. Labels must be
// non-empty after trimming and amounts must parse to a value >= 0.
func PrepareExtras(raw []Models.ExtraItemRequest, kind string) ([]Models.InvoiceExtraItem, error) {
	extras := make([]Models.InvoiceExtraItem, 0, len(raw))
	for i, entry := range raw {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			return nil, ValidationError(fmt.Sprintf("%ss[%d] requires a label", kind, i))
		}
		amount, err := ParseNumber(entry.Amount, fmt.Sprintf("%ss[%d].amount", kind, i))
		if err != nil {
			return nil, err
		}
		if amount < 0 {
			return nil, ValidationError(fmt.Sprintf("%ss[%d].amount must not be negative", kind, i))
		}
		extras = append(extras, Models.InvoiceExtraItem{
			Kind:   kind,
			Label:  label,
			Amount: Round2(amount),
		})
	}
	return extras, nil
}

func hasLabel(extras []Models.InvoiceExtraItem, label string) bool {
	for _, e := range extras {
		if strings.EqualFold(strings.TrimSpace(e.Label), label) {
			return true
		}
	}
	return false
}

// injectJobExtras adds the "Initial Amount" charge and "Advance"
// deduction derived from the job, unless an entry with the same label
// already exists. Runs only at invoice creation; amounts are frozen on
// the invoice afterwards.
func injectJobExtras(job *Models.Job, charges, deductions []Models.InvoiceExtraItem) ([]Models.InvoiceExtraItem, []Models.InvoiceExtraItem) {
	if job.InitialAmount != nil && *job.InitialAmount > 0 && !hasLabel(charges, LabelInitialAmount) {
		charges = append(charges, Models.InvoiceExtraItem{
			Kind:   Models.ExtraKindCharge,
			Label:  LabelInitialAmount,
			Amount: Round2(*job.InitialAmount),
		})
	}
	if job.AdvanceAmount != nil && *job.AdvanceAmount > 0 && !hasLabel(deductions, LabelAdvance) {
		deductions = append(deductions, Models.InvoiceExtraItem{
			Kind:   Models.ExtraKindDeduction,
			Label:  LabelAdvance,
			Amount: Round2(*job.AdvanceAmount),
		})
	}
	return charges, deductions
}
