// Package allocation computes per-payer line items for a shared expense.
// A Request is built once from the submitted form state and validated as a
// unit; validation failures come back as a field-keyed map rather than an
// error, so callers can surface them inline per field.
package allocation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MohammadDaleen/HomeEase/pkg/utils"
)

const (
	ModeEven   = "even"
	ModeCustom = "custom"
)

// Field keys for validation errors. Custom-amount errors are keyed
// "custom_amounts.<payerId>".
const (
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldPayerIDs      = "payer_ids"
	FieldPaymentDate   = "payment_date"
	FieldCustomAmounts = "custom_amounts"
)

// Request is one allocation of a shared expense across a set of payers
type Request struct {
	TotalAmount   decimal.Decimal
	Description   string
	PaymentDate   time.Time
	PayerIDs      []uuid.UUID
	Mode          string
	CustomAmounts map[uuid.UUID]decimal.Decimal
}

// LineItem is the derived amount owed by one payer
type LineItem struct {
	PayerID uuid.UUID
	Amount  decimal.Decimal
}

// FieldErrors maps a field key to a human-readable validation message
type FieldErrors map[string]string

// Validate checks the request as a whole and returns every field error at
// once. The session user never generates a line item, so in custom mode
// their amount entry is not validated.
func (r *Request) Validate(sessionUserID uuid.UUID) FieldErrors {
	errs := FieldErrors{}

	if len(r.PayerIDs) == 0 {
		errs[FieldPayerIDs] = "A payer must be selected"
	}

	if r.Description == "" {
		errs[FieldDescription] = "Description must be entered"
	}

	if r.PaymentDate.IsZero() {
		errs[FieldPaymentDate] = "Due date must be selected"
	}

	switch r.Mode {
	case ModeCustom:
		for _, payerID := range r.PayerIDs {
			if payerID == sessionUserID {
				continue
			}
			amount, ok := r.CustomAmounts[payerID]
			if !ok || amount.LessThanOrEqual(decimal.Zero) {
				errs[FieldCustomAmounts+"."+payerID.String()] = "Amount must be greater than 0"
			}
		}
	default:
		if r.TotalAmount.LessThanOrEqual(decimal.Zero) {
			errs[FieldAmount] = "Amount must be greater than 0"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// BuildLineItems validates the request and derives one line item per payer
// other than the session user. In even mode each share is
// total / len(PayerIDs) rounded to 2 decimal places; the rounding remainder
// is not redistributed. A user does not create a payment record against
// themself, so the session user is dropped from the payer set.
func (r *Request) BuildLineItems(sessionUserID uuid.UUID) ([]LineItem, FieldErrors) {
	if errs := r.Validate(sessionUserID); errs != nil {
		return nil, errs
	}

	// Even shares divide by the full selection count, session user included
	evenShare := utils.SplitEvenly(r.TotalAmount, len(r.PayerIDs))

	items := make([]LineItem, 0, len(r.PayerIDs))
	for _, payerID := range r.PayerIDs {
		if payerID == sessionUserID {
			continue
		}

		amount := evenShare
		if r.Mode == ModeCustom {
			amount = r.CustomAmounts[payerID]
		}

		items = append(items, LineItem{
			PayerID: payerID,
			Amount:  amount,
		})
	}

	return items, nil
}

// Total sums the derived line-item amounts
func Total(items []LineItem) decimal.Decimal {
	var total decimal.Decimal
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
