package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(payerIDs ...uuid.UUID) *Request {
	return &Request{
		TotalAmount: decimal.NewFromInt(100),
		Description: "Groceries",
		PaymentDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		PayerIDs:    payerIDs,
		Mode:        ModeEven,
	}
}

func TestValidate(t *testing.T) {
	sessionUser := uuid.New()
	payerA := uuid.New()
	payerB := uuid.New()

	tests := []struct {
		name           string
		modify         func(*Request)
		expectedFields []string
	}{
		{
			name:           "valid even request",
			modify:         func(r *Request) {},
			expectedFields: nil,
		},
		{
			name: "no payers selected",
			modify: func(r *Request) {
				r.PayerIDs = nil
			},
			expectedFields: []string{FieldPayerIDs},
		},
		{
			name: "empty description",
			modify: func(r *Request) {
				r.Description = ""
			},
			expectedFields: []string{FieldDescription},
		},
		{
			name: "no date chosen",
			modify: func(r *Request) {
				r.PaymentDate = time.Time{}
			},
			expectedFields: []string{FieldPaymentDate},
		},
		{
			name: "zero amount in even mode",
			modify: func(r *Request) {
				r.TotalAmount = decimal.Zero
			},
			expectedFields: []string{FieldAmount},
		},
		{
			name: "negative amount in even mode",
			modify: func(r *Request) {
				r.TotalAmount = decimal.NewFromInt(-5)
			},
			expectedFields: []string{FieldAmount},
		},
		{
			name: "all fields invalid at once",
			modify: func(r *Request) {
				r.PayerIDs = nil
				r.Description = ""
				r.PaymentDate = time.Time{}
				r.TotalAmount = decimal.Zero
			},
			expectedFields: []string{FieldPayerIDs, FieldDescription, FieldPaymentDate, FieldAmount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(payerA, payerB)
			tt.modify(req)

			errs := req.Validate(sessionUser)

			if tt.expectedFields == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.expectedFields))
			for _, field := range tt.expectedFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidate_CustomMode(t *testing.T) {
	sessionUser := uuid.New()
	payerA := uuid.New()
	payerB := uuid.New()

	t.Run("errors keyed per payer with non-positive amounts", func(t *testing.T) {
		req := validRequest(payerA, payerB)
		req.Mode = ModeCustom
		req.CustomAmounts = map[uuid.UUID]decimal.Decimal{
			payerA: decimal.Zero,
			payerB: decimal.NewFromFloat(12.50),
		}

		errs := req.Validate(sessionUser)

		require.Len(t, errs, 1)
		assert.Contains(t, errs, FieldCustomAmounts+"."+payerA.String())
	})

	t.Run("missing custom amount is an error", func(t *testing.T) {
		req := validRequest(payerA)
		req.Mode = ModeCustom
		req.CustomAmounts = map[uuid.UUID]decimal.Decimal{}

		errs := req.Validate(sessionUser)

		require.Len(t, errs, 1)
		assert.Contains(t, errs, FieldCustomAmounts+"."+payerA.String())
	})

	t.Run("session user's own entry is not validated", func(t *testing.T) {
		req := validRequest(sessionUser, payerA)
		req.Mode = ModeCustom
		req.CustomAmounts = map[uuid.UUID]decimal.Decimal{
			sessionUser: decimal.Zero,
			payerA:      decimal.NewFromInt(20),
		}

		assert.Nil(t, req.Validate(sessionUser))
	})

	t.Run("total amount is not checked in custom mode", func(t *testing.T) {
		req := validRequest(payerA)
		req.Mode = ModeCustom
		req.TotalAmount = decimal.Zero
		req.CustomAmounts = map[uuid.UUID]decimal.Decimal{
			payerA: decimal.NewFromInt(20),
		}

		assert.Nil(t, req.Validate(sessionUser))
	})
}

func TestBuildLineItems_EvenSplit(t *testing.T) {
	sessionUser := uuid.New()
	payerB := uuid.New()
	payerC := uuid.New()

	// total=100 across [session, B, C]: each share is 33.33 and the
	// session user generates no line item
	req := validRequest(sessionUser, payerB, payerC)

	items, errs := req.BuildLineItems(sessionUser)

	require.Nil(t, errs)
	require.Len(t, items, 2)

	expected := decimal.NewFromFloat(33.33)
	byPayer := map[uuid.UUID]decimal.Decimal{}
	for _, item := range items {
		byPayer[item.PayerID] = item.Amount
	}
	assert.NotContains(t, byPayer, sessionUser)
	assert.True(t, byPayer[payerB].Equal(expected), "got %v", byPayer[payerB])
	assert.True(t, byPayer[payerC].Equal(expected), "got %v", byPayer[payerC])
}

func TestBuildLineItems_EvenSplit_RoundingBound(t *testing.T) {
	sessionUser := uuid.New()

	totals := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromFloat(99.99),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(250.10),
	}

	for _, total := range totals {
		for n := 1; n <= 6; n++ {
			payers := make([]uuid.UUID, n)
			for i := range payers {
				payers[i] = uuid.New()
			}

			req := validRequest(payers...)
			req.TotalAmount = total

			items, errs := req.BuildLineItems(sessionUser)
			require.Nil(t, errs)
			require.Len(t, items, n)

			drift := Total(items).Sub(total).Abs()
			bound := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(n)))
			assert.True(t, drift.LessThanOrEqual(bound),
				"total %v across %d payers drifted by %v", total, n, drift)
		}
	}
}

func TestBuildLineItems_CustomAmounts(t *testing.T) {
	sessionUser := uuid.New()
	payerA := uuid.New()
	payerB := uuid.New()

	req := validRequest(sessionUser, payerA, payerB)
	req.Mode = ModeCustom
	req.CustomAmounts = map[uuid.UUID]decimal.Decimal{
		payerA: decimal.NewFromFloat(70.50),
		payerB: decimal.NewFromFloat(29.50),
	}

	items, errs := req.BuildLineItems(sessionUser)

	require.Nil(t, errs)
	require.Len(t, items, 2)
	assert.True(t, Total(items).Equal(decimal.NewFromInt(100)))
}

func TestBuildLineItems_ValidationBlocksDerivation(t *testing.T) {
	sessionUser := uuid.New()

	req := validRequest()

	items, errs := req.BuildLineItems(sessionUser)

	assert.Nil(t, items)
	require.NotNil(t, errs)
	assert.Contains(t, errs, FieldPayerIDs)
}

func TestBuildLineItems_OnlySelfSelected(t *testing.T) {
	// Selecting only yourself validates fine but yields no line items
	sessionUser := uuid.New()

	req := validRequest(sessionUser)

	items, errs := req.BuildLineItems(sessionUser)

	require.Nil(t, errs)
	assert.Empty(t, items)
}
