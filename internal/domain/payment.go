package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// Payment represents a single payment record: what one payer owes the
// recipient for a shared expense
type Payment struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	HouseID     uuid.UUID       `json:"house_id" db:"house_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Status      string          `json:"status" db:"status"` // pending, paid, overdue
	PayerID     uuid.UUID       `json:"payer_id" db:"payer_id"`
	RecipientID uuid.UUID       `json:"recipient_id" db:"recipient_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	Payer     *UserSummary `json:"payer,omitempty" db:"-"`
	Recipient *UserSummary `json:"recipient,omitempty" db:"-"`
}

// PaymentView is a payment tagged with the id of the user viewing it,
// the shape the day-grouped listing serves
type PaymentView struct {
	UserID uuid.UUID `json:"user_id"`
	Payment
}

// DayBuckets maps a calendar-day label ("12 March 2024") to the payments
// created on that day
type DayBuckets map[string][]PaymentView

// DTOs for requests and responses

// CreatePaymentItem is one line item of a batch-create request. Any
// caller-supplied status is ignored: created payments are always pending.
type CreatePaymentItem struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	PayerID     string          `json:"payer_id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Status      string          `json:"status,omitempty"`
	RecipientID string          `json:"recipient_id" validate:"required"`
	CreatedAt   time.Time       `json:"created_at" validate:"required"`
}

// PendingReminder is a per-payer count of pending payments, used by the
// scheduler's reminder job
type PendingReminder struct {
	PayerID uuid.UUID `db:"payer_id"`
	Count   int64     `db:"count"`
}

type BatchCreateResponse struct {
	Count int64 `json:"count"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type PaymentsPageResponse struct {
	ByDay DayBuckets     `json:"by_day"`
	Users []*UserSummary `json:"users"`
}
