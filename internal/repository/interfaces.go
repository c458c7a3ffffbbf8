package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// CreateBatch inserts all payments in a single transaction and returns
	// the number of inserted records
	CreateBatch(ctx context.Context, payments []*domain.Payment) (int64, error)

	// ListByUser retrieves all payments where the user is payer or
	// recipient, with payer/recipient display fields attached
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error)

	// MarkOverdueBefore flips pending payments created before the cutoff to
	// overdue and returns the number of affected records
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountPendingByPayer returns the number of pending payments per payer
	CountPendingByPayer(ctx context.Context) ([]*domain.PendingReminder, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// ListByHouseID retrieves all members of a house
	ListByHouseID(ctx context.Context, houseID uuid.UUID) ([]*domain.User, error)
}
