package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/internal/repository"
	customError "github.com/MohammadDaleen/HomeEase/pkg/errors"
)

type PaymentService struct {
	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
) *PaymentService {
	return &PaymentService{
		PaymentRepo: paymentRepo,
		UserRepo:    userRepo,
	}
}

// List returns all payments where the user is payer or recipient, enriched
// with payer/recipient display fields
func (s *PaymentService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error) {
	payments, err := s.PaymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return payments, nil
}

// CreateBatch validates and persists a batch of payment line items. The
// whole batch is rejected if any item carries a malformed payer or recipient
// id, a non-positive amount, or an empty description; nothing is inserted in
// that case. Status is forced to pending regardless of caller input, and the
// house id comes from the route, not the body.
func (s *PaymentService) CreateBatch(ctx context.Context, houseID uuid.UUID, items []domain.CreatePaymentItem) (int64, error) {
	if len(items) == 0 {
		return 0, customError.WrapEmptyBatch()
	}

	now := time.Now()
	payments := make([]*domain.Payment, 0, len(items))
	for _, item := range items {
		payerID, err := uuid.Parse(item.PayerID)
		if err != nil {
			return 0, customError.WrapInvalidUserID(item.PayerID)
		}

		recipientID, err := uuid.Parse(item.RecipientID)
		if err != nil {
			return 0, customError.WrapInvalidUserID(item.RecipientID)
		}

		if item.Amount.LessThanOrEqual(decimal.Zero) {
			return 0, customError.WrapInvalidAmount(item.Amount.String())
		}

		if item.Description == "" {
			return 0, customError.NewBusinessError(
				customError.ErrCodeInvalidAllocation,
				"Description must be entered",
				customError.ErrEmptyDescription,
			)
		}

		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		payments = append(payments, &domain.Payment{
			ID:          uuid.New(),
			HouseID:     houseID,
			Amount:      item.Amount,
			Description: item.Description,
			Status:      domain.PaymentStatusPending,
			PayerID:     payerID,
			RecipientID: recipientID,
			CreatedAt:   createdAt,
			UpdatedAt:   now,
		})
	}

	count, err := s.PaymentRepo.CreateBatch(ctx, payments)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return count, nil
}

// HouseMembers returns the display fields of every member of a house
func (s *PaymentService) HouseMembers(ctx context.Context, houseID uuid.UUID) ([]*domain.UserSummary, error) {
	users, err := s.UserRepo.ListByHouseID(ctx, houseID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	summaries := make([]*domain.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}

	return summaries, nil
}

// SweepOverdue marks pending payments created before the cutoff as overdue
func (s *PaymentService) SweepOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	count, err := s.PaymentRepo.MarkOverdueBefore(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return count, nil
}

// PendingReminders returns per-payer pending payment counts
func (s *PaymentService) PendingReminders(ctx context.Context) ([]*domain.PendingReminder, error) {
	reminders, err := s.PaymentRepo.CountPendingByPayer(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return reminders, nil
}
