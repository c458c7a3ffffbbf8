package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateBatch(ctx context.Context, payments []*domain.Payment) (int64, error) {
	query := `
		INSERT INTO payments (id, house_id, amount, description, status, payer_id, recipient_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for _, payment := range payments {
		_, err = tx.ExecContext(ctx, query,
			payment.ID,
			payment.HouseID,
			payment.Amount,
			payment.Description,
			payment.Status,
			payment.PayerID,
			payment.RecipientID,
			payment.CreatedAt,
			payment.UpdatedAt,
		)
		if err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return int64(len(payments)), nil
}

// paymentListRow flattens the payer/recipient joins onto a payment record
type paymentListRow struct {
	domain.Payment
	PayerFirstName     string `db:"payer_first_name"`
	PayerLastName      string `db:"payer_last_name"`
	PayerEmail         string `db:"payer_email"`
	RecipientFirstName string `db:"recipient_first_name"`
	RecipientLastName  string `db:"recipient_last_name"`
	RecipientEmail     string `db:"recipient_email"`
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error) {
	query := `
		SELECT p.id, p.house_id, p.amount, p.description, p.status, p.payer_id, p.recipient_id, p.created_at, p.updated_at,
		       payer.first_name AS payer_first_name, payer.last_name AS payer_last_name, payer.email AS payer_email,
		       recipient.first_name AS recipient_first_name, recipient.last_name AS recipient_last_name, recipient.email AS recipient_email
		FROM payments p
		JOIN users payer ON payer.id = p.payer_id
		JOIN users recipient ON recipient.id = p.recipient_id
		WHERE p.payer_id = $1 OR p.recipient_id = $1
		ORDER BY p.created_at
	`

	var rows []*paymentListRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, 0, len(rows))
	for _, row := range rows {
		payment := row.Payment
		payment.Payer = &domain.UserSummary{
			ID:        payment.PayerID,
			FirstName: row.PayerFirstName,
			LastName:  row.PayerLastName,
			Email:     row.PayerEmail,
		}
		payment.Recipient = &domain.UserSummary{
			ID:        payment.RecipientID,
			FirstName: row.RecipientFirstName,
			LastName:  row.RecipientLastName,
			Email:     row.RecipientEmail,
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE status = $3 AND created_at < $4
	`

	result, err := r.db.ExecContext(ctx, query,
		domain.PaymentStatusOverdue,
		time.Now(),
		domain.PaymentStatusPending,
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *paymentRepository) CountPendingByPayer(ctx context.Context) ([]*domain.PendingReminder, error) {
	query := `
		SELECT payer_id, COUNT(*) AS count
		FROM payments
		WHERE status = $1
		GROUP BY payer_id
	`

	var reminders []*domain.PendingReminder
	if err := r.db.SelectContext(ctx, &reminders, query, domain.PaymentStatusPending); err != nil {
		return nil, err
	}

	return reminders, nil
}
