package service

import (
	"github.com/google/uuid"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/pkg/utils"
)

// GroupByDay buckets payments under their calendar-day label, each tagged
// with the id of the viewing user. Input order is preserved inside a bucket,
// and grouping the same list twice yields the same buckets. A day with no
// bucket is the "no payments" state.
func GroupByDay(payments []*domain.Payment, viewerID uuid.UUID) domain.DayBuckets {
	buckets := make(domain.DayBuckets)

	for _, payment := range payments {
		label := utils.DayLabel(payment.CreatedAt)
		buckets[label] = append(buckets[label], domain.PaymentView{
			UserID:  viewerID,
			Payment: *payment,
		})
	}

	return buckets
}
