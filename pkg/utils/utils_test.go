package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "single digit day",
			input:    time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC),
			expected: "2 March 2024",
		},
		{
			name:     "double digit day",
			input:    time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			expected: "12 March 2024",
		},
		{
			name:     "year boundary",
			input:    time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "31 December 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayLabel(tt.input))
		})
	}
}

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name     string
		total    decimal.Decimal
		n        int
		expected decimal.Decimal
	}{
		{
			name:     "exact division",
			total:    decimal.NewFromInt(90),
			n:        3,
			expected: decimal.NewFromInt(30),
		},
		{
			name:     "rounded share",
			total:    decimal.NewFromInt(100),
			n:        3,
			expected: decimal.NewFromFloat(33.33),
		},
		{
			name:     "single payer",
			total:    decimal.NewFromFloat(12.50),
			n:        1,
			expected: decimal.NewFromFloat(12.50),
		},
		{
			name:     "zero payers",
			total:    decimal.NewFromInt(100),
			n:        0,
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitEvenly(tt.total, tt.n)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestSplitEvenly_RoundingBound(t *testing.T) {
	// Sum of shares stays within n cents of the total
	totals := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromFloat(99.99),
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(73.57),
	}

	for _, total := range totals {
		for n := 1; n <= 7; n++ {
			share := SplitEvenly(total, n)
			sum := share.Mul(decimal.NewFromInt(int64(n)))
			drift := sum.Sub(total).Abs()
			bound := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(n)))
			assert.True(t, drift.LessThanOrEqual(bound),
				"total %v across %d payers drifted by %v", total, n, drift)
		}
	}
}

func TestIsValidUserID(t *testing.T) {
	assert.True(t, IsValidUserID(uuid.New().String()))
	assert.False(t, IsValidUserID("not-an-id"))
	assert.False(t, IsValidUserID(""))
}
