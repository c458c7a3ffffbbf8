package utils

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayLabel formats a timestamp as the calendar-day label used to bucket
// payments, e.g. "12 March 2024"
func DayLabel(t time.Time) string {
	return t.Format("2 January 2006")
}

// SplitEvenly divides a total across n payers, rounded to 2 decimal places
// The rounding remainder is not redistributed, so the sum of shares may
// drift from the total by up to n cents
func SplitEvenly(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// IsValidUserID reports whether s is a well-formed user identifier
func IsValidUserID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
