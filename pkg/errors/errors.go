package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrEmptyDescription   = errors.New("description must be entered")
	ErrEmptyBatch         = errors.New("payment batch is empty")
	ErrNotHouseMember     = errors.New("user is not part of this house")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoHouseAssociation = errors.New("user has no house association")
	ErrInvalidAllocation  = errors.New("invalid allocation request")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeInvalidUserID     = "INVALID_USER_ID"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeEmptyBatch        = "EMPTY_BATCH"
	ErrCodeNotHouseMember    = "NOT_HOUSE_MEMBER"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeInvalidAllocation = "INVALID_ALLOCATION"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeCacheError        = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapInvalidUserID(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidUserID,
		fmt.Sprintf("Invalid user id %q", id),
		ErrInvalidUserID,
	)
}

func WrapUserNotFound(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeUserNotFound,
		fmt.Sprintf("User with ID %s not found", id),
		ErrUserNotFound,
	)
}

func WrapNotHouseMember(userID, houseID string) *BusinessError {
	return NewBusinessError(
		ErrCodeNotHouseMember,
		fmt.Sprintf("User %s is not a member of house %s", userID, houseID),
		ErrNotHouseMember,
	)
}

func WrapInvalidAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount),
		ErrInvalidAmount,
	)
}

func WrapEmptyBatch() *BusinessError {
	return NewBusinessError(
		ErrCodeEmptyBatch,
		"Payment batch must contain at least one item",
		ErrEmptyBatch,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

func WrapSessionNotFound() *BusinessError {
	return NewBusinessError(
		ErrCodeSessionNotFound,
		"No active session for this request",
		ErrSessionNotFound,
	)
}
