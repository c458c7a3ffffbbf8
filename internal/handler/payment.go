package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/MohammadDaleen/HomeEase/internal/allocation"
	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/internal/middleware"
	customError "github.com/MohammadDaleen/HomeEase/pkg/errors"
	"github.com/MohammadDaleen/HomeEase/pkg/response"
)

// PaymentService is the service surface the payment endpoints depend on
type PaymentService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error)
	CreateBatch(ctx context.Context, houseID uuid.UUID, items []domain.CreatePaymentItem) (int64, error)
	HouseMembers(ctx context.Context, houseID uuid.UUID) ([]*domain.UserSummary, error)
}

type PaymentHandler struct {
	service   PaymentService
	validator *validator.Validate
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:   service,
		validator: validator.New(),
	}
}

// ListPayments returns every payment where the session user is payer or
// recipient, enriched with payer/recipient display fields
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	payments, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, domain.ListPaymentsResponse{Payments: payments})
}

// CreatePayments accepts a JSON array of line items and inserts them as one
// batch. Any malformed payer/recipient id rejects the whole batch with 400.
func (h *PaymentHandler) CreatePayments(w http.ResponseWriter, r *http.Request) {
	houseID, err := uuid.Parse(mux.Vars(r)["houseId"])
	if err != nil {
		response.BadRequest(w, "Invalid house id", err)
		return
	}

	var items []domain.CreatePaymentItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	for _, item := range items {
		if err := h.validator.Struct(item); err != nil {
			response.BadRequest(w, "Invalid payment item", err)
			return
		}
	}

	count, err := h.service.CreateBatch(r.Context(), houseID, items)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, domain.BatchCreateResponse{Count: count})
}

// AllocationRequestBody is the wire shape of an allocation preview request
type AllocationRequestBody struct {
	TotalAmount   decimal.Decimal            `json:"total_amount"`
	Description   string                     `json:"description"`
	PaymentDate   time.Time                  `json:"payment_date"`
	PayerIDs      []string                   `json:"payer_ids"`
	Mode          string                     `json:"mode"`
	CustomAmounts map[string]decimal.Decimal `json:"custom_amounts,omitempty"`
}

// AllocationPreviewResponse carries the line items a valid allocation would
// submit as a create batch
type AllocationPreviewResponse struct {
	Items []domain.CreatePaymentItem `json:"items"`
	Total decimal.Decimal            `json:"total"`
}

// PreviewAllocation validates an allocation request and returns the derived
// line items, or a field-keyed error map with 400. Nothing is persisted.
func (h *PaymentHandler) PreviewAllocation(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var body AllocationRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	req := &allocation.Request{
		TotalAmount:   body.TotalAmount,
		Description:   body.Description,
		PaymentDate:   body.PaymentDate,
		Mode:          body.Mode,
		CustomAmounts: make(map[uuid.UUID]decimal.Decimal, len(body.CustomAmounts)),
	}

	for _, raw := range body.PayerIDs {
		payerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid user id", err)
			return
		}
		req.PayerIDs = append(req.PayerIDs, payerID)
	}

	for raw, amount := range body.CustomAmounts {
		payerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid user id", err)
			return
		}
		req.CustomAmounts[payerID] = amount
	}

	lineItems, fieldErrs := req.BuildLineItems(user.ID)
	if fieldErrs != nil {
		response.FieldErrors(w, "Invalid allocation request", fieldErrs)
		return
	}

	items := make([]domain.CreatePaymentItem, 0, len(lineItems))
	for _, line := range lineItems {
		items = append(items, domain.CreatePaymentItem{
			Amount:      line.Amount,
			PayerID:     line.PayerID.String(),
			Description: req.Description,
			Status:      domain.PaymentStatusPending,
			RecipientID: user.ID.String(),
			CreatedAt:   req.PaymentDate,
		})
	}

	response.Success(w, AllocationPreviewResponse{
		Items: items,
		Total: allocation.Total(lineItems),
	})
}

// writeServiceError maps business error codes to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if errors.As(err, &businessErr) {
		switch businessErr.Code {
		case customError.ErrCodeInvalidUserID,
			customError.ErrCodeInvalidAmount,
			customError.ErrCodeEmptyBatch,
			customError.ErrCodeInvalidAllocation:
			response.BadRequest(w, businessErr.Message, businessErr.Err)
			return
		case customError.ErrCodeUserNotFound,
			customError.ErrCodePaymentNotFound:
			response.NotFound(w, businessErr.Message)
			return
		case customError.ErrCodeNotHouseMember:
			response.Forbidden(w, businessErr.Message)
			return
		case customError.ErrCodeSessionNotFound:
			response.Unauthorized(w, businessErr.Message)
			return
		}
	}

	response.InternalServerError(w, "Internal server error", err)
}
