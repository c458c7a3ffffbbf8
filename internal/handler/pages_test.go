package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/internal/handler"
	"github.com/MohammadDaleen/HomeEase/tests/mocks"
)

func TestPaymentsPage_RedirectsWithoutSession(t *testing.T) {
	resolver := &mocks.MockSessionResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)

	pageHandler := handler.NewPageHandler(resolver, &mocks.MockPaymentService{})
	req := httptest.NewRequest("GET", "/payments", nil)
	w := httptest.NewRecorder()

	pageHandler.PaymentsPage(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth?redirectUrl=%2Fpayments", w.Header().Get("Location"))
}

func TestPaymentsPage_RedirectsWithoutHouse(t *testing.T) {
	user := &domain.User{ID: uuid.New()} // no house association

	resolver := &mocks.MockSessionResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything).Return(user, nil)

	pageHandler := handler.NewPageHandler(resolver, &mocks.MockPaymentService{})
	req := httptest.NewRequest("GET", "/payments", nil)
	w := httptest.NewRecorder()

	pageHandler.PaymentsPage(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))
}

func TestPaymentsPage_GroupsByDay(t *testing.T) {
	houseID := uuid.New()
	user := sessionUser(houseID)

	resolver := &mocks.MockSessionResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything).Return(user, nil)

	day := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	payments := []*domain.Payment{
		{ID: uuid.New(), RecipientID: user.ID, Amount: decimal.NewFromFloat(33.33), CreatedAt: day},
		{ID: uuid.New(), RecipientID: user.ID, Amount: decimal.NewFromFloat(33.33), CreatedAt: day.Add(time.Hour)},
	}
	members := []*domain.UserSummary{user.Summary()}

	mockService := &mocks.MockPaymentService{}
	mockService.On("List", mock.Anything, user.ID).Return(payments, nil)
	mockService.On("HouseMembers", mock.Anything, houseID).Return(members, nil)

	pageHandler := handler.NewPageHandler(resolver, mockService)
	req := httptest.NewRequest("GET", "/payments", nil)
	w := httptest.NewRecorder()

	pageHandler.PaymentsPage(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data domain.PaymentsPageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data.ByDay, 1)
	bucket := envelope.Data.ByDay["12 March 2024"]
	require.Len(t, bucket, 2)
	for _, view := range bucket {
		assert.Equal(t, user.ID, view.UserID)
	}
	require.Len(t, envelope.Data.Users, 1)

	mockService.AssertExpectations(t)
	resolver.AssertExpectations(t)
}
