package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/internal/service"
	"github.com/MohammadDaleen/HomeEase/pkg/response"
)

// SessionResolver resolves the session behind a request, returning a nil
// user when the request carries no valid session
type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*domain.User, error)
}

type PageHandler struct {
	auth    SessionResolver
	service PaymentService
}

func NewPageHandler(auth SessionResolver, svc PaymentService) *PageHandler {
	return &PageHandler{
		auth:    auth,
		service: svc,
	}
}

// PaymentsPage serves the data behind the payments page: the session user's
// payments grouped by day plus the house member list. Without a session it
// redirects to the auth page carrying the originally requested URL; with a
// session but no house it redirects to the profile page.
func (h *PageHandler) PaymentsPage(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Resolve(r.Context(), r)
	if err != nil {
		response.InternalServerError(w, "Failed to resolve session", err)
		return
	}
	if user == nil {
		http.Redirect(w, r, "/auth?redirectUrl="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
		return
	}
	if user.HouseID == nil {
		http.Redirect(w, r, "/profile", http.StatusFound)
		return
	}

	payments, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	users, err := h.service.HouseMembers(r.Context(), *user.HouseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, domain.PaymentsPageResponse{
		ByDay: service.GroupByDay(payments, user.ID),
		Users: users,
	})
}
