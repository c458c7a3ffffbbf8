package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/MohammadDaleen/HomeEase/internal/config"
	"github.com/MohammadDaleen/HomeEase/internal/domain"
	"github.com/MohammadDaleen/HomeEase/internal/repository"
	"github.com/MohammadDaleen/HomeEase/pkg/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserKey is the context key for the authenticated user.
	UserKey contextKey = "user"
)

// SessionUser extracts the authenticated user from the context.
// Returns nil if the request was not authenticated.
func SessionUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)
	return user
}

// Authenticator resolves session tokens against Redis and loads the
// matching user. Tokens are read from the Authorization header (Bearer) or
// the session_token cookie.
type Authenticator struct {
	redis    *redis.Client
	userRepo repository.UserRepository
	config   *config.Config
}

func NewAuthenticator(redisClient *redis.Client, userRepo repository.UserRepository, cfg *config.Config) *Authenticator {
	return &Authenticator{
		redis:    redisClient,
		userRepo: userRepo,
		config:   cfg,
	}
}

// Resolve looks up the session token and returns the user it belongs to
func (a *Authenticator) Resolve(ctx context.Context, r *http.Request) (*domain.User, error) {
	token := sessionToken(r)
	if token == "" {
		return nil, nil
	}

	rawID, err := a.redis.Get(ctx, a.config.Session.KeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// RequireSession rejects unauthenticated requests with 401 and puts the
// user on the request context otherwise
func (a *Authenticator) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.Resolve(r.Context(), r)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve session", err)
			return
		}
		if user == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireHouseMember rejects requests whose session user is not a member of
// the house named in the route. Must run after RequireSession.
func RequireHouseMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := SessionUser(r.Context())
		if user == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}

		houseID, err := uuid.Parse(mux.Vars(r)["houseId"])
		if err != nil {
			response.BadRequest(w, "Invalid house id", err)
			return
		}

		if !user.BelongsTo(houseID) {
			response.Forbidden(w, "User is not part of this house")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie("session_token")
	if err != nil {
		return ""
	}
	return cookie.Value
}
