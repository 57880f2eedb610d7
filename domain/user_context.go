package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserContext represents the authenticated user context for requests.
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is valid and not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil && uc.ExpiresAt.After(time.Now())
}

type contextKey string

const UserContextKey contextKey = "user_context"

// SetUserContext stores the authenticated user in the request context.
func SetUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, uc)
}

// GetUserContext retrieves the authenticated user from the request context.
func GetUserContext(ctx context.Context) (*UserContext, error) {
	uc, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || uc == nil {
		return nil, ErrInvalidUserContext
	}
	return uc, nil
}
