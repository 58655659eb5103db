package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dkoleva/trackflow/internal/adapters/http/dto"
	"github.com/dkoleva/trackflow/internal/domain"
)

const (
	headerTenantID = "X-Tenant-ID"
	headerUserID   = "X-User-ID"
)

// tenantIDKey is the context key for storing the authenticated tenant ID.
type tenantIDKey struct{}

// userIDKey is the context key for storing the authenticated user ID.
type userIDKey struct{}

// WithAuthContext returns a new context carrying the tenant and user
// identities for the current request.
func WithAuthContext(ctx context.Context, tenantID, userID string) context.Context {
	ctx = context.WithValue(ctx, tenantIDKey{}, tenantID)
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return ctx
}

// TenantIDFromContext extracts the tenant ID from the context.
// Returns an empty string if no tenant ID is stored.
func TenantIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(tenantIDKey{}).(string); ok {
		return id
	}
	return ""
}

// UserIDFromContext extracts the acting user's ID from the context.
// Returns an empty string if no user ID is stored.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// AuthContext returns middleware that reads the tenant and user identity
// headers set by the upstream gateway and stores them in the request
// context. Requests missing either header are rejected with a 403 problem
// response before reaching any handler; everything below this middleware
// can assume both identities are present.
func AuthContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID := strings.TrimSpace(r.Header.Get(headerTenantID))
			userID := strings.TrimSpace(r.Header.Get(headerUserID))
			if tenantID == "" || userID == "" {
				dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
				return
			}
			ctx := WithAuthContext(r.Context(), tenantID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
