package middleware

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/dkoleva/trackflow/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey is this package's own context key. httpclient keeps a
// separate one so neither package has to import the other.
type requestIDKey struct{}

// WithRequestID stores the id under both this package's key and the
// httpclient key, so outbound calls pick up X-Request-ID automatically.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext returns the stored request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID tags every request with an X-Request-ID. An incoming header
// value is reused; otherwise a fresh UUID v4 is generated. The id goes into
// the context and onto the response headers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = generateID()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UUID v4 version and variant bits.
const (
	uuidVersion4    = 0x40
	uuidVersionMask = 0x0f
	uuidVariant10   = 0x80
	uuidVariantMask = 0x3f
)

// generateID returns a UUID v4 built from crypto/rand, formatted as
// "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx" with y in 8..b.
func generateID() string {
	var uuid [16]byte
	_, _ = rand.Read(uuid[:])

	uuid[6] = (uuid[6] & uuidVersionMask) | uuidVersion4
	uuid[8] = (uuid[8] & uuidVariantMask) | uuidVariant10

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uuid[0:4], uuid[4:6], uuid[6:8], uuid[8:10], uuid[10:16])
}
