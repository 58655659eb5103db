package httpclient

import "context"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stashes the inbound request ID so the client forwards it on
// outbound calls as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stashes the correlation ID so the client forwards it on
// outbound calls as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}
