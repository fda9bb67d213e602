package middleware

import "context"

type contextKey string

const requestIDCtxKey contextKey = "request_id"

// WithRequestID stores the request ID in ctx so code below the HTTP layer
// can tag its logs with it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID, or ""
// for contexts that did not come through the HTTP front-end.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}
