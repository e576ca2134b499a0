package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "request_id"

	// requestIDHeader matches middleware.RequestIDKey; duplicated here to
	// keep this package free of an internal/ import.
	requestIDHeader = "X-Request-ID"

	// UnknownRequestID is the fallback when a request carries no ID, so log
	// fields never hold an empty request_id.
	UnknownRequestID = "unknown"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return UnknownRequestID
	}
	return requestID
}

// FromFiberCtx builds a context carrying the request ID the middleware stored
// in Locals, falling back to the inbound header.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(requestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(requestIDHeader)

		if requestID == "" {
			requestID = UnknownRequestID
		}
	}

	return WithRequestID(context.Background(), requestID)
}
