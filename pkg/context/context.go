package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

// RequestIDKey matches the key pkg/log reads when tagging entries.
const RequestIDKey = "request_id"

const adminKey ctxKey = "admin"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func WithAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminKey, email)
}

// GetAdmin returns the email of the administrator that issued the request.
func GetAdmin(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminKey).(string)
	return email, ok && email != ""
}

func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	requestID, ok := c.Locals("X-Request-ID").(string)
	if !ok || requestID == "" {
		requestID = c.Get("X-Request-ID")

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(ctx, requestID)
}
