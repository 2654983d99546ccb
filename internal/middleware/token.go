package middleware

import (
	contextPkg "AnatomyOverlay/pkg/context"
	jwtPkg "AnatomyOverlay/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

// NewTokenMiddleware admits only operator tokens carrying the admin role.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	fields := logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"path":       ctx.Path(),
		"method":     ctx.Method(),
		"client_ip":  ctx.IP(),
	}

	token, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(fields).WithError(err).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	admin, err := jwtPkg.AdminFromToken(token)
	if err != nil {
		m.log.WithFields(fields).WithError(err).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	ctx.Locals("admin", admin)
	ctx.SetUserContext(contextPkg.WithAdmin(ctx.UserContext(), admin.Email))

	m.log.WithFields(fields).WithField("admin", admin.Email).Debug("Authentication successful")
	return ctx.Next()
}
