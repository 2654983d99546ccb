package rigHandler

import (
	rigService "AnatomyOverlay/internal/api/rig/service"
	"AnatomyOverlay/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type RigHandler struct {
	log        *logrus.Logger
	validator  *validator.Validate
	middleware middleware.Middleware
	rigService rigService.IRigService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	rs rigService.IRigService,
) *RigHandler {
	return &RigHandler{
		log:        log,
		validator:  validator,
		middleware: middleware,
		rigService: rs,
	}
}

func (h *RigHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	rig := srv.Group("/rig")
	rig.Get("/bones", h.ListBones)
	rig.Post("/frame", h.EvaluateFrame)
	rig.Post("/detected-parts", h.DetectedParts)

	rig.Use("/ws", wsMiddleware)
	rig.Get("/ws", websocket.New(h.handleRigWebSocket))
}
