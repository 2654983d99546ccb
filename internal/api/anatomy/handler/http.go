package anatomyHandler

import (
	anatomyService "AnatomyOverlay/internal/api/anatomy/service"
	"AnatomyOverlay/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnatomyHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	anatomyService anatomyService.IAnatomyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	anatomyService anatomyService.IAnatomyService,
) *AnatomyHandler {
	return &AnatomyHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		anatomyService: anatomyService,
	}
}

func (h *AnatomyHandler) Start(srv fiber.Router) {
	anatomy := srv.Group("/anatomy")

	anatomy.Post("", h.middleware.NewRateLimiter, h.Describe)
	anatomy.Get("/structures", h.ListStructures)
	anatomy.Put("/descriptions/:name", h.middleware.NewTokenMiddleware, h.PutOverride)
	anatomy.Delete("/descriptions/:name", h.middleware.NewTokenMiddleware, h.DeleteOverride)

	srv.Get("/hand/bone/:partId", h.middleware.NewRateLimiter, h.LookupPart)
	srv.Post("/chat", h.middleware.NewRateLimiter, h.Chat)
}
