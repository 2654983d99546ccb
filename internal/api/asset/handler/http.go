package assetHandler

import (
	assetService "AnatomyOverlay/internal/api/asset/service"
	"AnatomyOverlay/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssetHandler struct {
	log          *logrus.Logger
	middleware   middleware.Middleware
	assetService assetService.IAssetService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	as assetService.IAssetService,
) *AssetHandler {
	return &AssetHandler{
		log:          log,
		middleware:   middleware,
		assetService: as,
	}
}

func (h *AssetHandler) Start(srv fiber.Router) {
	models := srv.Group("/assets/models")
	models.Get("", h.ListModels)
	models.Get("/:name", h.middleware.NewRateLimiter, h.ModelURL)
}
