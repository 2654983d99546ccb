package assetHandler

import (
	"AnatomyOverlay/internal/api/asset"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/handlerUtil"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const storageTimeout = 10 * time.Second

func (h *AssetHandler) ListModels(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), storageTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	models, err := h.assetService.ListModels(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_models")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, asset.ModelListResponse{Models: models})
	}
}

func (h *AssetHandler) ModelURL(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), storageTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, asset.ErrInvalidModelName, ctx.Path(), "decode_model_name")
	}

	resp, err := h.assetService.ModelURL(c, name)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "presign_model")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
