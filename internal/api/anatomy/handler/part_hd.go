package anatomyHandler

import (
	"AnatomyOverlay/internal/api/anatomy"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/handlerUtil"
	"AnatomyOverlay/pkg/log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AnatomyHandler) LookupPart(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), generationTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	partID, err := url.PathUnescape(ctx.Params("partId"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, anatomy.ErrPartIDRequired, ctx.Path(), "parse_part_id")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"part_id":    partID,
	}).Debug("Processing part lookup request")

	doc, err := h.anatomyService.LookupPart(c, partID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "lookup_part")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, doc)
	}
}

func (h *AnatomyHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), generationTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req anatomy.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, anatomy.ErrMessageRequired, ctx.Path(), "parse_request_body")
	}

	reply, err := h.anatomyService.Chat(c, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, anatomy.ChatResponse{Reply: reply})
	}
}
