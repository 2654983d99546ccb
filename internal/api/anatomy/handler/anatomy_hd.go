package anatomyHandler

import (
	"AnatomyOverlay/internal/api/anatomy"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/handlerUtil"
	jwtPkg "AnatomyOverlay/pkg/jwt"
	"AnatomyOverlay/pkg/log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const generationTimeout = 30 * time.Second

func (h *AnatomyHandler) Describe(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), generationTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req anatomy.AnatomyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, anatomy.ErrStructureRequired, ctx.Path(), "parse_request_body")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"structure":  req.Structure,
	}).Debug("Received structure request")

	resp, err := h.anatomyService.Describe(c, req.Structure)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "describe_structure")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *AnatomyHandler) ListStructures(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, anatomy.StructureListResponse{
		Structures: h.anatomyService.Structures(),
	})
}

func (h *AnatomyHandler) PutOverride(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var req anatomy.OverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	saved, err := h.anatomyService.PutOverride(c, name, req.Description, admin.Email)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "put_override")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, anatomy.OverrideResponse{
			Structure:   saved.Structure,
			Description: saved.Description,
			UpdatedBy:   saved.UpdatedBy,
			UpdatedAt:   saved.UpdatedAt.Format(time.RFC3339),
		})
	}
}

func (h *AnatomyHandler) DeleteOverride(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.anatomyService.DeleteOverride(c, name); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_override")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}
