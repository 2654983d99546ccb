package rigHandler

import (
	"AnatomyOverlay/internal/api/rig"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/handlerUtil"
	"AnatomyOverlay/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const frameTimeout = 5 * time.Second

func (h *RigHandler) ListBones(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, rig.BoneListResponse{
		Bones: h.rigService.Bones(),
	})
}

func (h *RigHandler) EvaluateFrame(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), frameTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req rig.FrameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, rig.ErrInvalidFrame, ctx.Path(), "parse_request_body")
	}
	if req.Frame == nil {
		return errHandler.Handle(ctx, requestID, rig.ErrInvalidFrame, ctx.Path(), "validate_frame")
	}

	frame, err := h.rigService.Evaluate(*req.Frame, req.Viewport)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "evaluate_frame")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"frame_id":   frame.FrameID,
		"parts":      len(frame.DetectedParts),
	}).Debug("Evaluated rig frame")

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, frame)
	}
}

func (h *RigHandler) DetectedParts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req rig.DetectedPartsRequest
	if err := ctx.BodyParser(&req); err != nil || req.Frame == nil {
		return errHandler.Handle(ctx, requestID, rig.ErrInvalidFrame, ctx.Path(), "parse_request_body")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, rig.DetectedPartsResponse{
		Parts: h.rigService.DetectedParts(*req.Frame),
	})
}
