package rig

import (
	"AnatomyOverlay/pkg/response"
	"net/http"
)

var (
	ErrInvalidViewport     = response.NewError(http.StatusBadRequest, "Viewport aspect, fov and camera distance must be positive")
	ErrInvalidFrame        = response.NewError(http.StatusBadRequest, "Invalid landmark frame")
	ErrDetectorUnavailable = response.NewError(http.StatusServiceUnavailable, "Landmark detector is not configured")
	ErrDetectorFailed      = response.NewError(http.StatusBadGateway, "Landmark detection failed")
	ErrUnknownMessage      = response.NewError(http.StatusBadRequest, "Unknown message type")
	ErrDescriptionFailed   = response.NewError(http.StatusBadGateway, "Failed to fetch anatomy information")
)
