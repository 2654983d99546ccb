package asset

import (
	"AnatomyOverlay/pkg/response"
	"net/http"
)

var (
	ErrInvalidModelName  = response.NewError(http.StatusBadRequest, "Model name must be a plain .glb file name")
	ErrModelNotFound     = response.NewError(http.StatusNotFound, "Model not found")
	ErrAssetsUnavailable = response.NewError(http.StatusServiceUnavailable, "Model storage is not configured")
	ErrAssetStorage      = response.NewError(http.StatusBadGateway, "Failed to reach model storage")
)
