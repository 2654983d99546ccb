package anatomy

import (
	"AnatomyOverlay/pkg/response"
	"net/http"
)

var (
	ErrStructureRequired    = response.NewError(http.StatusBadRequest, "Structure name is required")
	ErrAnatomyUpstream      = response.NewError(http.StatusBadGateway, "Failed to fetch anatomy information")
	ErrOverrideNotFound     = response.NewError(http.StatusNotFound, "Description override not found")
	ErrStorageUnavailable   = response.NewError(http.StatusServiceUnavailable, "Description storage is not configured")
	ErrPartIDRequired       = response.NewError(http.StatusBadRequest, "Part ID is required")
	ErrPartLookup           = response.NewError(http.StatusInternalServerError, "Failed to fetch bone data")
	ErrPartDocumentNotFound = response.NewError(http.StatusNotFound, "Part document not found")
	ErrMessageRequired      = response.NewError(http.StatusBadRequest, "Message is required")
	ErrChatUnavailable      = response.NewError(http.StatusServiceUnavailable, "Chat backend is not configured")
	ErrChatUpstream         = response.NewError(http.StatusBadGateway, "Failed to get a chat reply")
)
