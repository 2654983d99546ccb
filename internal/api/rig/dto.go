package rig

import "AnatomyOverlay/internal/entity"

type FrameRequest struct {
	Frame    *entity.LandmarkSnapshot `json:"frame"`
	Viewport entity.Viewport          `json:"viewport"`
}

type DetectedPartsRequest struct {
	Frame *entity.LandmarkSnapshot `json:"frame"`
}

type DetectedPartsResponse struct {
	Parts []string `json:"parts"`
}

type BoneResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Part      string           `json:"part"`
	Side      entity.Side      `json:"side,omitempty"`
	Kind      entity.BoneKind  `json:"kind"`
	Primitive entity.Primitive `json:"primitive"`
	Radius    float64          `json:"radius,omitempty"`
}

type BoneListResponse struct {
	Bones []BoneResponse `json:"bones"`
}

// Stream message types. Clients send frame, hover, leave, click and
// viewport; the server answers with rig, hover, viewport, description
// and error.
const (
	MessageFrame       = "frame"
	MessageHover       = "hover"
	MessageLeave       = "leave"
	MessageClick       = "click"
	MessageViewport    = "viewport"
	MessageRig         = "rig"
	MessageDescription = "description"
	MessageError       = "error"
)

type ClientMessage struct {
	Type     string                   `json:"type"`
	Frame    *entity.LandmarkSnapshot `json:"frame,omitempty"`
	Viewport *entity.Viewport         `json:"viewport,omitempty"`
	Bone     string                   `json:"bone,omitempty"`
}

type RigMessage struct {
	Type string          `json:"type"`
	Rig  entity.RigFrame `json:"rig"`
}

type HoverMessage struct {
	Type string `json:"type"`
	Bone string `json:"bone"`
}

type ViewportMessage struct {
	Type     string          `json:"type"`
	Viewport entity.Viewport `json:"viewport"`
}

type DescriptionMessage struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	BoneName    string `json:"boneName"`
}

type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
