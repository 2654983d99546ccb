package entity

// Keypoint is one normalized landmark. X and Y are in [0,1], Z is relative
// depth and Visibility is nil when the detector does not report it.
type Keypoint struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          float64  `json:"z"`
	Visibility *float64 `json:"visibility,omitempty"`
}

// LandmarkSnapshot is a single detection result. Every bone of a frame is
// computed from the same snapshot.
type LandmarkSnapshot struct {
	FrameID   string     `json:"frameId,omitempty"`
	Pose      []Keypoint `json:"poseLandmarks,omitempty"`
	LeftHand  []Keypoint `json:"leftHandLandmarks,omitempty"`
	RightHand []Keypoint `json:"rightHandLandmarks,omitempty"`
	Face      []Keypoint `json:"faceLandmarks,omitempty"`
}

func (s LandmarkSnapshot) Hand(side Side) []Keypoint {
	switch side {
	case SideLeft:
		return s.LeftHand
	case SideRight:
		return s.RightHand
	default:
		return nil
	}
}

type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type DepthMode string

const (
	DepthPinned DepthMode = "pinned"
	DepthScaled DepthMode = "scaled"
)

type Viewport struct {
	Aspect         float64   `json:"aspect"`
	FOVDegrees     float64   `json:"fov,omitempty"`
	CameraDistance float64   `json:"cameraDistance,omitempty"`
	Depth          DepthMode `json:"depth,omitempty"`
	DepthScale     float64   `json:"depthScale,omitempty"`
	DepthPlane     float64   `json:"depthPlane,omitempty"`
}
