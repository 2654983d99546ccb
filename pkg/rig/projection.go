// Package rig places procedural bone primitives over tracked body landmarks.
//
// Every function here is pure: a frame is evaluated from one landmark
// snapshot and nothing is carried over between frames.
package rig

import (
	"AnatomyOverlay/internal/entity"
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	VisibilityThreshold = 0.5

	DefaultFOVDegrees     = 75.0
	DefaultCameraDistance = 2.0
	DefaultDepthScale     = -2.0
)

var ErrInvalidViewport = errors.New("viewport aspect, fov and camera distance must be positive")

// Visible reports whether a keypoint may drive geometry. A keypoint without a
// visibility score is trusted.
func Visible(kp entity.Keypoint) bool {
	if kp.Visibility == nil {
		return true
	}
	return *kp.Visibility >= VisibilityThreshold
}

func WithDefaults(vp entity.Viewport) entity.Viewport {
	if vp.FOVDegrees == 0 {
		vp.FOVDegrees = DefaultFOVDegrees
	}
	if vp.CameraDistance == 0 {
		vp.CameraDistance = DefaultCameraDistance
	}
	if vp.Depth == "" {
		vp.Depth = entity.DepthPinned
	}
	if vp.Depth == entity.DepthScaled && vp.DepthScale == 0 {
		vp.DepthScale = DefaultDepthScale
	}
	return vp
}

func ValidateViewport(vp entity.Viewport) error {
	vp = WithDefaults(vp)
	if !(vp.Aspect > 0) || math.IsInf(vp.Aspect, 0) {
		return ErrInvalidViewport
	}
	if !(vp.FOVDegrees > 0 && vp.FOVDegrees < 180) || !(vp.CameraDistance > 0) {
		return ErrInvalidViewport
	}
	switch vp.Depth {
	case entity.DepthPinned, entity.DepthScaled:
		return nil
	default:
		return ErrInvalidViewport
	}
}

// Projector maps normalized landmarks onto the camera-facing plane that sits
// CameraDistance in front of a camera with the given vertical field of view.
type Projector struct {
	width  float64
	height float64
	depth  entity.DepthMode
	scale  float64
	plane  float64
}

func NewProjector(vp entity.Viewport) Projector {
	vp = WithDefaults(vp)
	height := 2 * vp.CameraDistance * math.Tan(mgl64.DegToRad(vp.FOVDegrees)/2)

	return Projector{
		width:  height * vp.Aspect,
		height: height,
		depth:  vp.Depth,
		scale:  vp.DepthScale,
		plane:  vp.DepthPlane,
	}
}

// Extent returns the full width and height of the projection plane.
func (p Projector) Extent() (float64, float64) {
	return p.width, p.height
}

// Project returns false for keypoints below the visibility threshold. The
// zero vector is never used as a stand-in for a missing point.
func (p Projector) Project(kp entity.Keypoint) (mgl64.Vec3, bool) {
	if !Visible(kp) {
		return mgl64.Vec3{}, false
	}

	z := p.plane
	if p.depth == entity.DepthScaled {
		z = kp.Z * p.scale
	}

	return mgl64.Vec3{
		-(kp.X - 0.5) * p.width,
		-(kp.Y - 0.5) * p.height,
		z,
	}, true
}
