package rigService

import (
	"AnatomyOverlay/internal/api/rig"
	"AnatomyOverlay/internal/entity"
	rigPkg "AnatomyOverlay/pkg/rig"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultAspect = 16.0 / 9.0

// ViewportFromEnv reads RIG_DEPTH_MODE, RIG_FOV_DEGREES and
// RIG_CAMERA_DISTANCE. Unset keys keep the projection defaults.
func ViewportFromEnv() (entity.Viewport, error) {
	vp := entity.Viewport{Aspect: defaultAspect}

	if mode := strings.ToLower(strings.TrimSpace(os.Getenv("RIG_DEPTH_MODE"))); mode != "" {
		vp.Depth = entity.DepthMode(mode)
	}

	var err error
	if vp.FOVDegrees, err = envFloat("RIG_FOV_DEGREES"); err != nil {
		return entity.Viewport{}, err
	}
	if vp.CameraDistance, err = envFloat("RIG_CAMERA_DISTANCE"); err != nil {
		return entity.Viewport{}, err
	}

	vp = rigPkg.WithDefaults(vp)
	if err := rigPkg.ValidateViewport(vp); err != nil {
		return entity.Viewport{}, fmt.Errorf("rig viewport from environment: %w", err)
	}
	return vp, nil
}

func envFloat(key string) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func (s *rigService) DefaultViewport() entity.Viewport {
	return s.viewport
}

func (s *rigService) Bones() []rig.BoneResponse {
	specs := rigPkg.Catalog()
	bones := make([]rig.BoneResponse, 0, len(specs))
	for _, spec := range specs {
		bones = append(bones, rig.BoneResponse{
			ID:        spec.ID(),
			Name:      spec.Name,
			Part:      spec.Part,
			Side:      spec.Side,
			Kind:      spec.Kind,
			Primitive: spec.Primitive,
			Radius:    spec.Radius,
		})
	}
	return bones
}

// merge fills the fields a client left out from the configured defaults.
// Aspect is never defaulted since only the client knows its canvas.
func (s *rigService) merge(vp entity.Viewport) entity.Viewport {
	if vp.FOVDegrees == 0 {
		vp.FOVDegrees = s.viewport.FOVDegrees
	}
	if vp.CameraDistance == 0 {
		vp.CameraDistance = s.viewport.CameraDistance
	}
	if vp.Depth == "" {
		vp.Depth = s.viewport.Depth
		if vp.DepthScale == 0 {
			vp.DepthScale = s.viewport.DepthScale
		}
		if vp.DepthPlane == 0 {
			vp.DepthPlane = s.viewport.DepthPlane
		}
	}
	return rigPkg.WithDefaults(vp)
}

func (s *rigService) Evaluate(snap entity.LandmarkSnapshot, vp entity.Viewport) (entity.RigFrame, error) {
	vp = s.merge(vp)
	if err := rigPkg.ValidateViewport(vp); err != nil {
		s.log.WithFields(logrus.Fields{
			"frame_id": snap.FrameID,
			"aspect":   vp.Aspect,
			"depth":    vp.Depth,
		}).Debug("Rejected viewport")
		return entity.RigFrame{}, rig.ErrInvalidViewport
	}

	return rigPkg.Evaluate(snap, vp), nil
}

func (s *rigService) DetectedParts(snap entity.LandmarkSnapshot) []string {
	return rigPkg.DetectParts(snap)
}
