package rigService

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/internal/api/rig"
	"AnatomyOverlay/internal/entity"
	websocketPkg "AnatomyOverlay/pkg/websocket"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IRigService interface {
	Bones() []rig.BoneResponse
	Evaluate(snap entity.LandmarkSnapshot, vp entity.Viewport) (entity.RigFrame, error)
	DetectedParts(snap entity.LandmarkSnapshot) []string
	DefaultViewport() entity.Viewport
	NewSession(ctx context.Context, send Sender) Session
}

// Describer fetches the text shown when a bone is clicked.
type Describer interface {
	Describe(ctx context.Context, structure string) (anatomy.AnatomyResponse, error)
}

type rigService struct {
	log       *logrus.Logger
	detector  websocketPkg.IDetector
	describer Describer
	viewport  entity.Viewport
}

// New builds the rig service. detector and describer may be nil, in which
// case camera frames and clicks are answered with an error message.
func New(
	log *logrus.Logger,
	detector websocketPkg.IDetector,
	describer Describer,
	viewport entity.Viewport,
) IRigService {
	return &rigService{
		log:       log,
		detector:  detector,
		describer: describer,
		viewport:  viewport,
	}
}
