package rigService

import (
	"AnatomyOverlay/internal/api/rig"
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/pkg/response"
	rigPkg "AnatomyOverlay/pkg/rig"
	"AnatomyOverlay/pkg/selection"
	websocketPkg "AnatomyOverlay/pkg/websocket"
	"errors"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrSessionClosed = errors.New("rig session is closed")

// Sender delivers one server message to the connected view.
type Sender func(msg interface{}) error

// Session is the server side of one connected view. Handle* methods return an
// error only when the view can no longer be written to.
type Session interface {
	HandleText(message []byte) error
	HandleFrame(frame []byte) error
	Hovered() string
	Close()
}

type session struct {
	log       *logrus.Logger
	svc       *rigService
	ctx       context.Context
	cancel    context.CancelFunc
	tracker   *selection.Tracker
	setHover  func(string)
	send      Sender
	closeOnce sync.Once

	mu       sync.Mutex
	viewport entity.Viewport
	detector websocketPkg.DetectorSession

	writeMu sync.Mutex
	closed  bool
}

func (s *rigService) NewSession(ctx context.Context, send Sender) Session {
	ctx, cancel := context.WithCancel(ctx)
	tracker := selection.New()
	return &session{
		log:      s.log,
		svc:      s,
		ctx:      ctx,
		cancel:   cancel,
		tracker:  tracker,
		setHover: tracker.HoverSetter(),
		send:     send,
		viewport: s.viewport,
	}
}

func (ss *session) write(msg interface{}) error {
	ss.writeMu.Lock()
	defer ss.writeMu.Unlock()

	if ss.closed {
		return ErrSessionClosed
	}
	return ss.send(msg)
}

func (ss *session) writeError(err error) error {
	return ss.write(rig.ErrorMessage{Type: rig.MessageError, Error: errorText(err)})
}

func errorText(err error) string {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Err.Error()
	}
	return err.Error()
}

func (ss *session) HandleText(message []byte) error {
	var msg rig.ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		ss.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Debug("Malformed rig stream message")
		return ss.writeError(rig.ErrInvalidFrame)
	}

	switch msg.Type {
	case rig.MessageFrame:
		if msg.Frame == nil {
			return ss.writeError(rig.ErrInvalidFrame)
		}
		return ss.evaluate(*msg.Frame)

	case rig.MessageHover:
		ss.setHover(msg.Bone)
		return ss.write(rig.HoverMessage{Type: rig.MessageHover, Bone: ss.Hovered()})

	case rig.MessageLeave:
		ss.setHover("")
		return ss.write(rig.HoverMessage{Type: rig.MessageHover, Bone: ""})

	case rig.MessageClick:
		name := strings.TrimSpace(msg.Bone)
		if name == "" {
			name = ss.Hovered()
		}
		if !ss.tracker.Click(name) {
			return nil
		}
		go ss.describe(name)
		return nil

	case rig.MessageViewport:
		if msg.Viewport == nil {
			return ss.writeError(rig.ErrInvalidViewport)
		}
		return ss.setViewport(*msg.Viewport)

	default:
		return ss.writeError(rig.ErrUnknownMessage)
	}
}

func (ss *session) Hovered() string {
	name, _ := ss.tracker.Hovered()
	return name
}

func (ss *session) setViewport(vp entity.Viewport) error {
	vp = ss.svc.merge(vp)
	if err := rigPkg.ValidateViewport(vp); err != nil {
		return ss.writeError(rig.ErrInvalidViewport)
	}

	ss.mu.Lock()
	ss.viewport = vp
	ss.mu.Unlock()

	return ss.write(rig.ViewportMessage{Type: rig.MessageViewport, Viewport: vp})
}

func (ss *session) currentViewport() entity.Viewport {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.viewport
}

func (ss *session) evaluate(snap entity.LandmarkSnapshot) error {
	frame, err := ss.svc.Evaluate(snap, ss.currentViewport())
	if err != nil {
		return ss.writeError(err)
	}
	return ss.write(rig.RigMessage{Type: rig.MessageRig, Rig: frame})
}

// describe runs off the read loop. Its result is dropped once the session
// has been closed.
func (ss *session) describe(name string) {
	if ss.svc.describer == nil {
		_ = ss.writeError(rig.ErrDescriptionFailed)
		return
	}

	resp, err := ss.svc.describer.Describe(ss.ctx, name)
	if ss.ctx.Err() != nil {
		return
	}

	if err != nil {
		ss.log.WithFields(logrus.Fields{
			"bone":  name,
			"error": err.Error(),
		}).Warn("Failed to describe clicked bone")
		_ = ss.writeError(err)
		return
	}

	boneName := resp.BoneName
	if boneName == "" {
		boneName = name
	}
	_ = ss.write(rig.DescriptionMessage{
		Type:        rig.MessageDescription,
		Description: resp.Description,
		BoneName:    boneName,
	})
}

func (ss *session) HandleFrame(frame []byte) error {
	if ss.svc.detector == nil {
		return ss.writeError(rig.ErrDetectorUnavailable)
	}

	det, err := ss.openDetector()
	if err != nil {
		ss.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to open landmark detector session")
		return ss.writeError(rig.ErrDetectorUnavailable)
	}

	snap, err := det.Detect(frame)
	if err != nil {
		ss.dropDetector(det)
		ss.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Landmark detection failed")
		return ss.writeError(rig.ErrDetectorFailed)
	}

	return ss.evaluate(*snap)
}

// openDetector dials lazily so that views that never stream camera frames
// do not hold a detector connection.
func (ss *session) openDetector() (websocketPkg.DetectorSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.detector != nil {
		return ss.detector, nil
	}
	if ss.ctx.Err() != nil {
		return nil, ErrSessionClosed
	}

	det, err := ss.svc.detector.Open(ss.ctx)
	if err != nil {
		return nil, err
	}
	ss.detector = det
	return det, nil
}

// dropDetector forgets a failed detector session; the next frame dials again.
func (ss *session) dropDetector(det websocketPkg.DetectorSession) {
	ss.mu.Lock()
	if ss.detector == det {
		ss.detector = nil
	}
	ss.mu.Unlock()
	det.Close()
}

func (ss *session) Close() {
	ss.closeOnce.Do(func() {
		ss.cancel()

		ss.writeMu.Lock()
		ss.closed = true
		ss.writeMu.Unlock()

		ss.mu.Lock()
		det := ss.detector
		ss.detector = nil
		ss.mu.Unlock()

		if det != nil {
			det.Close()
		}
	})
}
