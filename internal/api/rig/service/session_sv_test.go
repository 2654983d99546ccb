package rigService

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/internal/api/rig"
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/pkg/response"
	rigPkg "AnatomyOverlay/pkg/rig"
	websocketPkg "AnatomyOverlay/pkg/websocket"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type recorder struct {
	mu   sync.Mutex
	msgs []interface{}
	ch   chan interface{}
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan interface{}, 32)}
}

func (r *recorder) send(msg interface{}) error {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
	r.ch <- msg
	return nil
}

func (r *recorder) next(t *testing.T) interface{} {
	t.Helper()
	select {
	case msg := <-r.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a session message")
		return nil
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

type fakeDescriber struct {
	mu      sync.Mutex
	calls   []string
	err     error
	release chan struct{}
	ctxErr  chan error
}

func (d *fakeDescriber) Describe(ctx context.Context, structure string) (anatomy.AnatomyResponse, error) {
	d.mu.Lock()
	d.calls = append(d.calls, structure)
	d.mu.Unlock()

	if d.release != nil {
		<-d.release
		d.ctxErr <- ctx.Err()
	}
	if d.err != nil {
		return anatomy.AnatomyResponse{}, d.err
	}
	return anatomy.AnatomyResponse{Description: "about " + structure, BoneName: structure}, nil
}

func (d *fakeDescriber) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

type fakeDetector struct {
	mu       sync.Mutex
	opens    int
	sessions []*fakeDetectorSession
	failNext bool
}

func (d *fakeDetector) Open(_ context.Context) (websocketPkg.DetectorSession, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opens++
	s := &fakeDetectorSession{fail: d.failNext}
	d.failNext = false
	d.sessions = append(d.sessions, s)
	return s, nil
}

type fakeDetectorSession struct {
	mu     sync.Mutex
	fail   bool
	closed bool
}

func (s *fakeDetectorSession) Detect(frame []byte) (*entity.LandmarkSnapshot, error) {
	if s.fail {
		return nil, websocketPkg.ErrDetectorClosed
	}
	return &entity.LandmarkSnapshot{FrameID: string(frame)}, nil
}

func (s *fakeDetectorSession) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *fakeDetectorSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testService(det websocketPkg.IDetector, describer Describer) *rigService {
	vp := rigPkg.WithDefaults(entity.Viewport{Aspect: 16.0 / 9.0})
	return New(testLogger(), det, describer, vp).(*rigService)
}

func TestSessionFrame(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	if err := ss.HandleText([]byte(`{"type":"frame","frame":{"frameId":"42"}}`)); err != nil {
		t.Fatalf("HandleText: %v", err)
	}

	msg, ok := rec.next(t).(rig.RigMessage)
	if !ok {
		t.Fatalf("expected rig message, got %#v", rec.msgs)
	}
	if msg.Type != rig.MessageRig || msg.Rig.FrameID != "42" {
		t.Errorf("unexpected rig message %+v", msg)
	}
	if got, want := len(msg.Rig.Bones), len(rigPkg.Catalog()); got != want {
		t.Errorf("bones = %d, want %d", got, want)
	}
}

func TestSessionProtocolErrors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"malformed", `{"type":`, "Invalid landmark frame"},
		{"frame without body", `{"type":"frame"}`, "Invalid landmark frame"},
		{"unknown type", `{"type":"teleport"}`, "Unknown message type"},
		{"viewport without body", `{"type":"viewport"}`, rig.ErrInvalidViewport.(*response.Error).Err.Error()},
		{"negative aspect", `{"type":"viewport","viewport":{"aspect":-1}}`, rig.ErrInvalidViewport.(*response.Error).Err.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			ss := testService(nil, nil).NewSession(context.Background(), rec.send)
			defer ss.Close()

			if err := ss.HandleText([]byte(tt.message)); err != nil {
				t.Fatalf("HandleText: %v", err)
			}
			msg, ok := rec.next(t).(rig.ErrorMessage)
			if !ok || msg.Error != tt.want {
				t.Errorf("got %#v, want error %q", msg, tt.want)
			}
		})
	}
}

func TestSessionViewport(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	if err := ss.HandleText([]byte(`{"type":"viewport","viewport":{"aspect":1.5,"depth":"scaled"}}`)); err != nil {
		t.Fatalf("HandleText: %v", err)
	}
	msg, ok := rec.next(t).(rig.ViewportMessage)
	if !ok {
		t.Fatalf("expected viewport message, got %#v", rec.msgs)
	}
	if msg.Viewport.Aspect != 1.5 || msg.Viewport.Depth != entity.DepthScaled {
		t.Errorf("unexpected viewport %+v", msg.Viewport)
	}
	if msg.Viewport.FOVDegrees != rigPkg.DefaultFOVDegrees || msg.Viewport.DepthScale != rigPkg.DefaultDepthScale {
		t.Errorf("defaults not applied: %+v", msg.Viewport)
	}
}

func TestSessionHover(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"hover","bone":"Hamate"}`))
	if msg := rec.next(t).(rig.HoverMessage); msg.Bone != "Hamate" {
		t.Errorf("hover bone = %q", msg.Bone)
	}
	if ss.Hovered() != "Hamate" {
		t.Errorf("Hovered() = %q", ss.Hovered())
	}

	_ = ss.HandleText([]byte(`{"type":"hover","bone":"Lunate"}`))
	if msg := rec.next(t).(rig.HoverMessage); msg.Bone != "Lunate" {
		t.Errorf("latest hover should win, got %q", msg.Bone)
	}

	_ = ss.HandleText([]byte(`{"type":"leave"}`))
	if msg := rec.next(t).(rig.HoverMessage); msg.Bone != "" {
		t.Errorf("leave should clear the hover, got %q", msg.Bone)
	}
	if ss.Hovered() != "" {
		t.Errorf("Hovered() after leave = %q", ss.Hovered())
	}
}

func TestSessionClickCooldown(t *testing.T) {
	describer := &fakeDescriber{}
	rec := newRecorder()
	ss := testService(nil, describer).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"click","bone":"Hamate"}`))
	msg, ok := rec.next(t).(rig.DescriptionMessage)
	if !ok {
		t.Fatalf("expected description message, got %#v", rec.msgs)
	}
	if msg.BoneName != "Hamate" || msg.Description != "about Hamate" {
		t.Errorf("unexpected description %+v", msg)
	}

	_ = ss.HandleText([]byte(`{"type":"click","bone":"Lunate"}`))
	time.Sleep(50 * time.Millisecond)

	if describer.callCount() != 1 {
		t.Errorf("click inside the cooldown reached the describer: %v", describer.calls)
	}
	if rec.count() != 1 {
		t.Errorf("dropped click produced a message: %#v", rec.msgs)
	}
}

func TestSessionClickUsesHoveredBone(t *testing.T) {
	describer := &fakeDescriber{}
	rec := newRecorder()
	ss := testService(nil, describer).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"hover","bone":"Capitate"}`))
	rec.next(t)

	_ = ss.HandleText([]byte(`{"type":"click"}`))
	if msg := rec.next(t).(rig.DescriptionMessage); msg.BoneName != "Capitate" {
		t.Errorf("BoneName = %q, want Capitate", msg.BoneName)
	}
}

func TestSessionClickWithoutBoneIsIgnored(t *testing.T) {
	describer := &fakeDescriber{}
	rec := newRecorder()
	ss := testService(nil, describer).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"click"}`))
	time.Sleep(20 * time.Millisecond)

	if describer.callCount() != 0 || rec.count() != 0 {
		t.Errorf("click with nothing hovered should do nothing")
	}
}

func TestSessionClickError(t *testing.T) {
	describer := &fakeDescriber{err: anatomy.ErrAnatomyUpstream}
	rec := newRecorder()
	ss := testService(nil, describer).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"click","bone":"Hamate"}`))
	msg, ok := rec.next(t).(rig.ErrorMessage)
	if !ok || msg.Error != "Failed to fetch anatomy information" {
		t.Errorf("got %#v", msg)
	}
}

func TestSessionClickWithoutDescriber(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleText([]byte(`{"type":"click","bone":"Hamate"}`))
	if _, ok := rec.next(t).(rig.ErrorMessage); !ok {
		t.Errorf("expected an error message, got %#v", rec.msgs)
	}
}

func TestSessionDiscardsDescriptionAfterClose(t *testing.T) {
	describer := &fakeDescriber{
		release: make(chan struct{}),
		ctxErr:  make(chan error, 1),
	}
	rec := newRecorder()
	ss := testService(nil, describer).NewSession(context.Background(), rec.send)

	_ = ss.HandleText([]byte(`{"type":"click","bone":"Hamate"}`))
	for describer.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	ss.Close()
	close(describer.release)

	if err := <-describer.ctxErr; !errors.Is(err, context.Canceled) {
		t.Errorf("describer context error = %v, want canceled", err)
	}
	time.Sleep(20 * time.Millisecond)

	if rec.count() != 0 {
		t.Errorf("description delivered after close: %#v", rec.msgs)
	}
}

func TestSessionWriteAfterClose(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	ss.Close()
	ss.Close()

	err := ss.HandleText([]byte(`{"type":"leave"}`))
	if !errors.Is(err, ErrSessionClosed) {
		t.Errorf("err = %v, want ErrSessionClosed", err)
	}
}

func TestSessionCameraFrameWithoutDetector(t *testing.T) {
	rec := newRecorder()
	ss := testService(nil, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleFrame([]byte{1, 2, 3})
	msg, ok := rec.next(t).(rig.ErrorMessage)
	if !ok || msg.Error != "Landmark detector is not configured" {
		t.Errorf("got %#v", msg)
	}
}

func TestSessionCameraFrames(t *testing.T) {
	det := &fakeDetector{}
	rec := newRecorder()
	ss := testService(det, nil).NewSession(context.Background(), rec.send)

	_ = ss.HandleFrame([]byte("f1"))
	if msg := rec.next(t).(rig.RigMessage); msg.Rig.FrameID != "f1" {
		t.Errorf("FrameID = %q", msg.Rig.FrameID)
	}
	_ = ss.HandleFrame([]byte("f2"))
	rec.next(t)

	if det.opens != 1 {
		t.Errorf("detector opened %d times, want 1", det.opens)
	}

	ss.Close()
	if !det.sessions[0].isClosed() {
		t.Error("closing the view should release the detector session")
	}
}

func TestSessionReopensFailedDetector(t *testing.T) {
	det := &fakeDetector{failNext: true}
	rec := newRecorder()
	ss := testService(det, nil).NewSession(context.Background(), rec.send)
	defer ss.Close()

	_ = ss.HandleFrame([]byte("f1"))
	if msg, ok := rec.next(t).(rig.ErrorMessage); !ok || msg.Error != "Landmark detection failed" {
		t.Fatalf("got %#v", msg)
	}
	if !det.sessions[0].isClosed() {
		t.Error("failed detector session should be closed")
	}

	_ = ss.HandleFrame([]byte("f2"))
	if _, ok := rec.next(t).(rig.RigMessage); !ok {
		t.Fatalf("expected rig message after reopening, got %#v", rec.msgs)
	}
	if det.opens != 2 {
		t.Errorf("opens = %d, want 2", det.opens)
	}
}
