package replay

import (
	"AnatomyOverlay/internal/entity"
	rigPkg "AnatomyOverlay/pkg/rig"
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRun(t *testing.T) {
	input := strings.Join([]string{
		`{"frameId":"1"}`,
		``,
		`not json`,
		`{"frameId":"2","leftHandLandmarks":[]}`,
	}, "\n")

	lines := 0
	rp, err := New(testLogger(), entity.Viewport{Aspect: 16.0 / 9.0}, func() { lines++ })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	summary, err := rp.Run(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Lines != 4 || summary.Frames != 2 || summary.Skipped != 1 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if lines != 4 {
		t.Errorf("progress ticked %d times", lines)
	}

	scanner := bufio.NewScanner(&out)
	var ids []string
	for scanner.Scan() {
		var frame entity.RigFrame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			t.Fatalf("output line is not a frame: %v", err)
		}
		if len(frame.Bones) != len(rigPkg.Catalog()) {
			t.Errorf("frame %s has %d bones", frame.FrameID, len(frame.Bones))
		}
		ids = append(ids, frame.FrameID)
	}
	if strings.Join(ids, ",") != "1,2" {
		t.Errorf("frame ids = %v", ids)
	}
}

func TestNewRejectsInvalidViewport(t *testing.T) {
	if _, err := New(testLogger(), entity.Viewport{}, nil); err == nil {
		t.Error("expected an error for a zero aspect")
	}
	if _, err := New(testLogger(), entity.Viewport{Aspect: 1, Depth: "flat"}, nil); err == nil {
		t.Error("expected an error for an unknown depth mode")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRunStopsOnWriteError(t *testing.T) {
	rp, err := New(testLogger(), entity.Viewport{Aspect: 1}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A frame is larger than the bufio buffer, so the first encode hits the writer.
	_, err = rp.Run(strings.NewReader(`{"frameId":"1"}`), failingWriter{})
	if err == nil {
		t.Error("expected the write failure to be returned")
	}
}

func TestCountLines(t *testing.T) {
	tests := map[string]int{
		"":          0,
		"a":         1,
		"a\n":       1,
		"a\nb":      2,
		"a\nb\n\nc": 4,
	}
	for input, want := range tests {
		got, err := CountLines(strings.NewReader(input))
		if err != nil || got != want {
			t.Errorf("CountLines(%q) = %d, %v; want %d", input, got, err, want)
		}
	}
}
