package websocketPkg

import (
	"AnatomyOverlay/internal/entity"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var ErrDetectorClosed = errors.New("landmark detector session is closed")

type IDetector interface {
	Open(ctx context.Context) (DetectorSession, error)
}

// DetectorSession exchanges one camera frame for one landmark snapshot at a time.
type DetectorSession interface {
	Detect(frame []byte) (*entity.LandmarkSnapshot, error)
	Close()
}

type detectorClient struct {
	url          string
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewDetector() (IDetector, error) {
	url := os.Getenv("LANDMARK_DETECTOR_URL")
	if url == "" {
		return nil, errors.New("LANDMARK_DETECTOR_URL is not set")
	}
	return NewDetectorWithURL(url), nil
}

func NewDetectorWithURL(url string) IDetector {
	return &detectorClient{
		url:          url,
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}
}

func (c *detectorClient) Open(ctx context.Context) (DetectorSession, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.url, err)
	}

	s := &detectorSession{
		conn:         conn,
		readTimeout:  c.readTimeout,
		writeTimeout: c.writeTimeout,
		done:         make(chan struct{}),
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			logrus.WithError(err).Debug("Error sending pong to landmark detector")
		}
		return nil
	})

	go s.keepAlive(c.pingInterval)
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	logrus.WithField("url", c.url).Debug("Opened landmark detector session")

	return s, nil
}

type detectorSession struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	readTimeout  time.Duration
	writeTimeout time.Duration
	closeOnce    sync.Once
	done         chan struct{}
}

func (s *detectorSession) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *detectorSession) Detect(frame []byte) (*entity.LandmarkSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed() {
		return nil, ErrDetectorClosed
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		s.Close()
		return nil, fmt.Errorf("error sending frame: %w", err)
	}

	_ = s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	_, message, err := s.conn.ReadMessage()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("error reading landmarks: %w", err)
	}

	_ = s.conn.SetReadDeadline(time.Time{})
	_ = s.conn.SetWriteDeadline(time.Time{})

	var snapshot entity.LandmarkSnapshot
	if err := jsoniter.Unmarshal(message, &snapshot); err != nil {
		return nil, fmt.Errorf("error unmarshaling landmarks: %w", err)
	}

	return &snapshot, nil
}

func (s *detectorSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(s.writeTimeout),
		)
		_ = s.conn.Close()
	})
}

func (s *detectorSession) keepAlive(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			err := s.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(s.writeTimeout))
			if err != nil {
				logrus.WithError(err).Warn("Ping failed for landmark detector, closing session")
				s.Close()
				return
			}
		}
	}
}
