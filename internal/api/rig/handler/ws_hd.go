package rigHandler

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const (
	maxReadTimeout = 60 * time.Second
	writeTimeout   = 10 * time.Second
)

func (h *RigHandler) handleRigWebSocket(c *websocket.Conn) {
	h.log.Info("Rig WebSocket client connected")
	defer h.log.Info("Rig WebSocket client disconnected")

	// The session serialises writes, so the sender may touch the connection
	// from the click goroutines as well.
	session := h.rigService.NewSession(context.Background(), func(msg interface{}) error {
		if err := c.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return err
		}
		if err := c.WriteJSON(msg); err != nil {
			return err
		}
		return c.SetWriteDeadline(time.Time{})
	})
	defer session.Close()

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Rig WebSocket error: %v", err)
			} else {
				h.log.Info("Rig WebSocket connection closed")
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			err = session.HandleText(message)
		case websocket.BinaryMessage:
			err = session.HandleFrame(message)
		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		if err != nil {
			h.log.Errorf("Error writing rig message: %v", err)
			break
		}
	}
}
