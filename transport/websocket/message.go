package websocket

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	ActionConnect = "connect"
	ActionTurn    = "game:turn"
	ActionRestart = "game:restart"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	SessionID string       `json:"session_id,omitempty"`
	Cell      *int         `json:"cell,omitempty"`
	Game      *entity.Game `json:"game,omitempty"`
	Accepted  *bool        `json:"accepted,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// connection - one client, bound to at most one session.
// Messages of a connection are handled sequentially, so no locking is needed.
type connection struct {
	conn      *websocket.Conn
	sessionID string
}

func (that *connection) send(action string, payload Payload) error {
	if err := that.conn.WriteJSON(Message{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, reason string) error {
	return that.send(action, Payload{Error: reason})
}
