package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
)

const (
	ActionState = "game:state"
	ActionClick = "game:click"
	ActionError = "error"

	writeTimeout = 10 * time.Second
	// clients only send actions and click coordinates
	maxMessageSize = 4096
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ClickPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func newMessage(action string, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return Message{Action: action, Payload: raw}, nil
}

// connection serializes writes; gorilla allows a single concurrent writer.
type connection struct {
	socket *websocket.Conn
	mu     sync.Mutex
}

func (that *connection) send(action string, payload any) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.socket.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.socket.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendState(view tictactoe.View) error {
	return that.send(ActionState, view)
}

func (that *connection) sendError(text string) error {
	return that.send(ActionError, ErrorPayload{Error: text})
}
