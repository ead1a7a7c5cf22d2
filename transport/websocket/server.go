package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"libdb.so/hserve"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
	"github.com/rocketscienceinc/tictaclose-backend/pkg/handlers"
)

type gameManager interface {
	GetGame(id string) (tictactoe.View, error)
	Click(id string, x, y int) (tictactoe.View, bool, error)
	Subscribe(ctx context.Context, id string) (<-chan tictactoe.View, func(), error)
}

type handlerFunc func(gameID string, message *Message, conn *connection) error

type Server struct {
	logger   *slog.Logger
	games    gameManager
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameManager) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			// the renderer may be served from another origin
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionState] = server.handleState
	server.handlers[ActionClick] = server.handleClick

	return server
}

// Handler returns the routes of the WebSocket server.
func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/ping", handlers.PingHandler)
	r.Get("/ws/{id}", that.upgradeToWebSocket)

	return r
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	if err := hserve.ListenAndServe(ctx, ":"+port, that.Handler()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and streams the game until either side leaves.
func (that *Server) upgradeToWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	log := that.logger.With("method", "upgradeToWebSocket", "gameID", gameID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// subscribe before reading the state so no change falls in between
	updates, unsubscribe, err := that.games.Subscribe(ctx, gameID)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			handlers.WriteError(that.logger, w, http.StatusNotFound, apperror.ErrGameNotFound.Error())
			return
		}

		log.Error("failed to subscribe", "error", err)
		handlers.WriteError(that.logger, w, http.StatusGone, err.Error())
		return
	}
	defer unsubscribe()

	view, err := that.games.GetGame(gameID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		handlers.WriteError(that.logger, w, http.StatusGone, err.Error())
		return
	}

	socket, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer socket.Close()

	socket.SetReadLimit(maxMessageSize)

	conn := &connection{socket: socket}

	log.Info("WebSocket connection established")

	if err = conn.sendState(view); err != nil {
		log.Error("failed to send state", "error", err)
		return
	}

	go that.pushUpdates(conn, updates)

	if err = that.handleMessages(gameID, conn); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

// pushUpdates forwards every new view to the client. A closed feed ends the connection.
func (that *Server) pushUpdates(conn *connection, updates <-chan tictactoe.View) {
	log := that.logger.With("method", "pushUpdates")

	for view := range updates {
		if err := conn.sendState(view); err != nil {
			log.Debug("failed to push state", "error", err)
			break
		}
	}

	_ = conn.socket.Close()
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(gameID string, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "gameID", gameID)

	for {
		_, data, err := conn.socket.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			if err = conn.sendError("malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			if err = conn.sendError("unknown action " + message.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(gameID, &message, conn); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

func (that *Server) handleState(gameID string, _ *Message, conn *connection) error {
	view, err := that.games.GetGame(gameID)
	if err != nil {
		return conn.sendError(err.Error())
	}

	return conn.sendState(view)
}

// handleClick forwards the click. Accepted clicks are answered through the update feed.
func (that *Server) handleClick(gameID string, message *Message, conn *connection) error {
	log := that.logger.With("method", "handleClick", "gameID", gameID)

	var payload ClickPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		log.Debug("failed to unmarshal click", "error", err)
		return conn.sendError("invalid click payload")
	}

	_, accepted, err := that.games.Click(gameID, payload.X, payload.Y)
	if err != nil {
		return conn.sendError(err.Error())
	}

	if !accepted {
		log.Debug("click ignored", "x", payload.X, "y", payload.Y)
	}

	return nil
}
