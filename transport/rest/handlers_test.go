package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaclose-backend/internal/notify"
	"github.com/rocketscienceinc/tictaclose-backend/internal/opponent"
	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
	"github.com/rocketscienceinc/tictaclose-backend/internal/usecase"
)

func newTestRouter(t *testing.T) (*usecase.GameManager, http.Handler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, opponent.NewPositional(), notify.NewLogNotifier(logger),
		usecase.Options{OpponentDelay: time.Hour})

	return manager, NewRouter(logger, manager)
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPing(t *testing.T) {
	_, router := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateGame(t *testing.T) {
	manager, router := newTestRouter(t)

	// When: a game is created
	rec := serve(router, http.MethodPost, "/games", "")

	// Then: the new game is returned with the opening move
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[tictactoe.View](t, rec)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "x", view.Cells[0])
	assert.Equal(t, "running", view.Status)
	assert.Equal(t, 1, manager.Len())
}

func TestGetGame(t *testing.T) {
	t.Run("Existing game", func(t *testing.T) {
		manager, router := newTestRouter(t)
		game := manager.CreateGame()

		rec := serve(router, http.MethodGet, "/games/"+game.ID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, game, decode[tictactoe.View](t, rec))
	})

	t.Run("Unknown game", func(t *testing.T) {
		_, router := newTestRouter(t)

		rec := serve(router, http.MethodGet, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, rec.Body.String())
	})
}

func TestClick(t *testing.T) {
	t.Run("Accepted click", func(t *testing.T) {
		manager, router := newTestRouter(t)
		game := manager.CreateGame()

		// When: the human clicks the centre
		rec := serve(router, http.MethodPost, "/games/"+game.ID+"/clicks", `{"x":1,"y":1}`)

		// Then: the move is accepted and the opponent's reply is pending
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[ClickResponse](t, rec)
		assert.True(t, resp.Accepted)
		assert.Equal(t, "o", resp.Game.Cells[4])
		assert.True(t, resp.Game.Paused)
	})

	t.Run("Ignored click", func(t *testing.T) {
		manager, router := newTestRouter(t)
		game := manager.CreateGame()

		// When: the human clicks the opponent's opening cell
		rec := serve(router, http.MethodPost, "/games/"+game.ID+"/clicks", `{"x":0,"y":0}`)

		// Then: the request succeeds but nothing changes
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[ClickResponse](t, rec)
		assert.False(t, resp.Accepted)
		assert.Equal(t, game, resp.Game)
	})

	t.Run("Malformed body", func(t *testing.T) {
		manager, router := newTestRouter(t)
		game := manager.CreateGame()

		rec := serve(router, http.MethodPost, "/games/"+game.ID+"/clicks", `{"x":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown game", func(t *testing.T) {
		_, router := newTestRouter(t)

		rec := serve(router, http.MethodPost, "/games/missing/clicks", `{"x":1,"y":1}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteGame(t *testing.T) {
	manager, router := newTestRouter(t)
	game := manager.CreateGame()

	rec := serve(router, http.MethodDelete, "/games/"+game.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/games/"+game.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
