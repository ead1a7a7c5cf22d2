package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
	"github.com/rocketscienceinc/tictaclose-backend/pkg/handlers"
)

type ClickRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ClickResponse struct {
	Accepted bool           `json:"accepted"`
	Game     tictactoe.View `json:"game"`
}

type gameHandlers struct {
	logger *slog.Logger
	games  gameManager
}

func (that *gameHandlers) create(w http.ResponseWriter, _ *http.Request) {
	view := that.games.CreateGame()

	handlers.WriteJSON(that.logger, w, http.StatusCreated, view)
}

func (that *gameHandlers) get(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.GetGame(chi.URLParam(r, "id"))
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	handlers.WriteJSON(that.logger, w, http.StatusOK, view)
}

func (that *gameHandlers) click(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "click")

	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug("failed to decode click", "error", err)
		handlers.WriteError(that.logger, w, http.StatusBadRequest, "invalid click payload")
		return
	}

	view, accepted, err := that.games.Click(chi.URLParam(r, "id"), req.X, req.Y)
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	handlers.WriteJSON(that.logger, w, http.StatusOK, ClickResponse{Accepted: accepted, Game: view})
}

func (that *gameHandlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(chi.URLParam(r, "id")); err != nil {
		that.writeGameError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) writeGameError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		handlers.WriteError(that.logger, w, http.StatusNotFound, apperror.ErrGameNotFound.Error())
		return
	}

	that.logger.Error("request failed", "error", err)
	handlers.WriteError(that.logger, w, http.StatusInternalServerError, "internal error")
}
