package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"libdb.so/hserve"

	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
	"github.com/rocketscienceinc/tictaclose-backend/pkg/handlers"
)

type gameManager interface {
	CreateGame() tictactoe.View
	GetGame(id string) (tictactoe.View, error)
	Click(id string, x, y int) (tictactoe.View, bool, error)
	DeleteGame(id string) error
}

// NewRouter wires the REST routes.
func NewRouter(logger *slog.Logger, games gameManager) http.Handler {
	h := &gameHandlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", handlers.PingHandler)
	r.Post("/games", h.create)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.delete)
		r.Post("/clicks", h.click)
	})

	return r
}

// Start - serves handler on port until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	if err := hserve.ListenAndServe(ctx, ":"+port, handler); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
