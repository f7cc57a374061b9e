package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	router *mux.Router
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	log := logger.With("component", "rest")
	handlers := newHandlers(log, gameUseCase)

	router := mux.NewRouter()
	router.HandleFunc("/ping", handlers.ping).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", handlers.createSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/current", handlers.currentSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", handlers.getSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", handlers.endSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/moves", handlers.makeMove).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/restart", handlers.restart).Methods(http.MethodPost)

	router.Handle("/tictactoe.html", pageHandler()).Methods(http.MethodGet)
	router.Handle("/", http.RedirectHandler("/tictactoe.html?mode=local", http.StatusFound)).Methods(http.MethodGet)

	return &Server{
		logger: log,
		router: router,
	}
}

// Handle - mounts an extra handler, e.g. the WebSocket endpoint, on the page's origin.
func (that *Server) Handle(path string, handler http.Handler) {
	that.router.Handle(path, handler)
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is cancelled, then waits for in-flight requests.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	shutdownDone := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(shutdownDone)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	})
	defer stop()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		// ListenAndServe returns as soon as Shutdown starts
		<-shutdownDone

		return nil
	}

	return fmt.Errorf("failed to start server: %w", err)
}
