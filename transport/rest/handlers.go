package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const sessionCookie = "user_session"

type gameUseCase interface {
	NewSession(ctx context.Context) (*entity.Game, error)
	GetSession(ctx context.Context, id string) (*entity.Game, error)
	GetOrCreateSession(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, cell int) (*entity.Game, bool, error)
	Restart(ctx context.Context, id string) (*entity.Game, error)
	EndSession(ctx context.Context, id string) error
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type moveResponse struct {
	Game     *entity.Game `json:"game"`
	Accepted bool         `json:"accepted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func newHandlers(logger *slog.Logger, game gameUseCase) *handlers {
	return &handlers{
		logger: logger,
		game:   game,
	}
}

func (that *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.NewSession(r.Context())
	if err != nil {
		that.writeError(w, "createSession", err)
		return
	}

	that.setSessionCookie(w, game.ID)
	that.writeJSON(w, http.StatusCreated, game)
}

// currentSession - resumes the session from the cookie or starts a new one.
func (that *handlers) currentSession(w http.ResponseWriter, r *http.Request) {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		id = cookie.Value
	}

	game, err := that.game.GetOrCreateSession(r.Context(), id)
	if err != nil {
		that.writeError(w, "currentSession", err)
		return
	}

	that.setSessionCookie(w, game.ID)
	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "getSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": 0-8}"})
		return
	}

	game, accepted, err := that.game.MakeMove(r.Context(), mux.Vars(r)["id"], *req.Cell)
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Game: game, Accepted: accepted})
}

func (that *handlers) restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.Restart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "restart", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.game.EndSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, "endSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setSessionCookie - no Expires, the cookie ends with the browser session.
func (that *handlers) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// StatusFromError - maps domain errors to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrSessionIDMissing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}
