package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - keeps one engine per browser session.
// Calls for the same session are serialised, different sessions run in parallel.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	locks    *sessionLocks

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    newSessionLocks(),

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// NewSession - starts a fresh game under a new session id.
func (that *GameManager) NewSession(ctx context.Context) (*entity.Game, error) {
	id := that.newID()

	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.save(ctx, id, tictactoe.NewEngine())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", id)

	return game, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return nil, apperror.ErrSessionIDMissing
	}

	unlock := that.locks.lock(id)
	defer unlock()

	game, _, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return game, nil
}

// GetOrCreateSession - resumes a live session, or starts a new one when id is empty or expired.
func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return that.NewSession(ctx)
	}

	game, err := that.GetSession(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.logger.Debug("session not found, creating a new one", "sessionID", id)

		return that.NewSession(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return game, nil
}

// MakeMove - applies a move to the session's game.
// An ignored move (taken cell, finished game) is not an error and reports false.
func (that *GameManager) MakeMove(ctx context.Context, id string, cell int) (*entity.Game, bool, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", id, "cell", cell)

	if id == "" {
		return nil, false, apperror.ErrSessionIDMissing
	}

	unlock := that.locks.lock(id)
	defer unlock()

	stored, engine, err := that.load(ctx, id)
	if err != nil {
		return nil, false, err
	}

	mark := engine.ActivePlayer()

	accepted, err := engine.AttemptMove(cell)
	if err != nil {
		return nil, false, fmt.Errorf("failed make turn: %w", err)
	}

	if !accepted {
		log.Debug("move ignored", "status", engine.StatusText())

		return stored, false, nil
	}

	game, err := that.save(ctx, id, engine)
	if err != nil {
		return nil, false, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("move accepted", "mark", mark)

	if game.IsFinished() {
		log.Info("game finished", "status", game.StatusText)
	}

	return game, true, nil
}

// Restart - resets the session's game regardless of its state.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return nil, apperror.ErrSessionIDMissing
	}

	unlock := that.locks.lock(id)
	defer unlock()

	_, engine, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	engine.Reset()

	game, err := that.save(ctx, id, engine)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	that.logger.Info("game restarted", "sessionID", id)

	return game, nil
}

func (that *GameManager) EndSession(ctx context.Context, id string) error {
	if id == "" {
		return apperror.ErrSessionIDMissing
	}

	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

func (that *GameManager) load(ctx context.Context, id string) (*entity.Game, *tictactoe.Engine, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	engine, err := tictactoe.Restore(game)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return game, engine, nil
}

func (that *GameManager) save(ctx context.Context, id string, engine *tictactoe.Engine) (*entity.Game, error) {
	game := engine.Snapshot(id)
	game.UpdatedAt = that.now().UTC()

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}
