package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Snapshot - serialisable view of the engine for storage and transports.
func (that *Engine) Snapshot(id string) *entity.Game {
	game := &entity.Game{
		ID:         id,
		Board:      that.board,
		Turn:       that.active,
		Status:     that.status.Kind(),
		StatusText: that.status.Text(),
	}

	if won, ok := that.status.(entity.Won); ok {
		line := won.Line
		game.Winner = won.Player
		game.WinningLine = &line
	}

	return game
}

// Restore - rebuilds an engine from a snapshot.
// The status is derived from the board again, a snapshot that disagrees with it is rejected.
func Restore(game *entity.Game) (*Engine, error) {
	for cell, mark := range game.Board {
		if mark != entity.EmptyCell && !mark.IsPlayer() {
			return nil, fmt.Errorf("%w: unknown mark %q in cell %d", apperror.ErrCorruptSnapshot, mark, cell)
		}
	}

	status, active, err := deriveStatus(&game.Board)
	if err != nil {
		return nil, err
	}

	if game.Status != status.Kind() {
		return nil, fmt.Errorf("%w: status %q, board says %q", apperror.ErrCorruptSnapshot, game.Status, status.Kind())
	}

	if game.Turn != active {
		return nil, fmt.Errorf("%w: turn %q, board says %q", apperror.ErrCorruptSnapshot, game.Turn, active)
	}

	return &Engine{
		board:  game.Board,
		active: active,
		status: status,
	}, nil
}

func deriveStatus(board *entity.Board) (entity.Status, entity.Mark, error) {
	diff := board.Count(entity.PlayerX) - board.Count(entity.PlayerO)
	if diff != 0 && diff != 1 {
		return nil, "", fmt.Errorf("%w: X has %d more marks than O", apperror.ErrCorruptSnapshot, diff)
	}

	// the last mover is X when X is ahead, O otherwise
	lastMover := entity.PlayerO
	if diff == 1 {
		lastMover = entity.PlayerX
	}

	if _, ok := board.CompletedLine(lastMover.Opponent()); ok {
		return nil, "", fmt.Errorf("%w: %s won but the game went on", apperror.ErrCorruptSnapshot, lastMover.Opponent())
	}

	status := evaluate(board, lastMover)
	if next, ok := status.(entity.InProgress); ok {
		return status, next.Turn, nil
	}

	return status, lastMover, nil
}
