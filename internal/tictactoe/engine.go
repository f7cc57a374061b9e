package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Engine - state of one local game: board, active player and status.
// It is not safe for concurrent use, callers serialise access per session.
type Engine struct {
	board  entity.Board
	active entity.Mark
	status entity.Status
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// Reset - discards all state and returns to the initial position.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.active = entity.PlayerX
	that.status = entity.InProgress{Turn: entity.PlayerX}
}

// AttemptMove - places the active player's mark on cell.
// A move on an occupied cell or after the game is over is ignored and reports false.
// A cell outside the board is rejected with ErrInvalidCell.
func (that *Engine) AttemptMove(cell int) (bool, error) {
	if !entity.InRange(cell) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.canPlace(cell) {
		return false, nil
	}

	that.board[cell] = that.active
	that.status = evaluate(&that.board, that.active)

	if next, ok := that.status.(entity.InProgress); ok {
		that.active = next.Turn
	}

	return true, nil
}

func (that *Engine) canPlace(cell int) bool {
	return !that.status.Terminal() && that.board[cell] == entity.EmptyCell
}

// evaluate - status after mark was placed: win first, then draw, then the other player's turn.
func evaluate(board *entity.Board, mark entity.Mark) entity.Status {
	if line, ok := board.CompletedLine(mark); ok {
		return entity.Won{Player: mark, Line: line}
	}

	if board.IsFull() {
		return entity.Draw{}
	}

	return entity.InProgress{Turn: mark.Opponent()}
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) ActivePlayer() entity.Mark {
	return that.active
}

func (that *Engine) Status() entity.Status {
	return that.status
}

func (that *Engine) StatusText() string {
	return that.status.Text()
}

// WinningLine - the three cells to highlight, only present when the game is won.
func (that *Engine) WinningLine() (entity.Line, bool) {
	won, ok := that.status.(entity.Won)
	if !ok {
		return entity.Line{}, false
	}

	return won.Line, true
}

func (that *Engine) IsFinished() bool {
	return that.status.Terminal()
}
