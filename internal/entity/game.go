package entity

import "time"

// Game - serialisable snapshot of one local session.
type Game struct {
	ID          string    `json:"id"`
	Board       Board     `json:"board"`
	Turn        Mark      `json:"player_turn"`
	Status      string    `json:"status"`
	Winner      Mark      `json:"winner,omitempty"`
	WinningLine *Line     `json:"winning_line,omitempty"`
	StatusText  string    `json:"status_text"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// IsWinningCell - reports whether cell belongs to the recorded winning line.
func (that *Game) IsWinningCell(cell int) bool {
	if that.WinningLine == nil {
		return false
	}

	for _, idx := range that.WinningLine {
		if idx == cell {
			return true
		}
	}

	return false
}
