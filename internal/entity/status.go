package entity

import "fmt"

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// Status - state of a game: exactly one of InProgress, Won or Draw.
type Status interface {
	Kind() string
	Text() string
	Terminal() bool

	sealed()
}

type InProgress struct {
	Turn Mark
}

type Won struct {
	Player Mark
	Line   Line
}

type Draw struct{}

func (that InProgress) Kind() string   { return StatusInProgress }
func (that InProgress) Terminal() bool { return false }
func (that InProgress) Text() string   { return fmt.Sprintf("%s's turn", that.Turn) }
func (InProgress) sealed()             {}

func (that Won) Kind() string   { return StatusWon }
func (that Won) Terminal() bool { return true }
func (that Won) Text() string   { return fmt.Sprintf("%s wins!", that.Player) }
func (Won) sealed()             {}

func (that Draw) Kind() string   { return StatusDraw }
func (that Draw) Terminal() bool { return true }
func (that Draw) Text() string   { return "It's a draw!" }
func (Draw) sealed()             {}
