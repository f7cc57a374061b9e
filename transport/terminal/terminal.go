// Package terminal plays a local game in a shell: two players share the keyboard.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const help = "cells are numbered 0-8 row by row, r restarts, q quits"

type Game struct {
	logger *slog.Logger
	engine *tictactoe.Engine
	out    *termenv.Output
}

// New - renders to w using the colour profile detected for it.
func New(logger *slog.Logger, w io.Writer, opts ...termenv.OutputOption) *Game {
	return &Game{
		logger: logger.With("component", "terminal"),
		engine: tictactoe.NewEngine(),
		out:    termenv.NewOutput(w, opts...),
	}
}

// Run - reads commands from r until q or end of input.
func (that *Game) Run(r io.Reader) error {
	that.println(help)
	that.render()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())

		switch command {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "restart":
			that.engine.Reset()
		default:
			that.move(command)
		}

		that.render()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Game) move(command string) {
	cell, err := strconv.Atoi(command)
	if err != nil {
		that.println("unknown command, " + help)
		return
	}

	accepted, err := that.engine.AttemptMove(cell)
	if errors.Is(err, apperror.ErrInvalidCell) {
		that.println("pick a cell between 0 and 8")
		return
	}

	if !accepted {
		that.logger.Debug("move ignored", "cell", cell, "status", that.engine.StatusText())
	}
}

func (that *Game) render() {
	board := that.engine.Board()
	line, won := that.engine.WinningLine()

	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := range 3 {
			cell := row*3 + col
			if col > 0 {
				sb.WriteString("|")
			}

			sb.WriteString(that.cell(cell, board[cell], won && inLine(line, cell)))
		}

		sb.WriteString("\n")
	}

	sb.WriteString(that.out.String(that.engine.StatusText()).Bold().String())
	sb.WriteString("\n")

	that.println(sb.String())
}

func (that *Game) cell(index int, mark entity.Mark, highlight bool) string {
	if mark == entity.EmptyCell {
		return that.out.String(fmt.Sprintf(" %d ", index)).Faint().String()
	}

	style := that.out.String(fmt.Sprintf(" %s ", mark))
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color("4"))
	case entity.PlayerO:
		style = style.Foreground(that.out.Color("1"))
	}

	if highlight {
		style = style.Reverse().Bold()
	}

	return style.String()
}

func inLine(line entity.Line, cell int) bool {
	return line[0] == cell || line[1] == cell || line[2] == cell
}

func (that *Game) println(s string) {
	if _, err := fmt.Fprintln(that.out, s); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
