// Package cgp reads and writes single-line Othello positions, in the
// spirit of the crossword game CGP format:
//
//	8/8/8/3OX3/3XO3/8/8/8 X
//
// Rows are separated by slashes; X is black, O is white, and a number is
// that many empty squares. The last field is the side to move.
package cgp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

var (
	ErrBadCGP  = errors.New("badly formatted position")
	ErrBadSide = errors.New("side to move must be X or O")
)

// ParseCGP returns an instantiated Game from the given position string.
func ParseCGP(cgpstr string) (*game.Game, error) {
	fields := strings.Fields(cgpstr)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: must have 2 space-separated fields", ErrBadCGP)
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != board.BoardDim {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadCGP, board.BoardDim, len(rows))
	}
	var b board.GameBoard
	for i, r := range rows {
		colors, err := rowToColors(r)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrBadCGP, i+1, err.Error())
		}
		for j, c := range colors {
			b.Set(i, j, c)
		}
	}
	var onturn board.Color
	switch fields[1] {
	case "X", "x":
		onturn = board.Black
	case "O", "o":
		onturn = board.White
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadSide, fields[1])
	}
	return game.NewFromBoard(b, onturn), nil
}

func rowToColors(row string) ([]board.Color, error) {
	colors := make([]board.Color, 0, board.BoardDim)
	for _, ch := range row {
		if ch >= '1' && ch <= '8' {
			n, _ := strconv.Atoi(string(ch))
			for k := 0; k < n; k++ {
				colors = append(colors, board.Empty)
			}
		} else {
			c, err := board.ColorFromRune(ch)
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
		}
		if len(colors) > board.BoardDim {
			return nil, fmt.Errorf("more than %d squares", board.BoardDim)
		}
	}
	if len(colors) != board.BoardDim {
		return nil, fmt.Errorf("expected %d squares, got %d", board.BoardDim, len(colors))
	}
	return colors, nil
}

// ToCGP writes g in the format ParseCGP reads.
func ToCGP(g *game.Game) string {
	b := g.Board()
	rows := make([]string, board.BoardDim)
	for i := 0; i < board.BoardDim; i++ {
		var sb strings.Builder
		empties := 0
		for j := 0; j < board.BoardDim; j++ {
			c := b.Get(i, j)
			if c == board.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(c.DisplayString())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		rows[i] = sb.String()
	}
	side := "X"
	if g.PlayerOnTurn() == board.White {
		side = "O"
	}
	return strings.Join(rows, "/") + " " + side
}
