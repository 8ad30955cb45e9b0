package board

import (
	"fmt"
	"strings"
)

func (g *GameBoard) ToDisplayText() string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// SetFromPlaintext sets the board from eight rows of eight characters.
// X or B is black, O or W is white, and . or - is an empty square.
// Spaces are ignored so that rows can be written with separators.
func (g *GameBoard) SetFromPlaintext(rows []string) error {
	if len(rows) != BoardDim {
		return fmt.Errorf("expected %d rows, got %d", BoardDim, len(rows))
	}
	var squares [BoardDim][BoardDim]Color
	for i, r := range rows {
		r = strings.ReplaceAll(r, " ", "")
		if len(r) != BoardDim {
			return fmt.Errorf("row %d: expected %d squares, got %d", i+1, BoardDim, len(r))
		}
		for j, ch := range r {
			c, err := ColorFromRune(ch)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			squares[i][j] = c
		}
	}
	g.squares = squares
	return nil
}

// ColorFromRune maps a display character back to a Color.
func ColorFromRune(ch rune) (Color, error) {
	switch ch {
	case 'X', 'x', 'B', 'b':
		return Black, nil
	case 'O', 'o', 'W', 'w':
		return White, nil
	case '.', '-':
		return Empty, nil
	}
	return Empty, fmt.Errorf("unrecognized square %q", ch)
}

// MakeBoard builds a board from plaintext rows and panics on bad input.
// It is meant for tests and fixed positions.
func MakeBoard(rows []string) GameBoard {
	var g GameBoard
	if err := g.SetFromPlaintext(rows); err != nil {
		panic(err)
	}
	return g
}
