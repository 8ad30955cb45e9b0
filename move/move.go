package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MoveType is a type of move; a disc placement or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

var ErrBadCoords = errors.New("badly formatted coordinates")

// Move is a disc placement at (row, col). It is only meaningful relative to
// the position it was generated for. Moves are values and never change.
type Move struct {
	action MoveType
	row    int
	col    int
}

var reCoords = regexp.MustCompile(`^(?P<col>[A-H])(?P<row>[1-8])$`)

// NewMove creates a placement at (row, col), both 0-indexed.
func NewMove(row, col int) Move {
	return Move{action: MoveTypePlay, row: row, col: col}
}

// PassMove is what a game history records when a side has no legal move.
var PassMove = Move{action: MoveTypePass, row: -1, col: -1}

func (m Move) Action() MoveType {
	return m.action
}

func (m Move) Row() int {
	return m.row
}

func (m Move) Col() int {
	return m.col
}

// IsCorner returns true for the four corner squares.
func (m Move) IsCorner() bool {
	if m.action != MoveTypePlay {
		return false
	}
	return (m.row == 0 || m.row == 7) && (m.col == 0 || m.col == 7)
}

func (m Move) String() string {
	if m.action == MoveTypePass {
		return "pass"
	}
	return ToBoardGameCoords(m.row, m.col)
}

// ToBoardGameCoords turns a 0-indexed row and column into a coordinate
// such as D3 (column letter first, 1-based row).
func ToBoardGameCoords(row int, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// Lower-case input is accepted.
func FromBoardGameCoords(c string) (Move, error) {
	matches := reCoords.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(c)))
	if len(matches) != 3 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	row, _ := strconv.Atoi(matches[2])
	col := int(matches[1][0] - 'A')
	return NewMove(row-1, col), nil
}
