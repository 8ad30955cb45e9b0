// Package board holds the 8x8 Othello grid. It knows nothing about the
// rules of the game; see the game package for legality and flipping.
package board

const (
	// BoardDim is the number of rows (and columns) on the board.
	BoardDim = 8
)

// Color is the content of a single square.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent and returns Empty.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// DisplayString is the single-character representation used in board
// printouts and position strings.
func (c Color) DisplayString() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	}
	return "."
}

// GameBoard is a value type; assigning it copies all squares.
type GameBoard struct {
	squares [BoardDim][BoardDim]Color
}

// StandardStart returns a board with the four centre discs placed.
func StandardStart() GameBoard {
	var g GameBoard
	mid := BoardDim / 2
	g.squares[mid-1][mid-1], g.squares[mid][mid] = White, White
	g.squares[mid-1][mid], g.squares[mid][mid-1] = Black, Black
	return g
}

func (g *GameBoard) Dim() int {
	return BoardDim
}

// PosExists returns true if (row, col) is on the board.
func (g *GameBoard) PosExists(row int, col int) bool {
	return row >= 0 && row < BoardDim && col >= 0 && col < BoardDim
}

func (g *GameBoard) Get(row int, col int) Color {
	return g.squares[row][col]
}

func (g *GameBoard) Set(row int, col int, c Color) {
	g.squares[row][col] = c
}

// Count returns the number of squares holding c.
func (g *GameBoard) Count(c Color) int {
	n := 0
	for i := 0; i < BoardDim; i++ {
		for j := 0; j < BoardDim; j++ {
			if g.squares[i][j] == c {
				n++
			}
		}
	}
	return n
}

// Copy returns an independent copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	newg := *g
	return &newg
}

