package game

import (
	"github.com/domino14/reversi/board"
)

// directions a line of discs can run in from a placed disc.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flankedInDirection returns how many opponent discs would be flipped in a
// single direction if c placed a disc at (row, col).
func flankedInDirection(b *board.GameBoard, row, col, dr, dc int, c board.Color) int {
	opp := c.Opponent()
	r, k := row+dr, col+dc
	n := 0
	for b.PosExists(r, k) && b.Get(r, k) == opp {
		r += dr
		k += dc
		n++
	}
	if n == 0 || !b.PosExists(r, k) || b.Get(r, k) != c {
		return 0
	}
	return n
}

// isLegal returns true if c may place a disc at (row, col).
func isLegal(b *board.GameBoard, row, col int, c board.Color) bool {
	if !b.PosExists(row, col) || b.Get(row, col) != board.Empty {
		return false
	}
	for _, d := range directions {
		if flankedInDirection(b, row, col, d[0], d[1], c) > 0 {
			return true
		}
	}
	return false
}

// hasLegalMove returns true if c has at least one legal placement.
func hasLegalMove(b *board.GameBoard, c board.Color) bool {
	for i := 0; i < board.BoardDim; i++ {
		for j := 0; j < board.BoardDim; j++ {
			if isLegal(b, i, j, c) {
				return true
			}
		}
	}
	return false
}

// countLegalMoves returns the number of legal placements for c.
func countLegalMoves(b *board.GameBoard, c board.Color) int {
	n := 0
	for i := 0; i < board.BoardDim; i++ {
		for j := 0; j < board.BoardDim; j++ {
			if isLegal(b, i, j, c) {
				n++
			}
		}
	}
	return n
}

// place puts a disc for c at (row, col) and flips every flanked line.
// It returns the number of discs flipped. The caller checks legality.
func place(b *board.GameBoard, row, col int, c board.Color) int {
	flipped := 0
	for _, d := range directions {
		n := flankedInDirection(b, row, col, d[0], d[1], c)
		for i := 1; i <= n; i++ {
			b.Set(row+i*d[0], col+i*d[1], c)
		}
		flipped += n
	}
	b.Set(row, col, c)
	return flipped
}
