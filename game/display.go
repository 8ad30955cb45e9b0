package game

import (
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
)

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the disc counts and side to move beside it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	lines := strings.Split(bt, "\n")
	hpadding := 3

	addText := func(row int, text string) {
		if row < len(lines) {
			lines[row] = lines[row] + strings.Repeat(" ", hpadding) + text
		}
	}
	addText(3, fmt.Sprintf("X (black): %d", g.PointsFor(board.Black)))
	addText(4, fmt.Sprintf("O (white): %d", g.PointsFor(board.White)))
	if g.playing {
		addText(6, fmt.Sprintf("%s (%s) to move", g.onturn, g.onturn.DisplayString()))
	} else {
		w := g.Winner()
		if w == board.Empty {
			addText(6, "Game over: draw")
		} else {
			addText(6, fmt.Sprintf("Game over: %s wins by %d", w, g.SpreadFor(w)))
		}
	}
	return strings.Join(lines, "\n")
}
