package game

import (
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

// Turn is a single recorded event: a placement or a forced pass.
type Turn struct {
	Player  board.Color
	Move    move.Move
	Flipped int
}

func (t Turn) String() string {
	if t.Move.Action() == move.MoveTypePass {
		return fmt.Sprintf("%s passes", t.Player)
	}
	return fmt.Sprintf("%s %s (%d flipped)", t.Player, t.Move, t.Flipped)
}

// Transcript returns the recorded moves as a single line, e.g.
// "F5 D6 C3 pass D3".
func (g *Game) Transcript() string {
	parts := make([]string, len(g.history))
	for i, t := range g.history {
		parts[i] = t.Move.String()
	}
	return strings.Join(parts, " ")
}
