package equity

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

// Evaluator statically scores a position from the point of view of me.
// Larger is better for me. Implementations must be deterministic and must
// not modify g.
type Evaluator interface {
	Evaluate(g *game.Game, me board.Color) int
}
