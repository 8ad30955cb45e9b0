package player

// DepthForBranching maps the number of legal moves at the root to a search
// depth. The thresholds are fixed; no clock is consulted.
func DepthForBranching(numMoves int) int {
	switch {
	case numMoves >= 1 && numMoves <= 4:
		return 6
	case numMoves >= 5 && numMoves <= 6:
		return 5
	}
	return 4
}
