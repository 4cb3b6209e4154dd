package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	fileDir, rankDir := direction(from, to)

	sq, ok := from.Offset(fileDir, rankDir)
	for ok && sq != to {
		if !pos.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(fileDir, rankDir)
	}
	return true
}

// firstOccupied walks the ray from sq (exclusive) and returns the first
// occupied square on it, or NoSquare when the ray runs off the board.
func firstOccupied(pos *chess.Position, sq chess.Square, dir [2]int) chess.Square {
	next, ok := sq.Offset(dir[0], dir[1])
	for ok {
		if !pos.IsEmpty(next) {
			return next
		}
		next, ok = next.Offset(dir[0], dir[1])
	}
	return chess.NoSquare
}

// direction returns the unit (file, rank) step leading from one square
// toward another.
func direction(from, to chess.Square) (fileDir, rankDir int) {
	return unit(to.File() - from.File()), unit(to.Rank() - from.Rank())
}

func unit(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
