package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// stepMoves appends the knight or king moves from sq: each offset that
// lands on an empty or enemy-occupied square.
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [8][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slideMoves appends bishop, rook or queen moves: along each ray the empty
// squares plus the first enemy-occupied square.
func slideMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := pos.PieceAt(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

var (
	bishopDirs = diagonalDirs[:]
	rookDirs   = straightDirs[:]
	queenDirs  = append(append([][2]int{}, diagonalDirs[:]...), straightDirs[:]...)
)

// pieceMoves appends the pseudo-legal moves of the piece on from.
func pieceMoves(pos *chess.Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(pos, from, piece.Colour, moves)
	case chess.Knight:
		return stepMoves(pos, from, piece.Colour, knightOffsets, moves)
	case chess.Bishop:
		return slideMoves(pos, from, piece.Colour, bishopDirs, moves)
	case chess.Rook:
		return slideMoves(pos, from, piece.Colour, rookDirs, moves)
	case chess.Queen:
		return slideMoves(pos, from, piece.Colour, queenDirs, moves)
	case chess.King:
		moves = stepMoves(pos, from, piece.Colour, kingOffsets, moves)
		return castlingMoves(pos, from, piece.Colour, moves)
	}
	return moves
}
