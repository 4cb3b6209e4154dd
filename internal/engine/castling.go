package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castle describes the king and rook squares of one castling move.
type castle struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
}

var castles = [2][2]castle{
	chess.White: {
		{kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1},
		{kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1},
	},
	chess.Black: {
		{kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8},
		{kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8},
	},
}

const (
	kingside  = 0
	queenside = 1
)

// canCastle reports whether colour may castle on the given wing: the right
// is held, king and rook stand on their home squares, the squares between
// them are empty, and the king's start, passing and landing squares are not
// attacked.
func canCastle(pos *chess.Position, colour chess.Colour, wing int) bool {
	if wing == kingside && !pos.Castling.Kingside(colour) {
		return false
	}
	if wing == queenside && !pos.Castling.Queenside(colour) {
		return false
	}

	c := castles[colour][wing]
	if pos.PieceAt(c.kingFrom) != chess.MakePiece(colour, chess.King) ||
		pos.PieceAt(c.rookFrom) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	if !isPathClear(pos, c.kingFrom, c.rookFrom) {
		return false
	}

	opponent := colour.Opposite()
	return !IsSquareAttacked(pos, c.kingFrom, opponent) &&
		!IsSquareAttacked(pos, c.rookTo, opponent) &&
		!IsSquareAttacked(pos, c.kingTo, opponent)
}

// castlingMoves appends the castling moves available to the king on from.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	for wing, c := range castles[colour] {
		if from == c.kingFrom && canCastle(pos, colour, wing) {
			moves = append(moves, chess.NewMove(c.kingFrom, c.kingTo))
		}
	}
	return moves
}

// castlingFor returns the castle a king move performs, deciding from the
// board before the move is made. ok is false for an ordinary king move.
func castlingFor(pos *chess.Position, piece chess.Piece, move chess.Move) (castle, bool) {
	if piece.Type != chess.King {
		return castle{}, false
	}
	for wing, c := range castles[piece.Colour] {
		if move.From == c.kingFrom && move.To == c.kingTo && canCastle(pos, piece.Colour, wing) {
			return c, true
		}
	}
	return castle{}, false
}

// IsCastling reports whether move castles in pos.
func IsCastling(pos *chess.Position, move chess.Move) bool {
	_, ok := castlingFor(pos, pos.PieceAt(move.From), move)
	return ok
}

// updateCastlingRights clears the rights lost by moving piece along move:
// both wings when a king moves, one wing when a rook leaves or is captured
// on its home corner.
func updateCastlingRights(rights *chess.CastlingRights, piece chess.Piece, move chess.Move) {
	if piece.Type == chess.King {
		rights.ClearKingside(piece.Colour)
		rights.ClearQueenside(piece.Colour)
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, sq := range [2]chess.Square{move.From, move.To} {
			switch sq {
			case castles[colour][kingside].rookFrom:
				rights.ClearKingside(colour)
			case castles[colour][queenside].rookFrom:
				rights.ClearQueenside(colour)
			}
		}
	}
}
