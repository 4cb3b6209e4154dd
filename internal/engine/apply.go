package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove returns the position reached by playing move in pos. pos is not
// modified. The moving piece must belong to the side to move; the move is
// otherwise trusted, so callers should take moves from LegalMoves.
func ApplyMove(pos *chess.Position, move chess.Move) (chess.Position, error) {
	piece, err := pos.MustPieceOwnedByMover(move.From)
	if err != nil {
		return chess.Position{}, errors.Wrapf(err, "apply %s", move)
	}
	if !move.To.Valid() {
		return chess.Position{}, errors.Wrapf(errors.ErrOutOfBounds, "apply %s", move)
	}

	colour := pos.ToMove
	captured := pos.PieceAt(move.To)

	// Both decisions use the board before anything moves.
	epVictim := chess.NoSquare
	if piece.Type == chess.Pawn && isEnPassantTarget(pos, move.To, colour) {
		epVictim, _ = move.To.Offset(0, -chess.ColourOffset(colour))
		captured = pos.PieceAt(epVictim)
	}
	c, castling := castlingFor(pos, piece, move)

	next := *pos
	next.SetPieceAt(move.From, chess.NoPiece)
	if epVictim != chess.NoSquare {
		next.SetPieceAt(epVictim, chess.NoPiece)
	}
	if move.IsPromotion() {
		next.SetPieceAt(move.To, chess.MakePiece(colour, move.Promotion))
	} else {
		next.SetPieceAt(move.To, piece)
	}
	if castling {
		next.SetPieceAt(c.rookTo, next.PieceAt(c.rookFrom))
		next.SetPieceAt(c.rookFrom, chess.NoPiece)
	}

	next.EnPassant = chess.NoSquare
	if piece.Type == chess.Pawn && abs(move.To.Rank()-move.From.Rank()) == 2 {
		next.EnPassant, _ = move.From.Offset(0, chess.ColourOffset(colour))
	}

	updateCastlingRights(&next.Castling, piece, move)

	if piece.Type == chess.Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next, nil
}

// IsCapture reports whether move captures a piece in pos, en passant included.
func IsCapture(pos *chess.Position, move chess.Move) bool {
	if !pos.IsEmpty(move.To) {
		return true
	}
	return pos.PieceAt(move.From).Type == chess.Pawn && isEnPassantTarget(pos, move.To, pos.ToMove)
}
