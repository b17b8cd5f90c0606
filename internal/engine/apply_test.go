package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var undoFENs = map[string]string{
	"Initial":   engine.InitialFEN,
	"Kiwipete":  testutil.KiwipeteFEN,
	"Position3": testutil.Position3FEN,
	"EnPassant": "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"Promotion": "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

func TestInitialPosition(t *testing.T) {
	g := engine.NewGameState()

	testutil.AssertEqual(t, len(g.LegalMoves()), 20)
	testutil.AssertEqual(t, g.SideToMove(), chess.White)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())
	testutil.AssertEqual(t, g.KingSquare(chess.White), testutil.MustSquare(t, "e1"))
	testutil.AssertEqual(t, g.KingSquare(chess.Black), testutil.MustSquare(t, "e8"))
	_, ok := g.EnPassant()
	testutil.AssertFalse(t, ok, "no en passant target at the start")
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
}

func TestUndoRestoresPosition(t *testing.T) {
	for name, fen := range undoFENs {
		t.Run(name, func(t *testing.T) {
			g := testutil.MustLoadFEN(t, fen)
			before := g.Snapshot()

			for _, m := range g.LegalMoves() {
				g.Push(m)
				for _, reply := range g.LegalMoves() {
					mid := g.Snapshot()
					g.Push(reply)
					require.NoError(t, g.UndoMove())
					testutil.AssertEqual(t, g.Snapshot(), mid, "undo %s %s", m, reply)
				}
				require.NoError(t, g.UndoMove())
				testutil.AssertEqual(t, g.Snapshot(), before, "undo %s", m)
			}
			testutil.AssertEqual(t, g.FEN(), fen)
		})
	}
}

func TestLegalMovesLeavesStateUnchanged(t *testing.T) {
	for name, fen := range undoFENs {
		t.Run(name, func(t *testing.T) {
			g := testutil.MustLoadFEN(t, fen)
			before := g.Snapshot()
			first := g.LegalMoves()
			testutil.AssertEqual(t, g.Snapshot(), before)
			testutil.AssertEqual(t, g.LegalMoves(), first)
			testutil.AssertEqual(t, g.Plies(), 0)
		})
	}
}

func TestIllegalMoveRejected(t *testing.T) {
	g := engine.NewGameState()
	before := g.Snapshot()

	_, err := g.MakeMove(testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	var moveErr *chesserrors.MoveError
	require.True(t, errors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.Ply, 1)
	testutil.AssertEqual(t, moveErr.Move, "e2e5")

	testutil.AssertEqual(t, g.Snapshot(), before)
	testutil.AssertEqual(t, g.Plies(), 0)
}

func TestApplyMoveUsesGeneratedFlags(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	// The caller's move does not carry the en passant flag.
	proposed := chess.Move{
		From:     testutil.MustSquare(t, "e5"),
		To:       testutil.MustSquare(t, "d6"),
		Piece:    chess.W(chess.Pawn),
		Captured: chess.B(chess.Pawn),
	}
	require.NoError(t, g.ApplyMove(proposed))

	last, ok := g.LastMove()
	require.True(t, ok)
	testutil.AssertTrue(t, last.EnPassant)
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d5")), chess.Empty)
}

func TestApplyMoveIllegal(t *testing.T) {
	g := engine.NewGameState()
	before := g.Snapshot()

	err := g.ApplyMove(chess.Move{
		From:  testutil.MustSquare(t, "e1"),
		To:    testutil.MustSquare(t, "e2"),
		Piece: chess.W(chess.King),
	})
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, g.Snapshot(), before)
}

func TestMakeMoveOffBoard(t *testing.T) {
	g := engine.NewGameState()
	_, err := g.MakeMove(chess.Sq(6, 4), chess.Sq(8, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
	testutil.AssertEqual(t, g.Plies(), 0)
}

func TestUndoEmptyHistory(t *testing.T) {
	g := engine.NewGameState()
	before := g.Snapshot()
	testutil.AssertErrorIs(t, g.UndoMove(), chesserrors.ErrIllegalState)
	testutil.AssertEqual(t, g.Snapshot(), before)
}

func TestEnPassantCapture(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	ep, ok := g.EnPassant()
	require.True(t, ok)
	testutil.AssertEqual(t, ep, testutil.MustSquare(t, "d6"))

	m, ok := testutil.FindMove(g, "e5d6")
	require.True(t, ok, "e5d6 should be legal")
	testutil.AssertTrue(t, m.EnPassant)
	testutil.AssertEqual(t, m.Captured, chess.B(chess.Pawn))

	before := g.Snapshot()
	g.Push(m)
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d5")), chess.Empty)
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "e5")), chess.Empty)

	// The captured pawn goes back beside the start square, not onto d6.
	require.NoError(t, g.UndoMove())
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d5")), chess.B(chess.Pawn))
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d6")), chess.Empty)
	testutil.AssertEqual(t, g.Snapshot(), before)
}

func TestMakeMoveEnPassant(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	m, err := g.MakeMove(testutil.MustSquare(t, "e5"), testutil.MustSquare(t, "d6"))
	require.NoError(t, err)
	testutil.AssertTrue(t, m.EnPassant)
	testutil.AssertEqual(t, m.Captured, chess.B(chess.Pawn))
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "d5")), chess.Empty)
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3")
}

func TestMakeMoveCastling(t *testing.T) {
	g := testutil.MustLoadFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, g, "e1g1", "e8c8")

	testutil.AssertEqual(t, g.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 2")
}

func TestEnPassantWindowCloses(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")

	_, ok := g.EnPassant()
	testutil.AssertFalse(t, ok)
	_, ok = testutil.FindMove(g, "e5d6")
	testutil.AssertFalse(t, ok, "e5d6 must not be legal one move later")
}

func TestPromotionToQueen(t *testing.T) {
	g := testutil.MustLoadFEN(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")

	m, err := g.MakeMove(testutil.MustSquare(t, "a7"), testutil.MustSquare(t, "a8"))
	require.NoError(t, err)
	testutil.AssertTrue(t, m.Promotion)
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "a8")), chess.W(chess.Queen))

	require.NoError(t, g.UndoMove())
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "a7")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "a8")), chess.Empty)
}

func TestPinnedPieceCannotMove(t *testing.T) {
	g := testutil.MustLoadFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	testutil.AssertEqual(t, len(g.LegalMovesFrom(testutil.MustSquare(t, "e2"))), 0)
	testutil.AssertTrue(t, len(engine.PieceMoves(g, testutil.MustSquare(t, "e2"))) > 0,
		"the bishop still has pseudo-legal moves")
}

func TestKingCannotStepIntoCheck(t *testing.T) {
	g := testutil.MustLoadFEN(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")

	for _, m := range g.LegalMoves() {
		probe := g.Clone()
		probe.Push(m)
		testutil.AssertFalse(t, probe.SquareAttacked(probe.KingSquare(chess.White), chess.Black),
			"%s leaves the king attacked", m)
	}
	_, ok := testutil.FindMove(g, "e1e2")
	testutil.AssertFalse(t, ok)
	_, ok = testutil.FindMove(g, "e1d2")
	testutil.AssertTrue(t, ok, "capturing the rook is legal")
}

func TestFoolsMate(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertTrue(t, g.IsCheckmate())
	testutil.AssertFalse(t, g.IsStalemate())

	require.NoError(t, g.UndoMove())
	testutil.AssertFalse(t, g.IsCheckmate(), "undo clears the result")
}

func TestStalemate(t *testing.T) {
	g := testutil.MustLoadFEN(t, "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")

	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
	testutil.AssertFalse(t, g.InCheck())
	testutil.AssertTrue(t, g.IsStalemate())
	testutil.AssertFalse(t, g.IsCheckmate())
}

func TestHistoryAndNotation(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "e7e5", "g1f3")

	testutil.AssertEqual(t, g.Plies(), 3)
	testutil.AssertEqual(t, g.Notation(), []string{"e2e4", "e7e5", "g1f3"})
	testutil.AssertEqual(t, g.FullmoveNumber(), 2)

	history := g.History()
	history[0] = chess.Move{}
	testutil.AssertEqual(t, g.Notation()[0], "e2e4", "History returns a copy")

	g.Reset()
	testutil.AssertEqual(t, g.Plies(), 0)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
}

func TestClone(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4")

	c := g.Clone()
	testutil.MustPlay(t, c, "e7e5")
	require.NoError(t, c.UndoMove())
	require.NoError(t, c.UndoMove())

	testutil.AssertEqual(t, g.Notation(), []string{"e2e4"})
	testutil.AssertEqual(t, c.Plies(), 0)
	testutil.AssertEqual(t, g.At(testutil.MustSquare(t, "e4")), chess.W(chess.Pawn))
}
