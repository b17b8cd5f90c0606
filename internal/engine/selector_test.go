package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestSelector_MoveInTwoClicks(t *testing.T) {
	g := engine.NewGameState()
	s := engine.NewSelector(g)

	res, err := s.Select(testutil.MustSquare(t, "e2"))
	require.NoError(t, err)
	testutil.AssertEqual(t, res, engine.SelectResult{Selected: testutil.MustSquare(t, "e2"), Pending: true})
	testutil.AssertEqual(t, s.Targets(), []chess.Square{testutil.MustSquare(t, "e3"), testutil.MustSquare(t, "e4")})

	res, err = s.Select(testutil.MustSquare(t, "e4"))
	require.NoError(t, err)
	testutil.AssertTrue(t, res.Moved)
	testutil.AssertFalse(t, res.Pending)
	testutil.AssertEqual(t, res.Move.Algebraic(), "e2e4")
	testutil.AssertEqual(t, g.SideToMove(), chess.Black)

	_, ok := s.Selected()
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, len(s.Targets()), 0)
}

func TestSelector_Deselect(t *testing.T) {
	g := engine.NewGameState()
	s := engine.NewSelector(g)

	_, err := s.Select(testutil.MustSquare(t, "g1"))
	require.NoError(t, err)
	res, err := s.Select(testutil.MustSquare(t, "g1"))
	require.NoError(t, err)

	testutil.AssertEqual(t, res, engine.SelectResult{})
	testutil.AssertEqual(t, g.Plies(), 0)
}

func TestSelector_IllegalSecondSquareBecomesOrigin(t *testing.T) {
	g := engine.NewGameState()
	s := engine.NewSelector(g)

	_, err := s.Select(testutil.MustSquare(t, "e2"))
	require.NoError(t, err)
	res, err := s.Select(testutil.MustSquare(t, "g1"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, res, engine.SelectResult{Selected: testutil.MustSquare(t, "g1"), Pending: true})
	testutil.AssertEqual(t, g.Plies(), 0)

	// Reselecting from the new origin works.
	res, err = s.Select(testutil.MustSquare(t, "f3"))
	require.NoError(t, err)
	testutil.AssertEqual(t, res.Move.Algebraic(), "g1f3")
}

func TestSelector_OffBoard(t *testing.T) {
	g := engine.NewGameState()
	s := engine.NewSelector(g)

	_, err := s.Select(testutil.MustSquare(t, "e2"))
	require.NoError(t, err)
	res, err := s.Select(chess.Sq(-1, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
	testutil.AssertEqual(t, res.Selected, testutil.MustSquare(t, "e2"), "selection kept")
	testutil.AssertTrue(t, res.Pending)
}

func TestSelector_Reset(t *testing.T) {
	s := engine.NewSelector(engine.NewGameState())
	_, err := s.Select(testutil.MustSquare(t, "b1"))
	require.NoError(t, err)

	s.Reset()
	_, ok := s.Selected()
	testutil.AssertFalse(t, ok)
}

func TestSelector_SpecialMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		from   string
		to     string
		flag   func(m chess.Move) bool
		square string
		want   chess.Piece
	}{
		{
			name:   "en passant",
			fen:    engine.InitialFEN,
			moves:  []string{"e2e4", "a7a6", "e4e5", "d7d5"},
			from:   "e5",
			to:     "d6",
			flag:   func(m chess.Move) bool { return m.EnPassant },
			square: "d5",
			want:   chess.Empty,
		},
		{
			name:   "kingside castle",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:   "e1",
			to:     "g1",
			flag:   func(m chess.Move) bool { return m.Castle },
			square: "f1",
			want:   chess.W(chess.Rook),
		},
		{
			name:   "queenside castle",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from:   "e8",
			to:     "c8",
			flag:   func(m chess.Move) bool { return m.Castle },
			square: "d8",
			want:   chess.B(chess.Rook),
		},
		{
			name:   "promotion",
			fen:    "8/P7/8/8/8/8/8/k6K w - - 0 1",
			from:   "a7",
			to:     "a8",
			flag:   func(m chess.Move) bool { return m.Promotion },
			square: "a8",
			want:   chess.W(chess.Queen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustLoadFEN(t, tt.fen)
			testutil.MustPlay(t, g, tt.moves...)
			s := engine.NewSelector(g)
			to := testutil.MustSquare(t, tt.to)

			_, err := s.Select(testutil.MustSquare(t, tt.from))
			require.NoError(t, err)
			require.Contains(t, s.Targets(), to)

			res, err := s.Select(to)
			require.NoError(t, err)
			require.True(t, res.Moved)
			testutil.AssertEqual(t, res.Move.Algebraic(), tt.from+tt.to)
			testutil.AssertTrue(t, tt.flag(res.Move))
			testutil.AssertEqual(t, g.At(testutil.MustSquare(t, tt.square)), tt.want)
		})
	}
}
