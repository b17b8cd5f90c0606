package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"start", engine.InitialFEN, nil, "White to move"},
		{"check", engine.InitialFEN, []string{"e2e4", "f7f6", "d1h5"}, "Black to move, in check"},
		{"checkmate", engine.InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, "checkmate, Black wins"},
		{"stalemate", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", nil, "stalemate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustLoadFEN(t, tt.fen)
			testutil.MustPlay(t, g, tt.moves...)
			testutil.AssertEqual(t, Status(g), tt.want)
		})
	}
}

func TestWriteText(t *testing.T) {
	g := testutil.MustLoadFEN(t, "4k3/8/8/8/8/8/8/K7 w - - 0 1")
	var buf bytes.Buffer
	WriteText(&buf, g, TextOptions{FEN: true, LegalMoves: true})

	testutil.AssertEqual(t, buf.String(), "4k3/8/8/8/8/8/8/K7 w - - 0 1\na1a2 a1b1 a1b2\n")
}

func TestGameToJSON(t *testing.T) {
	g := engine.NewGameState()
	testutil.MustPlay(t, g, "e2e4", "d7d5", "e4d5")

	jg, err := GameToJSON(g, engine.InitialFEN)
	require.NoError(t, err)

	testutil.AssertEqual(t, jg.SideToMove, "black")
	testutil.AssertEqual(t, jg.Status, "Black to move")
	testutil.AssertEqual(t, len(jg.Moves), 3)
	testutil.AssertEqual(t, jg.Moves[2], JSONMove{
		Ply:      3,
		Color:    "white",
		UCI:      "e4d5",
		Piece:    "Pawn",
		Captured: "Pawn",
		FEN:      g.FEN(),
	})
	testutil.AssertEqual(t, jg.Moves[0].FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, len(jg.LegalMoves), len(g.LegalMoves()))
}

func TestOutputGameJSON(t *testing.T) {
	g := engine.NewGameState()
	jg, err := GameToJSON(g, engine.InitialFEN)
	require.NoError(t, err)

	res := perft.Result{"e2e4": 20, "d2d4": 20}
	jg.AddPerft(2, res, res)

	var buf bytes.Buffer
	require.NoError(t, OutputGameJSON(jg, &buf))

	var decoded JSONGame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, decoded.Perft.Nodes, uint64(40))
	require.NotNil(t, decoded.Perft.Verified)
	testutil.AssertTrue(t, *decoded.Perft.Verified)
	testutil.AssertContains(t, buf.String(), `"legalMoves": [`)
}

func TestAddPerft_Unverified(t *testing.T) {
	jg := &JSONGame{}
	jg.AddPerft(1, perft.Result{"e2e4": 1}, nil)
	testutil.AssertTrue(t, jg.Perft.Verified == nil)

	jg.AddPerft(1, perft.Result{"e2e4": 1}, perft.Result{"e2e4": 2})
	testutil.AssertFalse(t, *jg.Perft.Verified)
}
