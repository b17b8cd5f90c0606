// Package output renders game state for the command line.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FEN        string     `json:"fen"`
	SideToMove string     `json:"sideToMove"`
	Status     string     `json:"status"`
	InCheck    bool       `json:"inCheck,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
	LegalMoves []string   `json:"legalMoves"`
	Perft      *JSONPerft `json:"perft,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion bool   `json:"promotion,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
	FEN       string `json:"fen"` // position after the move
}

// JSONPerft holds perft counts in JSON format.
type JSONPerft struct {
	Depth    int               `json:"depth"`
	Nodes    uint64            `json:"nodes"`
	Divide   map[string]uint64 `json:"divide,omitempty"`
	Verified *bool             `json:"verified,omitempty"`
}

// GameToJSON converts a game to JSON form. initialFEN is the position the
// game started from; the history is replayed on a copy of it to record the
// FEN after every move.
func GameToJSON(g *engine.GameState, initialFEN string) (*JSONGame, error) {
	replay, err := engine.NewGameStateFromFEN(initialFEN)
	if err != nil {
		return nil, err
	}

	history := g.History()
	jg := &JSONGame{
		InitialFEN: initialFEN,
		FEN:        g.FEN(),
		SideToMove: colorName(g.SideToMove()),
		Status:     Status(g),
		InCheck:    g.InCheck(),
		Moves:      make([]JSONMove, 0, len(history)),
		LegalMoves: SortedNotation(g.LegalMoves()),
	}
	for i, m := range history {
		replay.Push(m)
		jg.Moves = append(jg.Moves, convertMove(i+1, m, replay.FEN()))
	}
	return jg, nil
}

// AddPerft attaches perft counts. want is the reference divide, or nil
// when the counts were not verified.
func (jg *JSONGame) AddPerft(depth int, res, want perft.Result) {
	jp := &JSONPerft{Depth: depth, Nodes: res.Total(), Divide: res}
	if want != nil {
		_, err := perft.Compare(res, want)
		verified := err == nil
		jp.Verified = &verified
	}
	jg.Perft = jp
}

// OutputGameJSON writes a single game in indented JSON.
func OutputGameJSON(jg *JSONGame, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

func convertMove(ply int, m chess.Move, fen string) JSONMove {
	jm := JSONMove{
		Ply:       ply,
		Color:     colorName(m.Side()),
		UCI:       m.Algebraic(),
		Piece:     m.Piece.Kind().String(),
		Promotion: m.Promotion,
		EnPassant: m.EnPassant,
		Castle:    m.Castle,
		FEN:       fen,
	}
	if m.IsCapture() {
		jm.Captured = m.Captured.Kind().String()
	}
	return jm
}

func colorName(s chess.Side) string {
	if s == chess.White {
		return "white"
	}
	return "black"
}
