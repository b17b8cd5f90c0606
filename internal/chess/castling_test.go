package chess

import "testing"

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
		mask   int
	}{
		{AllCastlingRights(), "KQkq", 15},
		{CastlingRights{}, "-", 0},
		{CastlingRights{WhiteKingside: true, BlackQueenside: true}, "Kq", 9},
		{CastlingRights{WhiteQueenside: true, BlackKingside: true}, "Qk", 6},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assertEqual(t, tt.rights.String(), tt.want)
			assertEqual(t, tt.rights.Mask(), tt.mask)
		})
	}
}

func TestCastlingRightsWithout(t *testing.T) {
	all := AllCastlingRights()

	assertEqual(t, all.WithoutSide(White).String(), "kq")
	assertEqual(t, all.WithoutSide(Black).String(), "KQ")

	tests := []struct {
		side Side
		sq   Square
		want string
	}{
		{White, Sq(7, 7), "Qkq"},
		{White, Sq(7, 0), "Kkq"},
		{Black, Sq(0, 7), "KQq"},
		{Black, Sq(0, 0), "KQk"},
		{White, Sq(0, 7), "KQkq"}, // not a white corner
		{Black, Sq(7, 0), "KQkq"},
		{White, Sq(7, 3), "KQkq"},
	}
	for _, tt := range tests {
		t.Run(tt.side.String()+" "+tt.sq.String(), func(t *testing.T) {
			assertEqual(t, all.WithoutRookCorner(tt.side, tt.sq).String(), tt.want)
		})
	}
	assertEqual(t, all, AllCastlingRights(), "methods return copies")
}

func TestCastlingRightsPerSide(t *testing.T) {
	r := CastlingRights{WhiteKingside: true, BlackQueenside: true}
	assertTrue(t, r.Kingside(White))
	assertFalse(t, r.Queenside(White))
	assertFalse(t, r.Kingside(Black))
	assertTrue(t, r.Queenside(Black))
}
