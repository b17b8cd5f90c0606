package config

// OutputConfig holds settings related to what gets printed.
type OutputConfig struct {
	// ShowBoard prints the board diagram
	ShowBoard bool

	// ShowFEN prints the FEN of the position
	ShowFEN bool

	// ListMoves prints the legal moves of the side to move
	ListMoves bool

	// JSONFormat replaces the text output with a JSON report
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
		ShowFEN:   true,
	}
}
