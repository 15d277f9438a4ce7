package uitest

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Compact is the classic 80x24 terminal.
var Compact = Size{Width: 80, Height: 24}
