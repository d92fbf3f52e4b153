package buffer

// Cell represents a single display cell in a Buffer.
type Cell struct {
	// Content is the grapheme cluster displayed in this cell.
	// An empty Content indicates a tombstone cell (the trailing half
	// of a double-width character).
	Content string

	// Width is the number of display columns the cell occupies.
	// 0 for tombstone cells, 1 for normal characters, 2 for wide
	// CJK/emoji characters.
	Width int
}

// BlankCell returns a single-width space cell.
func BlankCell() Cell {
	return Cell{Content: " ", Width: 1}
}

// Tombstone returns the continuation cell that trails a wide character.
func Tombstone() Cell {
	return Cell{}
}

// IsTombstone returns true if this is the trailing cell of a wide character.
func (c Cell) IsTombstone() bool {
	return c.Width == 0 && c.Content == ""
}

// IsBlank returns true if the cell displays nothing but empty space.
func (c Cell) IsBlank() bool {
	return c.Content == " " || c.Content == ""
}

// RuneWidth returns the display width of a single rune: 0 for control
// characters, 2 for wide CJK and emoji characters, 1 otherwise.
func RuneWidth(r rune) int {
	// C0 and C1 control ranges occupy no columns
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return 0
	}
	if isWideRune(r) {
		return 2
	}
	return 1
}

// isWideRune checks if a rune is a wide (double-width) character.
func isWideRune(r rune) bool {
	// Hiragana and Katakana
	if r >= 0x3040 && r <= 0x30FF {
		return true
	}
	// CJK Unified Ideographs
	if r >= 0x4E00 && r <= 0x9FFF {
		return true
	}
	// Hangul Syllables
	if r >= 0xAC00 && r <= 0xD7AF {
		return true
	}
	// CJK Compatibility Ideographs
	if r >= 0xF900 && r <= 0xFAFF {
		return true
	}
	// Fullwidth Forms
	if r >= 0xFF01 && r <= 0xFF60 {
		return true
	}
	// Miscellaneous symbols and dingbats
	if r >= 0x2600 && r <= 0x27BF {
		return true
	}
	// Mahjong, dominoes, playing cards
	if r >= 0x1F000 && r <= 0x1F02F {
		return true
	}
	// Common emoji blocks
	if r >= 0x1F300 && r <= 0x1F9FF {
		return true
	}
	// Symbols and pictographs extended
	if r >= 0x1FA70 && r <= 0x1FAFF {
		return true
	}
	return false
}

// TextWidth returns the display width of a string: the sum of the
// per-rune widths of its contents.
func TextWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
