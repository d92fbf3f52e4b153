package buffer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Placement describes where the other buffer is placed relative to the
// receiver in a merge.
type Placement uint8

const (
	// Below stacks the other buffer under the receiver.
	Below Placement = iota

	// Above stacks the other buffer on top of the receiver.
	Above

	// Right joins the other buffer to the right of the receiver.
	Right

	// Left joins the other buffer to the left of the receiver.
	Left
)

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case Below:
		return "below"
	case Above:
		return "above"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Buffer is an immutable 2D grid of display cells. Every row holds
// exactly Width cells; a double-width character occupies two adjacent
// cells, the second being a tombstone. All operations that change
// content return a new Buffer.
type Buffer struct {
	width  int
	height int
	rows   [][]Cell
}

// New creates a buffer from text, inferring dimensions from content.
// Width is the maximum display width over all lines, height the line
// count. Multi-line input is split on newlines; a single trailing
// newline does not produce an extra blank row.
func New(text string) *Buffer {
	lines := splitLines(text)
	width := 0
	for _, line := range lines {
		if w := TextWidth(line); w > width {
			width = w
		}
	}
	return build(lines, width, len(lines))
}

// NewSized creates a buffer with explicit dimensions. Content is
// truncated or space-padded to fit; truncation never splits a wide
// character.
func NewSized(text string, width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := splitLines(text)
	if len(lines) > height {
		lines = lines[:height]
	}
	return build(lines, width, height)
}

// Blank creates a buffer filled with single-width space cells.
func Blank(width, height int) *Buffer {
	return NewSized("", width, height)
}

// splitLines splits text on newlines, dropping the single synthetic
// empty element produced by a trailing newline. Deliberate blank lines
// ("a\n\n") survive as one empty row.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// build lays lines out into a width x height cell grid.
func build(lines []string, width, height int) *Buffer {
	rows := make([][]Cell, height)
	for y := 0; y < height; y++ {
		var line string
		if y < len(lines) {
			line = lines[y]
		}
		rows[y] = buildRow(line, width)
	}
	return &Buffer{width: width, height: height, rows: rows}
}

// buildRow converts one line of text into exactly width cells. Each
// grapheme cluster occupies cells equal to its display width; clusters
// that would overflow the remaining width are dropped entirely.
func buildRow(line string, width int) []Cell {
	row := make([]Cell, 0, width)
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		w := TextWidth(cluster)
		if w == 0 {
			// Control characters occupy no columns
			continue
		}
		if len(row)+w > width {
			break
		}
		row = append(row, Cell{Content: cluster, Width: w})
		for i := 1; i < w; i++ {
			row = append(row, Tombstone())
		}
	}
	for len(row) < width {
		row = append(row, BlankCell())
	}
	return row
}

// Width returns the buffer width in display columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Row returns a copy of the cells in the given row, or nil if the row
// is out of range.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Cell, b.width)
	copy(row, b.rows[y])
	return row
}

// Line returns the text of a single row with tombstone cells omitted.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.rows[y] {
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// ToText returns the buffer content as rows joined by newlines.
// Tombstone cells are omitted, so a wide character contributes a
// single string position.
func (b *Buffer) ToText() string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Merge combines two buffers into a new one. Below/Above stack
// vertically (width = max, height = sum); Right/Left join horizontally
// (height = max, width = sum). Zero-size buffers behave as identity
// operands.
func (b *Buffer) Merge(other *Buffer, placement Placement) *Buffer {
	switch placement {
	case Below:
		return stack(b, other)
	case Above:
		return stack(other, b)
	case Right:
		return join(b, other)
	case Left:
		return join(other, b)
	default:
		return b.clone()
	}
}

// stack places bottom under top: width = max, height = sum.
func stack(top, bottom *Buffer) *Buffer {
	width := max(top.width, bottom.width)
	height := top.height + bottom.height
	rows := make([][]Cell, 0, height)
	for y := 0; y < top.height; y++ {
		rows = append(rows, padRow(top.rows[y], width))
	}
	for y := 0; y < bottom.height; y++ {
		rows = append(rows, padRow(bottom.rows[y], width))
	}
	return &Buffer{width: width, height: height, rows: rows}
}

// join places right after left on each row: width = sum, height = max.
func join(left, right *Buffer) *Buffer {
	width := left.width + right.width
	height := max(left.height, right.height)
	rows := make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, 0, width)
		if y < left.height {
			row = append(row, left.rows[y]...)
		} else {
			row = append(row, blankRow(left.width)...)
		}
		if y < right.height {
			row = append(row, right.rows[y]...)
		} else {
			row = append(row, blankRow(right.width)...)
		}
		rows[y] = row
	}
	return &Buffer{width: width, height: height, rows: rows}
}

// Overlay places other's non-blank cells onto a copy of the receiver
// at the given offset, growing the result if other extends past the
// receiver's edges. Negative offsets are clamped to zero.
func (b *Buffer) Overlay(other *Buffer, x, y int) *Buffer {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	width := max(b.width, x+other.width)
	height := max(b.height, y+other.height)

	rows := make([][]Cell, height)
	for row := 0; row < height; row++ {
		if row < b.height {
			rows[row] = padRow(b.rows[row], width)
		} else {
			rows[row] = blankRow(width)
		}
	}

	for oy := 0; oy < other.height; oy++ {
		for ox := 0; ox < other.width; ox++ {
			cell := other.rows[oy][ox]
			if cell.IsTombstone() || cell.Content == " " {
				continue
			}
			setCell(rows, x+ox, y+oy, cell)
		}
	}

	return &Buffer{width: width, height: height, rows: rows}
}

// setCell places a cell (plus tombstones for wide cells) into rows,
// blanking any wide-character halves the placement orphans.
func setCell(rows [][]Cell, x, y int, cell Cell) {
	row := rows[y]
	for i := 0; i < cell.Width && x+i < len(row); i++ {
		clearWidePair(row, x+i)
	}
	row[x] = cell
	for i := 1; i < cell.Width && x+i < len(row); i++ {
		row[x+i] = Tombstone()
	}
}

// clearWidePair blanks the partner cell of a wide character occupying
// position x, so no detached half or tombstone is ever rendered.
func clearWidePair(row []Cell, x int) {
	c := row[x]
	switch {
	case c.IsTombstone():
		if x > 0 && row[x-1].Width > 1 {
			row[x-1] = BlankCell()
		}
	case c.Width > 1:
		for i := 1; i < c.Width && x+i < len(row); i++ {
			if row[x+i].IsTombstone() {
				row[x+i] = BlankCell()
			}
		}
	}
	row[x] = BlankCell()
}

// padRow returns a copy of row extended with blank cells to width.
func padRow(row []Cell, width int) []Cell {
	out := make([]Cell, 0, width)
	out = append(out, row...)
	for len(out) < width {
		out = append(out, BlankCell())
	}
	return out
}

// blankRow returns a new row of blank cells.
func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = BlankCell()
	}
	return row
}

// clone returns a deep copy of the buffer.
func (b *Buffer) clone() *Buffer {
	rows := make([][]Cell, b.height)
	for y := 0; y < b.height; y++ {
		rows[y] = make([]Cell, b.width)
		copy(rows[y], b.rows[y])
	}
	return &Buffer{width: b.width, height: b.height, rows: rows}
}
