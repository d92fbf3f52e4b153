// Package buffer provides an immutable 2D character grid with
// Unicode display-width awareness.
//
// A Buffer is a rectangular grid of cells. Each cell holds a grapheme
// cluster and its display width; the trailing half of a double-width
// character is a tombstone cell that is never rendered independently.
// Buffers are immutable after construction: merge and overlay
// operations always produce a new Buffer.
//
// Usage:
//
//	b := buffer.New("foo\nbar")
//	b = b.Merge(buffer.New("baz"), buffer.Below)
//	fmt.Println(b.ToText())
package buffer
