package canvas

import (
	"fmt"
	"io"
)

// Regions is the write-facing façade over canvas state. Every
// mutation enqueues a message for the render goroutine and returns
// immediately; nothing here waits for the change to be applied.
type Regions struct {
	canvas *Canvas
}

// Get returns the current accumulated content of a region.
func (r *Regions) Get(id string) (string, error) {
	reg, err := r.canvas.lookup(id)
	if err != nil {
		return "", err
	}
	return reg.Content(), nil
}

// Set replaces a region's content.
func (r *Regions) Set(id, text string) error {
	return r.canvas.enqueueFor(id, msgUpdate, text)
}

// Append concatenates text to a region's content. This is how
// streaming logs work: unbounded append, bounded visible window.
func (r *Regions) Append(id, text string) error {
	return r.canvas.enqueueFor(id, msgAppend, text)
}

// Clear resets a region's content to empty.
func (r *Regions) Clear(id string) error {
	return r.canvas.enqueueFor(id, msgClear, "")
}

// Delete removes a region. Its screen area is painted blank once and
// any messages still in flight for it are silently dropped.
func (r *Regions) Delete(id string) error {
	return r.canvas.enqueueFor(id, msgDelete, "")
}

// Writer returns an io.Writer that appends everything written to it
// to the region. Handy for wiring a region into log output or an
// io.MultiWriter fan-out.
func (r *Regions) Writer(id string) (io.Writer, error) {
	if _, err := r.canvas.lookup(id); err != nil {
		return nil, err
	}
	return &regionWriter{canvas: r.canvas, id: id}, nil
}

// regionWriter streams appends into a region.
type regionWriter struct {
	canvas *Canvas
	id     string
}

// Write appends p to the region. Writes to a region deleted after the
// writer was obtained are dropped, matching stale-message semantics.
func (w *regionWriter) Write(p []byte) (int, error) {
	_ = w.canvas.enqueueFor(w.id, msgAppend, string(p))
	return len(p), nil
}

// String implements fmt.Stringer for diagnostics.
func (w *regionWriter) String() string {
	return fmt.Sprintf("regionWriter(%s)", w.id)
}
