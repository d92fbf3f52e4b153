package canvas

import (
	"github.com/dshills/termcanvas/buffer"
	"github.com/dshills/termcanvas/term"
)

// Renderer paints region buffers at their screen coordinates relative
// to the terminal's saved origin. It holds no state of its own; write
// failures propagate to the caller.
type Renderer struct {
	term *term.Terminal
}

// NewRenderer creates a renderer writing through the given terminal.
func NewRenderer(t *term.Terminal) *Renderer {
	return &Renderer{term: t}
}

// RenderRegion paints a region and flushes the output stream.
func (r *Renderer) RenderRegion(reg *Region) error {
	r.PaintRegion(reg)
	return r.term.Flush()
}

// PaintRegion paints a region without flushing, so the canvas can
// batch several regions into one atomic frame.
func (r *Renderer) PaintRegion(reg *Region) {
	r.paint(reg, reg.RenderBuffer())
}

// PaintBlank paints empty space over a region's full area. Used for
// the final clear when a region is deleted.
func (r *Renderer) PaintBlank(reg *Region) {
	r.paint(reg, buffer.Blank(reg.Width(), reg.Height()))
}

// paint writes each buffer row at the region's coordinates, styled
// with the region's colors.
func (r *Renderer) paint(reg *Region, buf *buffer.Buffer) {
	st := reg.Style()
	for row := 0; row < buf.Height(); row++ {
		r.term.MoveTo(reg.X(), reg.Y()+row)
		r.term.WriteString(st.Render(buf.Line(row)))
	}
}
