package canvas

import (
	"strings"
	"sync"

	"github.com/dshills/termcanvas/buffer"
	"github.com/dshills/termcanvas/style"
)

// Box-drawing characters for bordered regions.
const (
	borderHorizontal  = "─"
	borderVertical    = "│"
	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
)

// Region is a named, positioned viewport on the terminal. It holds
// accumulated raw text and a derived content buffer recomputed on
// every mutation with auto-scroll: when the content has more lines
// than the visible height, only the trailing lines are kept.
//
// Content is only ever mutated by the canvas render goroutine; the
// internal lock exists so producers can read the accumulated content
// concurrently.
type Region struct {
	id     string
	x, y   int
	width  int
	height int
	border bool
	style  style.Style

	mu      sync.RWMutex
	content string
	buf     *buffer.Buffer
}

// RegionOption configures a region at definition time.
type RegionOption func(*Region)

// WithBorder draws a single-line box border around the region. The
// border is part of the region's width and height; regions smaller
// than 2x2 render without one.
func WithBorder() RegionOption {
	return func(r *Region) {
		r.border = true
	}
}

// WithForeground sets the region's foreground color.
func WithForeground(c style.Color) RegionOption {
	return func(r *Region) {
		r.style.Foreground = c
	}
}

// WithBackground sets the region's background color.
func WithBackground(c style.Color) RegionOption {
	return func(r *Region) {
		r.style.Background = c
	}
}

// WithStyle sets the region's full style.
func WithStyle(s style.Style) RegionOption {
	return func(r *Region) {
		r.style = s
	}
}

func newRegion(id string, x, y, width, height int, opts ...RegionOption) *Region {
	r := &Region{
		id:     id,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		style:  style.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// The corner characters alone need two columns and two rows, so a
	// border on anything smaller would paint outside the region.
	if r.border && (r.width < 2 || r.height < 2) {
		r.border = false
	}
	r.buf = buffer.Blank(r.contentWidth(), r.contentHeight())
	return r
}

// ID returns the region's unique key.
func (r *Region) ID() string { return r.id }

// X returns the region's screen column origin.
func (r *Region) X() int { return r.x }

// Y returns the region's screen row origin.
func (r *Region) Y() int { return r.y }

// Width returns the region's total width, border included.
func (r *Region) Width() int { return r.width }

// Height returns the region's total height, border included.
func (r *Region) Height() int { return r.height }

// Border reports whether the region draws a border.
func (r *Region) Border() bool { return r.border }

// Style returns the region's style.
func (r *Region) Style() style.Style { return r.style }

// contentWidth returns the width available for content.
func (r *Region) contentWidth() int {
	if r.border {
		return max(0, r.width-2)
	}
	return r.width
}

// contentHeight returns the number of visible content lines.
func (r *Region) contentHeight() int {
	if r.border {
		return max(0, r.height-2)
	}
	return r.height
}

// SetContent replaces the accumulated content and recomputes the
// visible buffer.
func (r *Region) SetContent(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = text
	r.recompute()
}

// AppendContent concatenates text to the accumulated content and
// recomputes the visible buffer. Accumulation is unbounded; only the
// visible window is bounded.
func (r *Region) AppendContent(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content += text
	r.recompute()
}

// Clear resets the accumulated content to empty.
func (r *Region) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = ""
	r.recompute()
}

// Content returns the full accumulated content.
func (r *Region) Content() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}

// recompute derives the visible buffer from the accumulated content,
// keeping only the trailing lines that fit the visible height.
// Caller holds the write lock.
func (r *Region) recompute() {
	lines := splitContent(r.content)
	if h := r.contentHeight(); len(lines) > h {
		lines = lines[len(lines)-h:]
	}
	r.buf = buffer.NewSized(strings.Join(lines, "\n"), r.contentWidth(), r.contentHeight())
}

// splitContent splits accumulated content on newlines. A single
// trailing newline is an artifact of line-oriented appends and does
// not count as a line; a deliberate blank line ("a\n\n") does.
func splitContent(content string) []string {
	if content == "" {
		return []string{""}
	}
	lines := strings.Split(content, "\n")
	if strings.HasSuffix(content, "\n") && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ContentBuffer returns the current visible content buffer.
func (r *Region) ContentBuffer() *buffer.Buffer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buf
}

// RenderBuffer returns the buffer to paint: the content buffer, or a
// synthesized bordered buffer when the region has a border.
func (r *Region) RenderBuffer() *buffer.Buffer {
	r.mu.RLock()
	content := r.buf
	r.mu.RUnlock()

	if !r.border {
		return content
	}

	w := r.contentWidth()
	h := r.contentHeight()

	top := buffer.New(borderTopLeft + strings.Repeat(borderHorizontal, w) + borderTopRight)
	bottom := buffer.New(borderBottomLeft + strings.Repeat(borderHorizontal, w) + borderBottomRight)
	side := buffer.NewSized(strings.Repeat(borderVertical+"\n", h), 1, h)

	mid := side.Merge(content, buffer.Right).Merge(side, buffer.Right)
	return top.Merge(mid, buffer.Below).Merge(bottom, buffer.Below)
}
