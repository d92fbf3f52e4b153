package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/termcanvas/style"
	"github.com/dshills/termcanvas/term"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var out bytes.Buffer
	t := term.New(&out)
	out.Reset() // discard the construction-time save-cursor
	return NewRenderer(t), &out
}

func TestRenderRegionPositions(t *testing.T) {
	r, out := newTestRenderer()
	reg := newRegion("r", 2, 1, 3, 2)
	reg.SetContent("ab")

	if err := r.RenderRegion(reg); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "\x1b8\x1b[1B\x1b[2C" + "ab " + "\x1b8\x1b[2B\x1b[2C" + "   "
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRenderRegionAtOrigin(t *testing.T) {
	r, out := newTestRenderer()
	reg := newRegion("r", 0, 0, 2, 1)
	reg.SetContent("hi")

	if err := r.RenderRegion(reg); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := out.String(); got != "\x1b8hi" {
		t.Errorf("output = %q", got)
	}
}

func TestPaintRegionDoesNotFlush(t *testing.T) {
	r, out := newTestRenderer()
	reg := newRegion("r", 0, 0, 2, 1)
	reg.SetContent("hi")

	r.PaintRegion(reg)
	if out.Len() != 0 {
		t.Errorf("paint flushed prematurely: %q", out.String())
	}
}

func TestRenderRegionStyled(t *testing.T) {
	r, out := newTestRenderer()
	reg := newRegion("r", 0, 0, 2, 1, WithForeground(style.ColorRed))
	reg.SetContent("hi")

	if err := r.RenderRegion(reg); err != nil {
		t.Fatalf("render: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "\x1b[38;2;255;0;0mhi\x1b[0m") {
		t.Errorf("output missing styled line: %q", got)
	}
}

func TestPaintBlank(t *testing.T) {
	r, out := newTestRenderer()
	reg := newRegion("r", 0, 0, 3, 2, WithBorder())
	reg.SetContent("x")

	r.PaintBlank(reg)
	if err := r.term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := out.String()
	if strings.ContainsAny(got, "┌─┐│└┘x") {
		t.Errorf("blank paint leaked content: %q", got)
	}
	if !strings.Contains(got, "   ") {
		t.Errorf("blank paint missing blank rows: %q", got)
	}
}
