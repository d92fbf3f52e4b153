package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRegionsWriterStreams(t *testing.T) {
	c, _ := newTestCanvas(t)
	if _, err := c.DefineRegion("log", 0, 0, 10, 3); err != nil {
		t.Fatal(err)
	}

	w, err := c.Regions().Writer("log")
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Start(true); err != nil {
		t.Fatal(err)
	}

	fmt.Fprintf(w, "first\n")
	fmt.Fprintf(w, "second\n")

	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}

	content, err := c.Regions().Get("log")
	if err != nil {
		t.Fatal(err)
	}
	if content != "first\nsecond\n" {
		t.Errorf("content = %q", content)
	}
}

func TestRegionsWriterUnknown(t *testing.T) {
	c, _ := newTestCanvas(t)
	if _, err := c.Regions().Writer("ghost"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("Writer error = %v, want ErrUnknownRegion", err)
	}
}

func TestRegionsWriterFanOut(t *testing.T) {
	c, _ := newTestCanvas(t)
	if _, err := c.DefineRegion("a", 0, 0, 10, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DefineRegion("b", 0, 3, 10, 2); err != nil {
		t.Fatal(err)
	}

	wa, err := c.Regions().Writer("a")
	if err != nil {
		t.Fatal(err)
	}
	wb, err := c.Regions().Writer("b")
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Start(true); err != nil {
		t.Fatal(err)
	}
	if _, err := io.MultiWriter(wa, wb).Write([]byte("both\n")); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"a", "b"} {
		content, err := c.Regions().Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(content, "both") {
			t.Errorf("region %q missing fan-out write: %q", id, content)
		}
	}
}

func TestRegionsGetReflectsAppliedMessages(t *testing.T) {
	c, _ := newTestCanvas(t)
	if _, err := c.DefineRegion("a", 0, 0, 10, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.Start(true); err != nil {
		t.Fatal(err)
	}

	regions := c.Regions()
	if err := regions.Set("a", "one"); err != nil {
		t.Fatal(err)
	}
	if err := regions.Append("a", " two"); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}

	content, err := regions.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if content != "one two" {
		t.Errorf("content = %q, want %q", content, "one two")
	}
}
