package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/termcanvas/canvas"
)

const validLayout = `
fps = 60

[[regions]]
id = "header"
x = 0
y = 0
width = 40
height = 3
border = true
foreground = "cyan"

[[regions]]
id = "log"
x = 0
y = 3
width = 40
height = 10
`

func TestParseValid(t *testing.T) {
	layout, err := Parse([]byte(validLayout), "layout.toml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if layout.FPS != 60 {
		t.Errorf("fps = %d, want 60", layout.FPS)
	}
	if len(layout.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(layout.Regions))
	}
	if layout.Regions[0].ID != "header" || !layout.Regions[0].Border {
		t.Errorf("first region = %+v", layout.Regions[0])
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("fps = ["), "bad.toml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != "bad.toml" {
		t.Errorf("path = %q", perr.Path)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"duplicate id", `
[[regions]]
id = "a"
width = 5
height = 5
[[regions]]
id = "a"
width = 5
height = 5
`},
		{"empty id", `
[[regions]]
id = ""
width = 5
height = 5
`},
		{"zero size", `
[[regions]]
id = "a"
width = 0
height = 5
`},
		{"negative origin", `
[[regions]]
id = "a"
x = -1
width = 5
height = 5
`},
		{"border too small", `
[[regions]]
id = "a"
width = 1
height = 5
border = true
`},
		{"bad color", `
[[regions]]
id = "a"
width = 5
height = 5
foreground = "chartreuse-ish"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), "layout.toml")
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(validLayout), 0o644); err != nil {
		t.Fatal(err)
	}

	layout, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var out bytes.Buffer
	c := canvas.New(&out)
	if err := layout.Apply(c); err != nil {
		t.Fatalf("apply: %v", err)
	}

	for _, id := range []string{"header", "log"} {
		if _, err := c.Regions().Get(id); err != nil {
			t.Errorf("region %q not defined: %v", id, err)
		}
	}

	// Applying twice hits the duplicate-id configuration error.
	if err := layout.Apply(c); !errors.Is(err, canvas.ErrRegionExists) {
		t.Errorf("second apply = %v, want ErrRegionExists", err)
	}
}

func TestApplyNewSkipsExistingRegions(t *testing.T) {
	layout, err := Parse([]byte(validLayout), "layout.toml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var out bytes.Buffer
	c := canvas.New(&out)
	if err := layout.Apply(c); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// An edited layout keeps the old regions and adds one; ApplyNew
	// must get past the existing ids to define it.
	extended, err := Parse([]byte(validLayout+`
[[regions]]
id = "footer"
x = 0
y = 13
width = 40
height = 2
`), "layout.toml")
	if err != nil {
		t.Fatalf("parse extended: %v", err)
	}

	if err := extended.ApplyNew(c); err != nil {
		t.Fatalf("apply new: %v", err)
	}
	for _, id := range []string{"header", "log", "footer"} {
		if _, err := c.Regions().Get(id); err != nil {
			t.Errorf("region %q not defined: %v", id, err)
		}
	}
}
