// Package config provides declarative canvas layout loading. A layout
// file describes the target frame rate and the set of regions to
// define; the package validates it and applies it to a Canvas.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termcanvas/canvas"
	"github.com/dshills/termcanvas/style"
)

// RegionDef describes one region in a layout file.
type RegionDef struct {
	ID         string `toml:"id"`
	X          int    `toml:"x"`
	Y          int    `toml:"y"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Border     bool   `toml:"border"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Layout is a declarative canvas description.
type Layout struct {
	FPS     int         `toml:"fps"`
	Regions []RegionDef `toml:"regions"`
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes and validates layout TOML. path is used only for
// error reporting.
func Parse(data []byte, path string) (*Layout, error) {
	var layout Layout
	if err := toml.Unmarshal(data, &layout); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Validate checks a layout for structural problems.
func (l *Layout) Validate() error {
	if l.FPS < 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidLayout, l.FPS)
	}
	seen := make(map[string]bool, len(l.Regions))
	for _, r := range l.Regions {
		if r.ID == "" {
			return fmt.Errorf("%w: region with empty id", ErrInvalidLayout)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate region id %q", ErrInvalidLayout, r.ID)
		}
		seen[r.ID] = true
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("%w: region %q has size %dx%d", ErrInvalidLayout, r.ID, r.Width, r.Height)
		}
		if r.Border && (r.Width < 2 || r.Height < 2) {
			return fmt.Errorf("%w: region %q is too small for a border", ErrInvalidLayout, r.ID)
		}
		if r.X < 0 || r.Y < 0 {
			return fmt.Errorf("%w: region %q has negative origin", ErrInvalidLayout, r.ID)
		}
		if _, err := style.ColorFromName(r.Foreground); err != nil {
			return fmt.Errorf("%w: region %q foreground: %v", ErrInvalidLayout, r.ID, err)
		}
		if _, err := style.ColorFromName(r.Background); err != nil {
			return fmt.Errorf("%w: region %q background: %v", ErrInvalidLayout, r.ID, err)
		}
	}
	return nil
}

// Apply defines every region of the layout on the canvas. It fails on
// the first region whose id is already defined.
func (l *Layout) Apply(c *canvas.Canvas) error {
	for _, def := range l.Regions {
		if err := def.define(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNew defines only the layout's regions that do not exist on the
// canvas yet, skipping ids that are already defined. Used for live
// reload, where an edited layout extends one already applied.
func (l *Layout) ApplyNew(c *canvas.Canvas) error {
	for _, def := range l.Regions {
		if err := def.define(c); err != nil {
			if errors.Is(err, canvas.ErrRegionExists) {
				continue
			}
			return err
		}
	}
	return nil
}

// define registers one region on the canvas.
func (d RegionDef) define(c *canvas.Canvas) error {
	opts := make([]canvas.RegionOption, 0, 3)
	if d.Border {
		opts = append(opts, canvas.WithBorder())
	}
	if d.Foreground != "" {
		fg, err := style.ColorFromName(d.Foreground)
		if err != nil {
			return err
		}
		opts = append(opts, canvas.WithForeground(fg))
	}
	if d.Background != "" {
		bg, err := style.ColorFromName(d.Background)
		if err != nil {
			return err
		}
		opts = append(opts, canvas.WithBackground(bg))
	}
	if _, err := c.DefineRegion(d.ID, d.X, d.Y, d.Width, d.Height, opts...); err != nil {
		return fmt.Errorf("apply layout: %w", err)
	}
	return nil
}
