// Package style provides terminal text styling: colors, attributes,
// and ANSI SGR escape formatting.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Default returns the default terminal style.
func Default() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// IsDefault returns true if the style carries no color or attributes.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() && s.Background.IsDefault() && s.Attributes == AttrNone
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

const (
	sgrReset = "\x1b[0m"
)

// Render wraps text in the SGR escape codes for the style. A default
// style returns the text unchanged.
func (s Style) Render(text string) string {
	if s.IsDefault() {
		return text
	}
	return s.sequence() + text + sgrReset
}

// sequence builds the SGR escape for the style.
func (s Style) sequence() string {
	params := make([]string, 0, 4)
	if s.Attributes.Has(AttrBold) {
		params = append(params, "1")
	}
	if s.Attributes.Has(AttrDim) {
		params = append(params, "2")
	}
	if s.Attributes.Has(AttrItalic) {
		params = append(params, "3")
	}
	if s.Attributes.Has(AttrUnderline) {
		params = append(params, "4")
	}
	if s.Attributes.Has(AttrReverse) {
		params = append(params, "7")
	}
	if !s.Foreground.IsDefault() {
		params = append(params, colorParams(38, s.Foreground))
	}
	if !s.Background.IsDefault() {
		params = append(params, colorParams(48, s.Background))
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// colorParams renders a 24-bit color SGR parameter group. base is 38
// for foreground, 48 for background.
func colorParams(base int, c Color) string {
	return fmt.Sprintf("%d;2;%s;%s;%s",
		base,
		strconv.Itoa(int(c.R)),
		strconv.Itoa(int(c.G)),
		strconv.Itoa(int(c.B)))
}
