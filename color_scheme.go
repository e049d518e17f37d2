package inquiry

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used to paint a prompt frame.
type ColorScheme struct {
	Name     string `json:"name"`
	Prefix   Color  `json:"prefix"`   // leading "?" of the question line
	Message  Color  `json:"message"`  // question text
	Answer   Color  `json:"answer"`   // typed content and the committed answer
	Hint     Color  `json:"hint"`     // default value hint and placeholder
	Error    Color  `json:"error"`    // validation error line
	Help     Color  `json:"help"`     // help line
	Selected Color  `json:"selected"` // highlighted option or suggestion
	Option   Color  `json:"option"`   // other options and suggestions
	Plain    bool   `json:"plain"`    // emit no escape sequences for colors
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prefix and cyan help
var ThemeDefault = &ColorScheme{
	Name:     "Default",
	Prefix:   Color{R: 0, G: 255, B: 0, Bold: true},
	Message:  Color{R: 255, G: 255, B: 255, Bold: true},
	Answer:   Color{R: 0, G: 255, B: 255, Bold: false},
	Hint:     Color{R: 128, G: 128, B: 128, Bold: false},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Help:     Color{R: 0, G: 205, B: 205, Bold: false},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
	Option:   Color{R: 200, G: 200, B: 200, Bold: false},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:     "Accessible",
	Prefix:   Color{R: 0, G: 114, B: 178, Bold: true},
	Message:  Color{R: 255, G: 255, B: 255, Bold: true},
	Answer:   Color{R: 86, G: 180, B: 233, Bold: false},
	Hint:     Color{R: 204, G: 204, B: 204, Bold: false},
	Error:    Color{R: 230, G: 159, B: 0, Bold: true},
	Help:     Color{R: 240, G: 228, B: 66, Bold: false},
	Selected: Color{R: 230, G: 159, B: 0, Bold: true},
	Option:   Color{R: 255, G: 255, B: 255, Bold: false},
}

// ThemeMonochrome paints no colors at all.
var ThemeMonochrome = &ColorScheme{
	Name:  "Monochrome",
	Plain: true,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps text in c unless the scheme is plain.
func (cs *ColorScheme) paint(c Color, text string) string {
	if cs == nil || cs.Plain || text == "" {
		return text
	}
	return c.ToANSI() + text + Reset()
}
