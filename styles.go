package skychart

import "github.com/lucasb-eyer/go-colorful"

// Style collects the text and ornament styling of one chart kind.
type Style struct {
	LabelColor  colorful.Color
	LabelSize   float64
	SmallSize   float64
	TickColor   colorful.Color
	TickOpacity float64
	IconSize    float64
}

// StyleSet is an explicit style registry owned by the composition root.
// It replaces any ambient global style list: the root constructs a set,
// registers what it needs, and passes it to charts via WithStyles.
type StyleSet struct {
	styles map[string]Style
}

// NewStyleSet returns an empty style set.
func NewStyleSet() *StyleSet {
	return &StyleSet{styles: make(map[string]Style)}
}

// Register adds or replaces a named style.
func (s *StyleSet) Register(name string, style Style) {
	s.styles[name] = style
}

// Lookup returns the named style, or fallback defaults when absent.
func (s *StyleSet) Lookup(name string) Style {
	if st, ok := s.styles[name]; ok {
		return st
	}
	return fallbackStyle
}

var fallbackStyle = Style{
	LabelColor:  colorful.Color{R: 0.93, G: 0.93, B: 0.93},
	LabelSize:   10,
	SmallSize:   8,
	TickColor:   colorful.Color{R: 1, G: 1, B: 1},
	TickOpacity: 0.4,
	IconSize:    14,
}

// Style names the built-in composers look up.
const (
	StyleHourly = "hourly"
	StyleDaily  = "daily"
)

// DefaultStyles returns a set with the built-in hourly and daily styles
// registered.
func DefaultStyles() *StyleSet {
	s := NewStyleSet()
	s.Register(StyleHourly, Style{
		LabelColor:  colorful.Color{R: 0.96, G: 0.96, B: 0.96},
		LabelSize:   10,
		SmallSize:   8,
		TickColor:   colorful.Color{R: 1, G: 1, B: 1},
		TickOpacity: 0.35,
		IconSize:    14,
	})
	s.Register(StyleDaily, Style{
		LabelColor:  colorful.Color{R: 0.96, G: 0.96, B: 0.96},
		LabelSize:   10,
		SmallSize:   8,
		TickColor:   colorful.Color{R: 1, G: 1, B: 1},
		TickOpacity: 0.35,
		IconSize:    16,
	})
	return s
}
