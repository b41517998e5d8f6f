// Package label aggregates components into the code of one printable label.
package label

import (
	"strings"

	"github.com/ByLCY/zlabel/config"
	"github.com/ByLCY/zlabel/zpl"
)

// Label is a canvas of Width by Height dots holding components in
// insertion order.
type Label struct {
	Name       string
	width      int
	height     int
	dpi        int
	components []zpl.Component
}

// New creates a label of width by height inches printed at dpi dots per inch.
func New(widthInches, heightInches float64, dpi int) *Label {
	return &Label{
		width:  config.Dots(widthInches, dpi),
		height: config.Dots(heightInches, dpi),
		dpi:    dpi,
	}
}

// NewDots creates a label whose size is already known in dots.
func NewDots(width, height, dpi int) *Label {
	return &Label{width: width, height: height, dpi: dpi}
}

func (l *Label) Width() int  { return l.width }
func (l *Label) Height() int { return l.height }
func (l *Label) DPI() int    { return l.dpi }

// Valid reports whether the canvas has a positive area.
func (l *Label) Valid() bool {
	return l != nil && l.width > 0 && l.height > 0
}

// Add appends components in order. Nil components are skipped.
func (l *Label) Add(components ...zpl.Component) {
	for _, c := range components {
		if c == nil {
			continue
		}
		l.components = append(l.components, c)
	}
}

// Components returns the components in insertion order.
func (l *Label) Components() []zpl.Component {
	return l.components
}

// Find returns the first component with the given id.
func (l *Label) Find(id string) (zpl.Component, bool) {
	for _, c := range l.components {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Code generates the instruction of every component and joins them with
// line breaks in insertion order.
func (l *Label) Code() string {
	parts := make([]string, 0, len(l.components))
	for _, c := range l.components {
		c.GenerateInstruction()
		parts = append(parts, c.Instruction())
	}
	return strings.Join(parts, "\n")
}
