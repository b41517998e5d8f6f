package zpl

// Shape is the state shared by Rectangle, Ellipse and DiagonalLine: a box of
// width by height drawn with a line of the given thickness and color.
type Shape struct {
	Positionable
	width     int
	height    int
	thickness int
	color     Color
}

func newShape(kind string) Shape {
	return Shape{
		Positionable: newPositionable(kind),
		thickness:    1,
		color:        ColorBlack,
	}
}

func (s *Shape) Width() int { return s.width }

// SetWidth ignores negative widths.
func (s *Shape) SetWidth(width int) {
	if width < 0 {
		reject(&s.Positionable, "width", width, "width must not be negative")
		return
	}
	s.width = width
}

func (s *Shape) Height() int { return s.height }

// SetHeight ignores negative heights.
func (s *Shape) SetHeight(height int) {
	if height < 0 {
		reject(&s.Positionable, "height", height, "height must not be negative")
		return
	}
	s.height = height
}

func (s *Shape) Thickness() int { return s.thickness }

// SetThickness stores positive values, turns 0 into 1 and ignores negative
// values.
func (s *Shape) SetThickness(thickness int) {
	switch {
	case thickness > 0:
		s.thickness = thickness
	case thickness == 0:
		s.thickness = 1
	default:
		reject(&s.Positionable, "thickness", thickness, "thickness must not be negative")
	}
}

func (s *Shape) Color() Color { return s.color }

// SetColor accepts ColorBlack or ColorWhite, in either case.
func (s *Shape) SetColor(c Color) {
	parsed, ok := ParseColor(string(c))
	if !ok {
		reject(&s.Positionable, "color", c, "color must be B or W")
		return
	}
	s.color = parsed
}

// FillBackground paints the shape solid by making the line half as thick as
// the shorter side. Changing the thickness afterwards undoes it.
func (s *Shape) FillBackground() {
	if s.width < s.height {
		s.SetThickness(s.width / 2)
		return
	}
	s.SetThickness(s.height / 2)
}

// SetMarginRight shrinks the shape: width -= margin, never below 0.
func (s *Shape) SetMarginRight(margin int) { s.width = max(0, s.width-margin) }

// SetMarginBottom shrinks the shape: height -= margin, never below 0.
func (s *Shape) SetMarginBottom(margin int) { s.height = max(0, s.height-margin) }

func (s *Shape) SetMargins(left, top, right, bottom int) {
	applyMargins(s, left, top, right, bottom)
}

func (s *Shape) SetMargin(margin int) { applyMargin(s, margin) }

// SetAlignment places the shape horizontally (left, center, right) or at the
// bottom edge of the label. Justified and unknown values are ignored.
func (s *Shape) SetAlignment(a Alignment) {
	switch a {
	case AlignLeft:
		s.x = 0
	case AlignCenter:
		s.x = (s.labelWidth - s.width) / 2
	case AlignRight:
		s.x = s.labelWidth - s.width
	case AlignBottom:
		s.y = s.labelHeight
		s.y -= s.height
	default:
		return
	}
	s.alignment = a
}

// Size is height plus line thickness.
func (s *Shape) Size() int { return s.height + s.thickness }

// writeBox writes the origin and the common graphic parameters of cmd,
// followed by extra parameters and the field separator.
func (s *Shape) writeBox(cmd string, extra ...string) string {
	var w commandWriter
	w.origin(s.x, s.y)
	params := append([]string{itoa(s.width), itoa(s.height), itoa(s.thickness), string(s.color)}, extra...)
	w.command(cmd, params...)
	w.end()
	return w.String()
}
