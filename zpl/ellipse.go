package zpl

// Ellipse is an ellipse inscribed in the shape box (^GE).
//
// Unlike the other shapes, right and bottom margins move an ellipse instead
// of shrinking it, and SetMargin applies the same value to all four sides.
type Ellipse struct {
	Shape
}

func NewEllipse() *Ellipse {
	return &Ellipse{Shape: newShape("ellipse")}
}

// NewEllipseAt creates an ellipse whose box starts at (x, y).
func NewEllipseAt(x, y, width, height int) *Ellipse {
	e := NewEllipse()
	e.SetX(x)
	e.SetY(y)
	e.SetWidth(width)
	e.SetHeight(height)
	return e
}

// SetMarginRight moves the ellipse left: x -= margin.
func (e *Ellipse) SetMarginRight(margin int) { e.x -= margin }

// SetMarginBottom moves the ellipse up: y -= margin.
func (e *Ellipse) SetMarginBottom(margin int) { e.y -= margin }

func (e *Ellipse) SetMargins(left, top, right, bottom int) {
	applyMargins(e, left, top, right, bottom)
}

// SetMargin applies margin to every side without doubling.
func (e *Ellipse) SetMargin(margin int) {
	e.SetMargins(margin, margin, margin, margin)
}

// GenerateInstruction writes ^FO{x},{y}^GE{w},{h},{t},{color}^FS.
func (e *Ellipse) GenerateInstruction() {
	e.instruction = e.writeBox(cmdGraphicEllipse)
}
