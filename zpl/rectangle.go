package zpl

// MaxCornerRadius is the largest rounding the ^GB command accepts.
const MaxCornerRadius = 8

// Rectangle is a box with optionally rounded corners (^GB).
type Rectangle struct {
	Shape
	cornerRadius int
}

func NewRectangle() *Rectangle {
	return &Rectangle{Shape: newShape("rectangle")}
}

// NewRectangleAt creates a rectangle at (x, y) of the given size.
func NewRectangleAt(x, y, width, height int) *Rectangle {
	r := NewRectangle()
	r.SetX(x)
	r.SetY(y)
	r.SetWidth(width)
	r.SetHeight(height)
	return r
}

func (r *Rectangle) CornerRadius() int { return r.cornerRadius }

// SetCornerRadius accepts 0 through MaxCornerRadius and ignores anything else.
func (r *Rectangle) SetCornerRadius(radius int) {
	if radius < 0 || radius > MaxCornerRadius {
		reject(&r.Positionable, "cornerRadius", radius, "corner radius must be between 0 and 8")
		return
	}
	r.cornerRadius = radius
}

// GenerateInstruction writes ^FO{x},{y}^GB{w},{h},{t},{color},{radius}^FS.
func (r *Rectangle) GenerateInstruction() {
	r.instruction = r.writeBox(cmdGraphicBox, itoa(r.cornerRadius))
}
