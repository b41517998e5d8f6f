package zpl

// DiagonalLine draws the diagonal of the shape box (^GD).
type DiagonalLine struct {
	Shape
	direction DiagonalDirection
}

func NewDiagonalLine() *DiagonalLine {
	return &DiagonalLine{Shape: newShape("diagonal"), direction: DiagonalRight}
}

// NewDiagonalLineAt creates a diagonal line across the box at (x, y).
func NewDiagonalLineAt(x, y, width, height int) *DiagonalLine {
	d := NewDiagonalLine()
	d.SetX(x)
	d.SetY(y)
	d.SetWidth(width)
	d.SetHeight(height)
	return d
}

func (d *DiagonalLine) Direction() DiagonalDirection { return d.direction }

// SetDirection ignores anything ParseDiagonalDirection does not accept.
func (d *DiagonalLine) SetDirection(dir DiagonalDirection) {
	parsed, ok := ParseDiagonalDirection(string(dir))
	if !ok {
		reject(&d.Positionable, "direction", dir, "direction must be R or L")
		return
	}
	d.direction = parsed
}

// GenerateInstruction writes ^FO{x},{y}^GD{w},{h},{t},{color},{direction}^FS.
func (d *DiagonalLine) GenerateInstruction() {
	d.instruction = d.writeBox(cmdGraphicDiag, string(d.direction))
}
