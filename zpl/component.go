package zpl

// Component is an element placed on a label.
type Component interface {
	ID() string
	X() int
	Y() int
	// Size is the vertical footprint used for stacking and margin math.
	// It is not necessarily the rendered height.
	Size() int

	SetLabelSize(width, height int)
	SetAlignment(a Alignment)
	SetMarginLeft(margin int)
	SetMarginTop(margin int)
	SetMarginRight(margin int)
	SetMarginBottom(margin int)
	SetMargins(left, top, right, bottom int)
	SetMargin(margin int)
	BelowOf(other Anchor)

	// GenerateInstruction serializes the current state. Instruction returns
	// the result of the last call, or "" if it was never called.
	GenerateInstruction()
	Instruction() string
}

// Anchor is the part of a component BelowOf reads.
type Anchor interface {
	Y() int
	Size() int
}

// marginSetter lets the combined margin helpers dispatch to the margin
// arithmetic of the concrete kind.
type marginSetter interface {
	SetMarginLeft(margin int)
	SetMarginTop(margin int)
	SetMarginRight(margin int)
	SetMarginBottom(margin int)
}

// applyMargins sets all four margins. Bottom and right are applied first and
// include the opposite side, then left and top move the origin.
func applyMargins(m marginSetter, left, top, right, bottom int) {
	m.SetMarginBottom(bottom + top)
	m.SetMarginRight(right + left)
	m.SetMarginLeft(left)
	m.SetMarginTop(top)
}

// applyMargin applies a single margin value: once to left and top, twice to
// right and bottom.
func applyMargin(m marginSetter, margin int) {
	m.SetMarginLeft(margin)
	m.SetMarginTop(margin)
	m.SetMarginRight(margin * 2)
	m.SetMarginBottom(margin * 2)
}

// Positionable holds the state shared by every component: identity, origin,
// alignment, the canvas size and the generated instruction.
type Positionable struct {
	kind        string
	id          string
	x, y        int
	alignment   Alignment
	labelWidth  int
	labelHeight int
	instruction string
}

func newPositionable(kind string) Positionable {
	return Positionable{kind: kind, alignment: AlignLeft}
}

// Kind names the component kind, e.g. "text" or "rectangle".
func (p *Positionable) Kind() string { return p.kind }

func (p *Positionable) ID() string { return p.id }
func (p *Positionable) SetID(id string) { p.id = id }
func (p *Positionable) X() int { return p.x }
func (p *Positionable) SetX(x int) { p.x = x }
func (p *Positionable) Y() int { return p.y }
func (p *Positionable) SetY(y int) { p.y = y }
func (p *Positionable) LabelWidth() int { return p.labelWidth }
func (p *Positionable) LabelHeight() int { return p.labelHeight }

func (p *Positionable) Alignment() Alignment { return p.alignment }

// SetLabelSize tells the component the canvas it is placed on. Alignment and
// the Text field block read it.
func (p *Positionable) SetLabelSize(width, height int) {
	p.labelWidth = width
	p.labelHeight = height
}

// SetAlignment records a known alignment and ignores anything else.
func (p *Positionable) SetAlignment(a Alignment) {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustified, AlignBottom:
		p.alignment = a
	}
}

// SetMarginLeft moves the origin right: x += margin.
func (p *Positionable) SetMarginLeft(margin int) { p.x += margin }

// SetMarginTop moves the origin down: y += margin.
func (p *Positionable) SetMarginTop(margin int) { p.y += margin }

// SetMarginRight narrows the canvas visible to the component.
func (p *Positionable) SetMarginRight(margin int) { p.labelWidth -= margin }

// SetMarginBottom shortens the canvas visible to the component.
func (p *Positionable) SetMarginBottom(margin int) { p.labelHeight -= margin }

func (p *Positionable) SetMargins(left, top, right, bottom int) {
	applyMargins(p, left, top, right, bottom)
}

func (p *Positionable) SetMargin(margin int) { applyMargin(p, margin) }

// BelowOf moves the component below other: y += other.Y() + other.Size().
// The offset is computed once; later changes to other are not followed.
func (p *Positionable) BelowOf(other Anchor) {
	if other == nil {
		return
	}
	p.y += other.Y() + other.Size()
}

func (p *Positionable) Instruction() string { return p.instruction }

// SetInstruction replaces the instruction. The next GenerateInstruction of a
// built-in kind overwrites it.
func (p *Positionable) SetInstruction(instruction string) { p.instruction = instruction }

func (p *Positionable) String() string { return p.instruction }

// Raw is a component carrying a caller supplied instruction, for commands
// the other kinds do not cover.
type Raw struct {
	Positionable
}

func NewRaw(instruction string) *Raw {
	r := &Raw{Positionable: newPositionable("raw")}
	r.instruction = instruction
	return r
}

// Size is always zero: a raw command takes no room in the layout.
func (r *Raw) Size() int { return 0 }

// GenerateInstruction keeps the supplied instruction.
func (r *Raw) GenerateInstruction() {}

var (
	_ Component = (*Raw)(nil)
	_ Component = (*Text)(nil)
	_ Component = (*Barcode)(nil)
	_ Component = (*Rectangle)(nil)
	_ Component = (*Ellipse)(nil)
	_ Component = (*DiagonalLine)(nil)
)
