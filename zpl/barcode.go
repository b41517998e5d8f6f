package zpl

import "unicode/utf8"

// Barcode defaults in dots.
const (
	DefaultModuleWidth   = 3
	DefaultBarcodeHeight = 60
)

const (
	// height added to the footprint for an interpretation line below the bars
	textBelowHeight = 30
	// start, stop and check symbols in modules
	code128Overhead = 34
	// modules per encoded character
	code128SymbolWidth = 11
)

// Barcode is a Code 128 barcode (^BY, ^BC). It can own a filled Rectangle
// painted behind it to mask whatever lies underneath.
type Barcode struct {
	Positionable
	orientation   Orientation
	height        int
	checkDigit    bool
	mode          BarcodeMode
	moduleWidth   int
	textPlacement TextPlacement
	data          string
	background    *Rectangle
}

func NewBarcode(data string) *Barcode {
	return &Barcode{
		Positionable:  newPositionable("barcode"),
		orientation:   OrientationNormal,
		height:        DefaultBarcodeHeight,
		mode:          ModeNone,
		moduleWidth:   DefaultModuleWidth,
		textPlacement: NoText,
		data:          data,
	}
}

// NewBarcodeAt creates a barcode at (x, y) on a label of the given width.
// Negative coordinates and widths keep the defaults.
func NewBarcodeAt(x, y int, data string, labelWidth int) *Barcode {
	b := NewBarcode(data)
	if x >= 0 {
		b.x = x
	}
	if y >= 0 {
		b.y = y
	}
	if labelWidth >= 0 {
		b.labelWidth = labelWidth
	}
	return b
}

func (b *Barcode) Data() string { return b.data }
func (b *Barcode) SetData(data string) { b.data = data }
func (b *Barcode) Orientation() Orientation { return b.orientation }
func (b *Barcode) CheckDigit() bool { return b.checkDigit }
func (b *Barcode) SetCheckDigit(enabled bool) { b.checkDigit = enabled }
func (b *Barcode) Mode() BarcodeMode { return b.mode }
func (b *Barcode) ModuleWidth() int { return b.moduleWidth }
func (b *Barcode) Height() int { return b.height }
func (b *Barcode) TextPlacement() TextPlacement { return b.textPlacement }

// Background returns the rectangle painted behind the barcode, or nil.
func (b *Barcode) Background() *Rectangle { return b.background }

func (b *Barcode) SetOrientation(o Orientation) {
	parsed, ok := ParseOrientation(string(o))
	if !ok {
		reject(&b.Positionable, "orientation", o, "orientation must be N, R, I or B")
		return
	}
	b.orientation = parsed
}

func (b *Barcode) SetMode(m BarcodeMode) {
	parsed, ok := ParseBarcodeMode(string(m))
	if !ok {
		reject(&b.Positionable, "mode", m, "mode must be N, U, A or D")
		return
	}
	b.mode = parsed
}

// SetModuleWidth sets the narrow bar width. Values below 1 are ignored.
func (b *Barcode) SetModuleWidth(width int) {
	if width < 1 {
		reject(&b.Positionable, "moduleWidth", width, "module width must be at least 1")
		return
	}
	b.moduleWidth = width
}

// SetHeight sets the bar height. Values below 1 are ignored.
func (b *Barcode) SetHeight(height int) {
	if height < 1 {
		reject(&b.Positionable, "height", height, "bar height must be at least 1")
		return
	}
	b.height = height
}

func (b *Barcode) SetTextPlacement(p TextPlacement) {
	switch p {
	case NoText, TextAbove, TextBelow:
		b.textPlacement = p
	default:
		reject(&b.Positionable, "textPlacement", int(p), "unknown text placement")
	}
}

// Size is the bar height, plus room for the interpretation line when it is
// printed below. A line above is drawn outside the flow and adds nothing.
func (b *Barcode) Size() int {
	size := b.height
	if b.textPlacement == TextBelow {
		size += textBelowHeight
	}
	return size
}

// Length is the printed length in dots at normal orientation, 0 otherwise.
// Every character of the data counts as one symbol.
func (b *Barcode) Length() int {
	if b.orientation != OrientationNormal {
		return 0
	}
	symbols := utf8.RuneCountInString(b.data)
	return (code128Overhead + symbols*code128SymbolWidth) * b.moduleWidth
}

// SetAlignment places the barcode horizontally (left, center, right) or at
// the bottom edge. Right and bottom only apply at normal orientation.
func (b *Barcode) SetAlignment(a Alignment) {
	switch a {
	case AlignLeft:
		b.x = 0
	case AlignCenter:
		b.x = (b.labelWidth - b.Length()) / 2
	case AlignRight:
		if b.orientation != OrientationNormal {
			return
		}
		b.x = b.labelWidth - b.Length()
	case AlignBottom:
		if b.orientation != OrientationNormal {
			return
		}
		b.y = b.labelHeight - b.Size()
	default:
		return
	}
	b.alignment = a
}

// SetMarginRight moves the barcode left: x -= margin.
func (b *Barcode) SetMarginRight(margin int) { b.x -= margin }

// SetMarginBottom moves the barcode up: y -= margin.
func (b *Barcode) SetMarginBottom(margin int) { b.y -= margin }

func (b *Barcode) SetMargins(left, top, right, bottom int) {
	applyMargins(b, left, top, right, bottom)
}

func (b *Barcode) SetMargin(margin int) { applyMargin(b, margin) }

// ApplyBackground paints a solid rectangle of color behind the barcode,
// extending paddingX dots left and right and paddingY dots above and below.
// Negative paddings count as 0 and an invalid color as white. The rectangle
// is placed at the current position; call it after positioning the barcode.
// Calling it again replaces the previous background.
func (b *Barcode) ApplyBackground(color Color, paddingX, paddingY int) {
	paddingX = max(paddingX, 0)
	paddingY = max(paddingY, 0)
	c, ok := ParseColor(string(color))
	if !ok {
		reject(&b.Positionable, "background", color, "invalid background color, using white")
		c = ColorWhite
	}

	bg := NewRectangle()
	if b.id != "" {
		bg.SetID(b.id + "-background")
	}
	bg.SetLabelSize(b.labelWidth, b.labelHeight)
	bg.SetWidth(b.Length() + paddingX*2)
	bg.SetHeight(b.Size() + paddingY*2)
	bg.SetX(b.x - paddingX)
	bg.SetY(b.y - paddingY)
	bg.SetColor(c)
	bg.FillBackground()
	b.background = bg
}

// RemoveBackground drops the background rectangle.
func (b *Barcode) RemoveBackground() { b.background = nil }

// GenerateInstruction writes the background instruction and a line break
// when a background is set, then
// ^FO{x},{y}^BY {module}^BC{o},{h},{line},{above},{check},{mode}^FD{data}^FS.
func (b *Barcode) GenerateInstruction() {
	var w commandWriter
	if b.background != nil {
		b.background.GenerateInstruction()
		w.raw(b.background.Instruction())
		w.raw("\n")
	}
	w.origin(b.x, b.y)
	w.command(cmdBarDefaults, itoa(b.moduleWidth))
	line, above := b.textPlacement.flags()
	check := "N"
	if b.checkDigit {
		check = "Y"
	}
	w.command(cmdCode128, string(b.orientation), itoa(b.height), line, above, check, string(b.mode))
	w.data(b.data)
	w.end()
	b.instruction = w.String()
}
