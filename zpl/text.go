package zpl

// Default Text settings.
const (
	DefaultFontSize                = FontSmall
	DefaultSpecialCharacterSupport = true
)

// Text is a single line field block spanning the label width (^FB). The
// printer justifies the line inside the block, so alignment is not turned
// into coordinates.
type Text struct {
	Positionable
	fontSize          int
	specialCharacters bool
	text              string
}

func NewText() *Text {
	return &Text{
		Positionable:      newPositionable("text"),
		fontSize:          DefaultFontSize,
		specialCharacters: DefaultSpecialCharacterSupport,
	}
}

// NewTextAt creates a text at (x, y) on a label of the given width.
// Negative coordinates and widths and an empty text keep the defaults.
func NewTextAt(x, y int, text string, labelWidth int) *Text {
	t := NewText()
	if x >= 0 {
		t.x = x
	}
	if y >= 0 {
		t.y = y
	}
	if text != "" {
		t.text = text
	}
	if labelWidth >= 0 {
		t.labelWidth = labelWidth
	}
	return t
}

func (t *Text) Text() string { return t.text }

// SetText ignores the empty string.
func (t *Text) SetText(text string) {
	if text == "" {
		reject(&t.Positionable, "text", text, "text must not be empty")
		return
	}
	t.text = text
}

func (t *Text) FontSize() int { return t.fontSize }

// SetFontSize ignores negative sizes.
func (t *Text) SetFontSize(size int) {
	if size < 0 {
		reject(&t.Positionable, "fontSize", size, "font size must not be negative")
		return
	}
	t.fontSize = size
}

func (t *Text) SpecialCharacterSupport() bool { return t.specialCharacters }

// SetSpecialCharacterSupport enables ^FH_ so the data may carry _XX hex
// escapes, e.g. _15 for the euro sign.
func (t *Text) SetSpecialCharacterSupport(enabled bool) { t.specialCharacters = enabled }

// SetAlignment stores left, center, right or justified for the field block.
// Bottom and unknown values are ignored.
func (t *Text) SetAlignment(a Alignment) {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustified:
		t.alignment = a
	default:
		reject(&t.Positionable, "alignment", a, "text alignment must be L, C, R or J")
	}
}

// Size is the font size.
func (t *Text) Size() int { return t.fontSize }

// GenerateInstruction writes
// ^FO{x},{y}^A0,{size}^FB{labelWidth},1,0,{align},0[^FH_]^FD{text}\&^FS.
func (t *Text) GenerateInstruction() {
	var w commandWriter
	w.origin(t.x, t.y)
	w.command(cmdFont, defaultFont, itoa(t.fontSize))
	w.command(cmdFieldBlock, itoa(t.labelWidth), "1", "0", string(t.alignment), "0")
	if t.specialCharacters {
		w.raw(cmdFieldHex)
	}
	w.data(t.text)
	w.raw(textContinuation)
	w.end()
	t.instruction = w.String()
}
