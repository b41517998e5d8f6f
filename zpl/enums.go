package zpl

import "strings"

// Alignment is a declarative placement request. Its value is also the
// justification letter written into a Text field block.
type Alignment string

const (
	AlignLeft      Alignment = "L"
	AlignCenter    Alignment = "C"
	AlignRight     Alignment = "R"
	AlignJustified Alignment = "J"
	// AlignBottom moves a shape or barcode to the bottom edge of the label.
	// Only meaningful for the normal orientation.
	AlignBottom Alignment = "B"
)

// ParseAlignment accepts the single letter tokens as well as the words
// left, center, right, justified and bottom, in any case.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "start":
		return AlignLeft, true
	case "c", "center", "centre", "middle":
		return AlignCenter, true
	case "r", "right", "end":
		return AlignRight, true
	case "j", "justified", "justify":
		return AlignJustified, true
	case "b", "bottom":
		return AlignBottom, true
	}
	return "", false
}

// Color is the line color of a shape. Thermal printers know only two.
type Color string

const (
	ColorBlack Color = "B"
	ColorWhite Color = "W"
)

// ParseColor accepts B, W, black and white in any case.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "black":
		return ColorBlack, true
	case "w", "white":
		return ColorWhite, true
	}
	return "", false
}

// Orientation is the field orientation of a barcode.
type Orientation string

const (
	OrientationNormal   Orientation = "N"
	OrientationRotated  Orientation = "R" // 90 degrees clockwise
	OrientationInverted Orientation = "I" // 180 degrees
	OrientationBottomUp Orientation = "B" // 270 degrees
)

func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "normal":
		return OrientationNormal, true
	case "r", "rotated":
		return OrientationRotated, true
	case "i", "inverted":
		return OrientationInverted, true
	case "b", "bottom-up", "bottomup":
		return OrientationBottomUp, true
	}
	return "", false
}

// DiagonalDirection selects which way a DiagonalLine leans.
type DiagonalDirection string

const (
	DiagonalRight DiagonalDirection = "R" // rises to the right: /
	DiagonalLeft  DiagonalDirection = "L" // rises to the left: \
)

func ParseDiagonalDirection(s string) (DiagonalDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "right", "/":
		return DiagonalRight, true
	case "l", "left", `\`:
		return DiagonalLeft, true
	}
	return "", false
}

// TextPlacement controls the human readable line of a barcode.
type TextPlacement int

const (
	NoText TextPlacement = iota
	TextAbove
	TextBelow
)

// flags returns the interpretation line flags of the ^BC command: print
// interpretation line, then print it above the code.
func (p TextPlacement) flags() (string, string) {
	switch p {
	case TextAbove:
		return "Y", "Y"
	case TextBelow:
		return "Y", "N"
	default:
		return "N", "N"
	}
}

func (p TextPlacement) String() string {
	switch p {
	case NoText:
		return "none"
	case TextAbove:
		return "above"
	case TextBelow:
		return "below"
	default:
		return "unknown"
	}
}

func ParseTextPlacement(s string) (TextPlacement, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "off", "":
		return NoText, true
	case "above", "top":
		return TextAbove, true
	case "below", "bottom":
		return TextBelow, true
	}
	return NoText, false
}

// BarcodeMode is the Code 128 mode parameter.
type BarcodeMode string

const (
	ModeNone      BarcodeMode = "N"
	ModeUCC       BarcodeMode = "U" // UCC case mode
	ModeAutomatic BarcodeMode = "A"
	ModeNew       BarcodeMode = "D" // UCC/EAN new mode
)

func ParseBarcodeMode(s string) (BarcodeMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "none":
		return ModeNone, true
	case "u", "ucc":
		return ModeUCC, true
	case "a", "auto", "automatic":
		return ModeAutomatic, true
	case "d", "new", "ean":
		return ModeNew, true
	}
	return "", false
}

// Font size presets in dots.
const (
	FontSmall   = 30
	FontNormal  = 40
	FontLarge   = 50
	FontXLarge  = 70
	FontXXLarge = 90
)
