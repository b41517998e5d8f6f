// Package templates contains ready-made label compositions built only from
// the public component API.
package templates

import (
	"github.com/ByLCY/zlabel/label"
	"github.com/ByLCY/zlabel/zpl"
)

const (
	barcodeModuleWidth  = 2
	barcodeMarginBottom = 20
	borderMargin        = 20
	borderCornerRadius  = 1
)

// Template1 composes a title, a smaller subtitle below it, a barcode at the
// bottom on a white background and a rounded border ending above the
// barcode. With centered false the texts are indented 40 dots instead.
//
// The components are added to l and its code is returned. An invalid label
// yields "".
func Template1(l *label.Label, centered bool, titleText, subtitleText, barcodeText string) string {
	if !l.Valid() {
		zpl.Logger().Warn("cannot apply template to an invalid label", "template", 1)
		return ""
	}
	w, h := l.Width(), l.Height()

	title := zpl.NewText()
	title.SetID("title")
	title.SetLabelSize(w, h)
	title.SetText(titleText)
	title.SetMarginTop(40)
	if centered {
		title.SetAlignment(zpl.AlignCenter)
	} else {
		title.SetMarginLeft(40)
	}

	subtitle := zpl.NewText()
	subtitle.SetID("subtitle")
	subtitle.SetLabelSize(w, h)
	subtitle.SetText(subtitleText)
	subtitle.BelowOf(title)
	subtitle.SetFontSize(20)
	if centered {
		subtitle.SetAlignment(zpl.AlignCenter)
	} else {
		subtitle.SetMarginLeft(40)
	}

	barcode := bottomBarcode(w, h, barcodeText)
	barcode.ApplyBackground(zpl.ColorWhite, 10, 10)

	border := zpl.NewRectangle()
	border.SetID("borderBox")
	border.SetLabelSize(w, h)
	border.SetWidth(w)
	border.SetHeight(h)
	border.SetThickness(2)
	border.SetMargins(borderMargin, borderMargin, borderMargin, barcode.Size()-10)
	border.SetCornerRadius(borderCornerRadius)

	l.Add(border, title, subtitle, barcode)
	return l.Code()
}

// Template2 composes a large centered title underlined by a bar with a dot
// in its middle, a subtitle, an info line, a barcode at the bottom and a
// rounded border crossing the middle of the barcode.
func Template2(l *label.Label, titleText, subtitleText, infoText, barcodeText string) string {
	if !l.Valid() {
		zpl.Logger().Warn("cannot apply template to an invalid label", "template", 2)
		return ""
	}
	w, h := l.Width(), l.Height()

	title := zpl.NewText()
	title.SetID("title")
	title.SetLabelSize(w, h)
	title.SetText(titleText)
	title.SetMarginTop(50)
	title.SetFontSize(zpl.FontXLarge)
	title.SetAlignment(zpl.AlignCenter)

	line := zpl.NewRectangle()
	line.SetID("line below title")
	line.SetLabelSize(w, h)
	line.SetWidth(140)
	line.SetHeight(4)
	line.BelowOf(title)
	line.SetAlignment(zpl.AlignCenter)
	line.SetMarginTop(24)
	line.FillBackground()

	gap := zpl.NewRectangle()
	gap.SetID("center dot padding")
	gap.SetLabelSize(w, h)
	gap.SetWidth(36)
	gap.SetHeight(8)
	gap.SetMarginTop(24)
	gap.BelowOf(title)
	gap.SetAlignment(zpl.AlignCenter)
	gap.SetColor(zpl.ColorWhite)
	gap.FillBackground()

	dot := zpl.NewEllipse()
	dot.SetID("ellipse below title")
	dot.SetLabelSize(w, h)
	dot.SetWidth(18)
	dot.SetHeight(18)
	dot.SetMarginTop(17)
	dot.BelowOf(title)
	dot.SetAlignment(zpl.AlignCenter)
	dot.FillBackground()

	subtitle := zpl.NewText()
	subtitle.SetID("subtitle")
	subtitle.SetLabelSize(w, h)
	subtitle.SetText(subtitleText)
	subtitle.BelowOf(line)
	subtitle.SetFontSize(zpl.FontNormal)
	subtitle.SetMarginTop(40)
	subtitle.SetAlignment(zpl.AlignCenter)

	info := zpl.NewText()
	info.SetID("info")
	info.SetLabelSize(w, h)
	info.SetText(infoText)
	info.BelowOf(subtitle)
	info.SetFontSize(zpl.FontSmall)
	info.SetAlignment(zpl.AlignCenter)

	barcode := bottomBarcode(w, h, barcodeText)
	barcode.ApplyBackground(zpl.ColorWhite, 10, 0)

	border := zpl.NewRectangle()
	border.SetID("border")
	border.SetLabelSize(w, h)
	border.SetWidth(w)
	border.SetHeight(h)
	border.SetThickness(3)
	// the bottom edge runs through the middle of the barcode
	bottom := barcodeMarginBottom + barcode.Size()/2 + border.Thickness()/2
	border.SetMargins(borderMargin, borderMargin, borderMargin, bottom)
	border.SetCornerRadius(borderCornerRadius)

	l.Add(border, title, line, gap, dot, subtitle, info, barcode)
	return l.Code()
}

// bottomBarcode centers a barcode on the bottom edge, lifted by
// barcodeMarginBottom.
func bottomBarcode(w, h int, data string) *zpl.Barcode {
	b := zpl.NewBarcode(data)
	b.SetID("barcode")
	b.SetLabelSize(w, h)
	b.SetModuleWidth(barcodeModuleWidth)
	b.SetAlignment(zpl.AlignBottom)
	b.SetAlignment(zpl.AlignCenter)
	b.SetMarginBottom(barcodeMarginBottom)
	return b
}
