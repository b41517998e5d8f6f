package zpl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/zlabel/zpl"
)

func TestBarcodeLength(t *testing.T) {
	b := zpl.NewBarcode("1234546789")
	b.SetModuleWidth(2)
	assert.Equal(t, 288, b.Length())

	b.SetModuleWidth(0)
	assert.Equal(t, 2, b.ModuleWidth(), "module width below 1 must be ignored")

	b.SetOrientation(zpl.OrientationRotated)
	assert.Equal(t, 0, b.Length())
}

func TestBarcodeSize(t *testing.T) {
	b := zpl.NewBarcode("42")
	assert.Equal(t, 60, b.Size())

	b.SetTextPlacement(zpl.TextAbove)
	assert.Equal(t, 60, b.Size())

	b.SetTextPlacement(zpl.TextBelow)
	assert.Equal(t, 90, b.Size())

	b.SetHeight(100)
	assert.Equal(t, 130, b.Size())
}

func TestBarcodeDefaultInstruction(t *testing.T) {
	b := zpl.NewBarcode("1234546789")
	b.GenerateInstruction()
	assert.Equal(t, "^FO0,0^BY 3^BCN,60,N,N,N,N^FD1234546789^FS", b.Instruction())
}

func TestBarcodeFlags(t *testing.T) {
	tests := []struct {
		name      string
		placement zpl.TextPlacement
		check     bool
		mode      zpl.BarcodeMode
		want      string
	}{
		{"none", zpl.NoText, false, zpl.ModeNone, "^BCN,60,N,N,N,N"},
		{"above", zpl.TextAbove, false, zpl.ModeUCC, "^BCN,60,Y,Y,N,U"},
		{"below with check digit", zpl.TextBelow, true, zpl.ModeAutomatic, "^BCN,60,Y,N,Y,A"},
		{"new mode", zpl.NoText, true, zpl.ModeNew, "^BCN,60,N,N,Y,D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := zpl.NewBarcode("A1")
			b.SetTextPlacement(tt.placement)
			b.SetCheckDigit(tt.check)
			b.SetMode(tt.mode)
			b.GenerateInstruction()
			assert.Contains(t, b.Instruction(), tt.want+"^FDA1^FS")
		})
	}
}

func TestBarcodeRejectsUnknownTokens(t *testing.T) {
	b := zpl.NewBarcode("x")
	b.SetMode("Z")
	b.SetOrientation("sideways")
	b.SetHeight(0)
	b.SetTextPlacement(zpl.TextPlacement(7))
	assert.Equal(t, zpl.ModeNone, b.Mode())
	assert.Equal(t, zpl.OrientationNormal, b.Orientation())
	assert.Equal(t, zpl.DefaultBarcodeHeight, b.Height())
	assert.Equal(t, zpl.NoText, b.TextPlacement())
}

func TestBarcodeAlignment(t *testing.T) {
	b := zpl.NewBarcode("1234546789")
	b.SetLabelSize(812, 406)
	b.SetModuleWidth(2)

	b.SetAlignment(zpl.AlignCenter)
	assert.Equal(t, 262, b.X())

	b.SetAlignment(zpl.AlignRight)
	assert.Equal(t, 524, b.X())

	b.SetAlignment(zpl.AlignBottom)
	assert.Equal(t, 346, b.Y())

	b.SetAlignment(zpl.AlignLeft)
	assert.Equal(t, 0, b.X())
}

func TestBarcodeAlignmentOutsideNormalOrientation(t *testing.T) {
	b := zpl.NewBarcodeAt(50, 70, "1234", 812)
	b.SetLabelSize(812, 406)
	b.SetOrientation(zpl.OrientationInverted)

	b.SetAlignment(zpl.AlignRight)
	b.SetAlignment(zpl.AlignBottom)
	assert.Equal(t, 50, b.X())
	assert.Equal(t, 70, b.Y())

	// center has no orientation guard; the length is 0 here
	b.SetAlignment(zpl.AlignCenter)
	assert.Equal(t, 406, b.X())
}

func TestBarcodeMarginRightMovesOrigin(t *testing.T) {
	b := zpl.NewBarcodeAt(100, 100, "1", 812)
	b.SetMarginRight(20)
	b.SetMarginBottom(30)
	assert.Equal(t, 80, b.X())
	assert.Equal(t, 70, b.Y())
	assert.Equal(t, 812, b.LabelWidth())

	b = zpl.NewBarcode("1")
	b.SetMargin(10)
	assert.Equal(t, -10, b.X())
	assert.Equal(t, -10, b.Y())
}

func TestBarcodeBackground(t *testing.T) {
	b := zpl.NewBarcode("1234546789")
	b.SetLabelSize(812, 1218)
	b.SetModuleWidth(2)
	b.SetAlignment(zpl.AlignBottom)
	b.SetAlignment(zpl.AlignCenter)
	b.SetMarginBottom(20)
	b.ApplyBackground(zpl.ColorWhite, 10, 10)

	bg := b.Background()
	require.NotNil(t, bg)
	assert.Equal(t, b.Length()+20, bg.Width())
	assert.Equal(t, 60+20, bg.Height())
	assert.Equal(t, 40, bg.Thickness())
	assert.Equal(t, 252, bg.X())
	assert.Equal(t, 1128, bg.Y())

	b.GenerateInstruction()
	assert.Equal(t,
		"^FO252,1128^GB308,80,40,W,0^FS\n^FO262,1138^BY 2^BCN,60,N,N,N,N^FD1234546789^FS",
		b.Instruction())
}

func TestBarcodeBackgroundCoercion(t *testing.T) {
	b := zpl.NewBarcode("1234546789")
	b.SetModuleWidth(2)
	b.ApplyBackground("green", -5, -1)

	bg := b.Background()
	require.NotNil(t, bg)
	assert.Equal(t, zpl.ColorWhite, bg.Color())
	assert.Equal(t, 288, bg.Width())
	assert.Equal(t, 60, bg.Height())
	assert.Equal(t, 30, bg.Thickness())
	assert.Equal(t, 0, bg.X())

	b.ApplyBackground(zpl.ColorBlack, 0, 0)
	assert.Equal(t, zpl.ColorBlack, b.Background().Color())

	b.RemoveBackground()
	b.GenerateInstruction()
	assert.False(t, strings.Contains(b.Instruction(), "^GB"))
}

func TestBarcodeRegenerationIsStable(t *testing.T) {
	b := zpl.NewBarcode("ABC")
	b.ApplyBackground(zpl.ColorWhite, 4, 4)
	b.GenerateInstruction()
	first := b.Instruction()
	b.GenerateInstruction()
	assert.Equal(t, first, b.Instruction())
	assert.Equal(t, 1, strings.Count(first, "\n"))
}
