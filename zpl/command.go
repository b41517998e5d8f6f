package zpl

import (
	"strconv"
	"strings"
)

const (
	cmdFieldOrigin    = "^FO"
	cmdFieldSeparator = "^FS"
	cmdFieldData      = "^FD"
	cmdFieldHex       = "^FH_"
	cmdFieldBlock     = "^FB"
	cmdFont           = "^A"
	cmdGraphicBox     = "^GB"
	cmdGraphicEllipse = "^GE"
	cmdGraphicDiag    = "^GD"
	cmdBarDefaults    = "^BY "
	cmdCode128        = "^BC"

	// continuation marker closing the data of a field block
	textContinuation = `\&`
	// scalable font used by every Text
	defaultFont = "0"
)

// commandWriter accumulates one component's command stream.
type commandWriter struct {
	b strings.Builder
}

// command writes name followed by its comma separated parameters.
func (w *commandWriter) command(name string, params ...string) {
	w.b.WriteString(name)
	for i, p := range params {
		if i > 0 {
			w.b.WriteByte(',')
		}
		w.b.WriteString(p)
	}
}

func (w *commandWriter) origin(x, y int) {
	w.command(cmdFieldOrigin, strconv.Itoa(x), strconv.Itoa(y))
}

func (w *commandWriter) data(payload string) {
	w.b.WriteString(cmdFieldData)
	w.b.WriteString(payload)
}

func (w *commandWriter) end() {
	w.b.WriteString(cmdFieldSeparator)
}

func (w *commandWriter) raw(s string) {
	w.b.WriteString(s)
}

func (w *commandWriter) String() string {
	return w.b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }
