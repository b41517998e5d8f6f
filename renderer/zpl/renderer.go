package zplrenderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ByLCY/zlabel/config"
	"github.com/ByLCY/zlabel/label"
	"github.com/ByLCY/zlabel/layout"
	"github.com/ByLCY/zlabel/renderer"
)

const (
	formatStart = "^XA"
	formatEnd   = "^XZ"
	printWidth  = "^PW"
	labelLength = "^LL"
	encodingUTF = "^CI28"
)

// Renderer wraps every compiled label in its own ^XA ... ^XZ format.
type Renderer struct {
	opts   config.OutputConfig
	logger *log.Logger
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer. A nil logger discards.
func NewRenderer(opts config.OutputConfig, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{opts: opts, logger: logger}
}

// Render writes one format per label, in document order.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Labels) == 0 {
		return nil, fmt.Errorf("没有可输出的标签")
	}
	var buf bytes.Buffer
	for _, c := range result.Labels {
		if c == nil || c.Label == nil {
			return nil, fmt.Errorf("标签结果为空")
		}
		if err := r.WriteLabel(&buf, c.Label); err != nil {
			return nil, fmt.Errorf("label %s: %w", c.Name, err)
		}
		r.logger.Debug("label rendered", "label", c.Name, "components", len(c.Label.Components()))
	}
	return buf.Bytes(), nil
}

// WriteLabel appends a single label format to buf.
func (r *Renderer) WriteLabel(buf *bytes.Buffer, l *label.Label) error {
	if !l.Valid() {
		return fmt.Errorf("标签尺寸无效")
	}
	r.WriteFormat(buf, l.Width(), l.Height(), l.Code())
	return nil
}

// WriteFormat wraps already generated label code of a width by height dots
// canvas.
func (r *Renderer) WriteFormat(buf *bytes.Buffer, width, height int, code string) {
	buf.WriteString(formatStart)
	buf.WriteByte('\n')
	if r.opts.UTF8 {
		buf.WriteString(encodingUTF)
		buf.WriteByte('\n')
	}
	if r.opts.Header {
		buf.WriteString(printWidth + strconv.Itoa(width))
		buf.WriteByte('\n')
		buf.WriteString(labelLength + strconv.Itoa(height))
		buf.WriteByte('\n')
	}
	if code != "" {
		buf.WriteString(code)
		buf.WriteByte('\n')
	}
	buf.WriteString(formatEnd)
	buf.WriteByte('\n')
}
