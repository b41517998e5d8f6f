package zpl

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var diagnostics atomic.Pointer[log.Logger]

func init() {
	diagnostics.Store(log.New(io.Discard))
}

// SetLogger installs the logger that receives warnings about rejected setter
// input. A nil logger discards warnings, which is also the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	diagnostics.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *log.Logger {
	return diagnostics.Load()
}

// reject reports a setter value that was not applied.
func reject(p *Positionable, field string, value any, reason string) {
	keyvals := []any{"component", p.kind, "field", field, "value", value}
	if p.id != "" {
		keyvals = append(keyvals, "id", p.id)
	}
	diagnostics.Load().Warn(reason, keyvals...)
}
