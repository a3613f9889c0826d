package glcontext

import (
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/metrics"
)

// Debug output severities (KHR_debug).
const (
	SeverityHigh         = 0x9146
	SeverityMedium       = 0x9147
	SeverityLow          = 0x9148
	SeverityNotification = 0x826B
)

// Diagnostic is one message from the driver's debug output.
type Diagnostic struct {
	Source   uint32
	Category uint32
	ID       uint32
	Severity uint32
	Message  string
}

type DiagnosticFunc func(Diagnostic)

// RouteDiagnostic writes d to the tier its severity belongs to. Diagnostics
// never affect control flow.
func RouteDiagnostic(l *log.Logger, d Diagnostic) {
	switch d.Severity {
	case SeverityHigh:
		metrics.Diagnostics.WithLabelValues("critical").Inc()
		l.Critical("GL [src %#x type %#x id %d] %s", d.Source, d.Category, d.ID, d.Message)
	case SeverityMedium:
		metrics.Diagnostics.WithLabelValues("error").Inc()
		l.Error("GL [src %#x type %#x id %d] %s", d.Source, d.Category, d.ID, d.Message)
	case SeverityLow:
		metrics.Diagnostics.WithLabelValues("warn").Inc()
		l.Warn("GL [src %#x type %#x id %d] %s", d.Source, d.Category, d.ID, d.Message)
	case SeverityNotification:
		metrics.Diagnostics.WithLabelValues("trace").Inc()
		l.Trace("GL [src %#x type %#x id %d] %s", d.Source, d.Category, d.ID, d.Message)
	default:
		metrics.Diagnostics.WithLabelValues("debug").Inc()
		l.Debug("GL [src %#x type %#x id %d] unrecognised severity %#x, logging at debug: %s",
			d.Source, d.Category, d.ID, d.Severity, d.Message)
	}
}
