package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New creates a logger for the named component.
var New func(name string) Logger = newZapLogger

type Logger interface {
	Log(c context.Context, traceLabel string, severity Severity, format string, a ...any)
}
