package mylog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
)

var (
	baseLogger     *zap.Logger
	baseLoggerOnce sync.Once
)

// Production logs are shipped to Cloud Logging, which recognizes these field names.
const (
	traceFieldName     = "logging.googleapis.com/trace"
	aggregateFieldName = "aggregate"
	componentFieldName = "component"
)

func isProduction() bool {
	return os.Getenv("GOOGLE_CLOUD_PROJECT") != "" || os.Getenv("ENV") == "production"
}

func getBaseLogger() *zap.Logger {
	baseLoggerOnce.Do(func() {
		var config zap.Config
		if isProduction() {
			config = zap.NewProductionConfig()
			config.EncoderConfig.LevelKey = "severity"
			config.EncoderConfig.MessageKey = "message"
			config.EncoderConfig.TimeKey = "time"
			config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			config.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		} else {
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		logger, err := config.Build(zap.AddCallerSkip(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error building logger, falling back to nop: %s\n", err)
			logger = zap.NewNop()
		}
		baseLogger = logger
	})
	return baseLogger
}

// Sync flushes buffered log entries. Call it before the process exits.
func Sync() {
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}

type zapLogger struct {
	logger *zap.Logger
}

func newZapLogger(componentName string) Logger {
	return NewWithZap(getBaseLogger(), componentName)
}

// NewWithZap builds a Logger on top of an existing zap logger.
func NewWithZap(logger *zap.Logger, componentName string) Logger {
	return zapLogger{
		logger: logger.With(zap.String(componentFieldName, componentName)),
	}
}

func (l zapLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := make([]zap.Field, 0, 2)
	if traceLabel != "" {
		fields = append(fields, zap.String(aggregateFieldName, traceLabel))
	}
	if trace := mycontext.TraceFromContext(c); trace != "" {
		fields = append(fields, zap.String(traceFieldName, trace))
	}

	msg := fmt.Sprintf(format, a...)

	switch severity {
	case SeverityDebug:
		l.logger.Debug(msg, fields...)
	case SeverityWarn:
		l.logger.Warn(msg, fields...)
	case SeverityError:
		l.logger.Error(msg, fields...)
	default:
		l.logger.Info(msg, fields...)
	}
}
