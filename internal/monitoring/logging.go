package monitoring

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]interface{})
}

// ZapLogger writes structured log entries tagged with a component name.
type ZapLogger struct {
	component string
	base      *zap.Logger
}

// NewLogger returns a logger for component writing through base.
func NewLogger(component string, base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		component: component,
		base:      base,
	}
}

// NewZap builds the base logger: JSON for production, console for development.
func NewZap(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (l *ZapLogger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]interface{}) {
	fields := make([]zap.Field, 0, len(details)+2)
	fields = append(fields,
		zap.String("component", l.component),
		zap.String("event_type", eventType),
	)

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, details[k]))
	}

	switch level {
	case DEBUG:
		l.base.Debug(message, fields...)
	case INFO:
		l.base.Info(message, fields...)
	case WARN:
		l.base.Warn(message, fields...)
	default:
		l.base.Error(message, fields...)
	}
}
