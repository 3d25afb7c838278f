package mylog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	base          zerolog.Logger
}

func newStandardLogger(componentName string) Logger {
	return NewWriterLogger(componentName, os.Stderr)
}

// NewWriterLogger logs to the given writer; LOG_FORMAT=json switches from console to json lines.
func NewWriterLogger(componentName string, w io.Writer) Logger {
	out := w
	if !strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return standardLogger{
		componentName: componentName,
		base: zerolog.New(out).
			With().
			Timestamp().
			Str("component", componentName).
			Logger().
			Level(parseLevel(os.Getenv("STOREFRONT_LOG_LEVEL"))),
	}
}

func (l standardLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	event := l.base.WithLevel(toZerologLevel(severity))
	if traceLabel != "" {
		event = event.Str("aggregate", traceLabel)
	}
	event.Msg(fmt.Sprintf(format, a...))
}

func toZerologLevel(severity Severity) zerolog.Level {
	switch severity {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityWarn:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func parseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
