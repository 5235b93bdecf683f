package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger every command shares: level-filtered, with
// wall-clock stamps down to hundredths of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch times one step of a command (reading edges, rendering SVG).
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// stop emits a debug event for the step, with its duration appended as
// "elapsed".
func (s *stopwatch) stop(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Microsecond))
	s.logger.Debug(msg, keyvals...)
}

// loggerKey indexes the command logger in a context.
type loggerKey struct{}

// withLogger attaches l to ctx for the commands and the builder.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger set by withLogger, falling back to
// log.Default() outside a command run (for example in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
