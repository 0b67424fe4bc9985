package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// hertzAdapter routes Hertz's internal client logging (dial failures,
// connection pool warnings) through the process-wide slog logger, so the
// HTTP layer and the application log to the same place in the same format.
type hertzAdapter struct {
	logger *slog.Logger
}

// RouteHertzLogs installs the slog adapter as the Hertz logger
func RouteHertzLogs(logger *slog.Logger) {
	hlog.SetLogger(&hertzAdapter{logger: logger})
}

func (h *hertzAdapter) Trace(v ...interface{})  { h.logger.Debug(sprint(v...)) }
func (h *hertzAdapter) Debug(v ...interface{})  { h.logger.Debug(sprint(v...)) }
func (h *hertzAdapter) Info(v ...interface{})   { h.logger.Info(sprint(v...)) }
func (h *hertzAdapter) Notice(v ...interface{}) { h.logger.Info(sprint(v...)) }
func (h *hertzAdapter) Warn(v ...interface{})   { h.logger.Warn(sprint(v...)) }
func (h *hertzAdapter) Error(v ...interface{})  { h.logger.Error(sprint(v...)) }
func (h *hertzAdapter) Fatal(v ...interface{})  { h.logger.Error(sprint(v...)) }

func (h *hertzAdapter) Tracef(format string, v ...interface{}) {
	h.logger.Debug(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Debugf(format string, v ...interface{}) {
	h.logger.Debug(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Infof(format string, v ...interface{}) {
	h.logger.Info(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Noticef(format string, v ...interface{}) {
	h.logger.Info(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Warnf(format string, v ...interface{}) {
	h.logger.Warn(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Errorf(format string, v ...interface{}) {
	h.logger.Error(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) Fatalf(format string, v ...interface{}) {
	h.logger.Error(fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.logger.DebugContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.logger.DebugContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.logger.InfoContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.logger.InfoContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.logger.WarnContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.logger.ErrorContext(ctx, fmt.Sprintf(format, v...))
}

func (h *hertzAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.logger.ErrorContext(ctx, fmt.Sprintf(format, v...))
}

// SetLevel is a no-op; the slog level is fixed at setup time
func (h *hertzAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the slog writer is fixed at setup time
func (h *hertzAdapter) SetOutput(writer io.Writer) {}

func sprint(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}
