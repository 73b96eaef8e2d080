package logx

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
	"pkt.systems/pslog"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// New builds a console logger for the CLI. An empty level keeps the
// environment-driven default.
func New(w io.Writer, level string) (pslog.Logger, error) {
	opts := pslog.Options{Mode: pslog.ModeConsole}
	if strings.TrimSpace(level) == "" {
		return pslog.LoggerFromEnv(pslog.WithEnvWriter(w), pslog.WithEnvOptions(opts)), nil
	}
	if err := setMinLevel(&opts, level); err != nil {
		return nil, err
	}
	return pslog.NewWithOptions(w, opts), nil
}

func setMinLevel(opts *pslog.Options, level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return fmt.Errorf("unknown log level %q (want trace, debug, info, warn or error)", level)
	}
	return nil
}

// WithTask annotates the logger with a task id when present.
func WithTask(log pslog.Logger, id domain.TaskID) pslog.Logger {
	if id != "" {
		log = log.With("task", string(id))
	}
	return log
}

// WithRequest annotates the logger with the HTTP method and path.
func WithRequest(log pslog.Logger, method, path string) pslog.Logger {
	if method != "" {
		log = log.With("method", method)
	}
	if path != "" {
		log = log.With("path", path)
	}
	return log
}
