package patch

import "log/slog"

// Logger is the interface that patchtools uses for structured logging.
//
// The interface is designed to be minimal yet compatible with popular
// logging libraries including log/slog, zap, and zerolog. It uses variadic
// key-value pairs for structured attributes, following the same convention
// as log/slog:
//
//	logger.Debug("applied operation", "op", "add", "path", "/a/b")
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
}

// NewSlogAdapter wraps a slog.Logger as a Logger. A nil argument wraps
// slog.Default().
func NewSlogAdapter(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogAdapter{logger: l}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, attrs ...any) { a.logger.Debug(msg, attrs...) }
func (a *slogAdapter) Info(msg string, attrs ...any)  { a.logger.Info(msg, attrs...) }
func (a *slogAdapter) Warn(msg string, attrs ...any)  { a.logger.Warn(msg, attrs...) }
func (a *slogAdapter) Error(msg string, attrs ...any) { a.logger.Error(msg, attrs...) }

// nopLogger discards everything; it is the default when no Logger is set.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
