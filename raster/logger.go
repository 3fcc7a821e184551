package raster

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger replaces the package-wide logger used to report conditions
// such as a non-multiple-of-3 attribute buffer. Passing nil restores the
// no-op default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}

// Logger returns the package-wide logger.
func Logger() *slog.Logger {
	return logger.Load()
}
