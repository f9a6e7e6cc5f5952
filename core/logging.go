package core

import (
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the console logger, fanned out to logPath when it is set.
// The returned func closes the log file and must be called once the logger is
// no longer used.
func NewLogger(prefix string, level slog.Level, logPath string) (*slog.Logger, func() error, error) {
	closeLog := func() error { return nil }
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			NoColor:      !isatty.IsTerminal(os.Stderr.Fd()),
			CustomPrefix: prefix,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, nil, err
		}
		closeLog = f.Close
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(
		slogmulti.Fanout(handlers...)), closeLog, nil
}
