package main

import (
	"io"
	"os"

	"github.com/decred/slog"
)

// loggers for each part of the program, all sharing one backend
type loggers struct {
	main, net, game slog.Logger
}

// newLoggers opens the log destination. The terminal belongs to termbox
// while the game runs, so logs go to a file unless path is "-".
func newLoggers(path string, level slog.Level) (loggers, io.Closer, error) {
	var w io.WriteCloser = nopCloser{os.Stderr}
	if path != "-" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return loggers{}, nil, err
		}
		w = f
	}

	backend := slog.NewBackend(w)
	l := loggers{
		main: backend.Logger("MAIN"),
		net:  backend.Logger("NETW"),
		game: backend.Logger("GAME"),
	}
	for _, lg := range []slog.Logger{l.main, l.net, l.game} {
		lg.SetLevel(level)
	}
	return l, w, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
