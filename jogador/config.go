package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/decred/slog"
)

const defaultLogFile = "game.log"

var errUsage = errors.New("usage")

// config is everything read from the command line
type config struct {
	Address    string // empty when hosting
	Port       string
	LogFile    string // "-" logs to stderr
	DebugLevel slog.Level
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [-h] [-logfile file] [-debuglevel level] [<IP address>] <port>\n", prog)
	fmt.Fprintf(w, "  With only a port the game is hosted on that port, with an address it connects to it.\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "  -h                 Display this help message\n")
	fmt.Fprintf(w, "  -logfile file      Write logs to file, - for stderr (default %s)\n", defaultLogFile)
	fmt.Fprintf(w, "  -debuglevel level  trace, debug, info, warn, error, critical or off (default info)\n")
}

// parseArgs returns flag.ErrHelp for -h and errUsage (after printing
// usage) for anything it cannot accept.
func parseArgs(prog string, args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, prog) }
	fs.StringVar(&cfg.LogFile, "logfile", defaultLogFile, "")
	level := fs.String("debuglevel", "info", "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, errUsage
	}

	lvl, ok := slog.LevelFromString(*level)
	if !ok {
		fmt.Fprintf(stderr, "Unknown debug level %q.\n", *level)
		usage(stderr, prog)
		return cfg, errUsage
	}
	cfg.DebugLevel = lvl

	switch fs.NArg() {
	case 1:
		cfg.Port = fs.Arg(0)
	case 2:
		cfg.Address = fs.Arg(0)
		cfg.Port = fs.Arg(1)
	default:
		fmt.Fprintln(stderr, "Provide either a port to host or an IP and port to connect.")
		usage(stderr, prog)
		return cfg, errUsage
	}
	return cfg, nil
}
