package main

import (
	"bytes"
	"errors"
	"flag"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decred/slog"
	"github.com/nsf/termbox-go"

	"github.com/sereneful/3980Project/game"
	"github.com/sereneful/3980Project/shared"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config
	}{
		{"host", []string{"9000"}, config{Port: "9000", LogFile: defaultLogFile, DebugLevel: slog.LevelInfo}},
		{"client", []string{"10.0.0.2", "9000"}, config{Address: "10.0.0.2", Port: "9000", LogFile: defaultLogFile, DebugLevel: slog.LevelInfo}},
		{"options", []string{"-logfile", "-", "-debuglevel", "trace", "::1", "80"}, config{Address: "::1", Port: "80", LogFile: "-", DebugLevel: slog.LevelTrace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := parseArgs("game", tt.args, &stderr)
			if err != nil {
				t.Fatalf("parseArgs: %v (%s)", err, stderr.String())
			}
			if got != tt.want {
				t.Errorf("parseArgs = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"no args", nil, errUsage},
		{"too many", []string{"a", "b", "c"}, errUsage},
		{"unknown option", []string{"-x", "9000"}, errUsage},
		{"bad level", []string{"-debuglevel", "loud", "9000"}, errUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := parseArgs("game", tt.args, &stderr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.Contains(stderr.String(), "Usage: game") {
				t.Errorf("usage not printed: %q", stderr.String())
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "game.log")
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-h"}, 0},
		{"usage", []string{"1", "2", "3"}, 2},
		{"bad port", []string{"-logfile", logPath, "70000"}, 1},
		{"bad address", []string{"-logfile", logPath, "not-an-ip", "9000"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run("game", tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "not-an-ip") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logs, closer, err := newLoggers(path, slog.LevelWarn)
	if err != nil {
		t.Fatal(err)
	}
	logs.game.Infof("hidden")
	logs.net.Warnf("shown")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "NETW: shown") {
		t.Errorf("log = %q", data)
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   termbox.Event
		want game.Key
	}{
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, game.KeyUp},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, game.KeyDown},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, game.KeyLeft},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, game.KeyRight},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, game.KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, game.KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Ch: 'd'}, game.KeyRight},
		{termbox.Event{Type: termbox.EventKey, Ch: 'q'}, game.KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Ch: 'z'}, game.KeyNone},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, game.KeyNone},
	}
	for _, tt := range tests {
		if got := keyFromEvent(tt.ev); got != tt.want {
			t.Errorf("keyFromEvent(%+v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	f := game.Frame{SessionID: "0123456789abcdef", Role: shared.Host}
	if got := statusLine(f); got != "host 01234567 | waiting for a peer" {
		t.Errorf("statusLine = %q", got)
	}
	f.Role = shared.Client
	f.Peer = netip.MustParseAddrPort("127.0.0.1:9000")
	if got := statusLine(f); got != "client 01234567 | peer 127.0.0.1:9000" {
		t.Errorf("statusLine = %q", got)
	}
	if roleColor(shared.Host) != termbox.ColorRed || roleColor(shared.Client) != termbox.ColorBlue {
		t.Error("role colours")
	}
}
