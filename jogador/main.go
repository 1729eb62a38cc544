// main.go - Two player position sharing over UDP
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sereneful/3980Project/game"
	"github.com/sereneful/3980Project/network"
	"github.com/sereneful/3980Project/shared"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:]))
}

func run(prog string, args []string) int {
	cfg, err := parseArgs(prog, args, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		return 2
	}

	logs, logFile, err := newLoggers(cfg.LogFile, cfg.DebugLevel)
	if err != nil {
		return fatal(err)
	}
	defer logFile.Close()

	ep, err := network.Resolve(cfg.Address, cfg.Port)
	if err != nil {
		logs.main.Errorf("%v", err)
		return fatal(err)
	}
	if ep.Role == shared.Host {
		fmt.Println("No IP address provided. Hosting the game...")
	} else {
		fmt.Printf("Attempting to connect to %s...\n", ep.Addr)
	}

	conn, err := network.Listen(ep)
	if err != nil {
		logs.net.Errorf("%v", err)
		return fatal(err)
	}
	// the only place the socket is released
	defer conn.Close()
	logs.net.Infof("Bound to %v as %v", network.LocalAddrPort(conn), ep.Role)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, ep, conn, logs); err != nil {
		logs.main.Errorf("%v", err)
		return fatal(err)
	}
	fmt.Println("Exiting...")
	return 0
}

// play runs the session until the player quits or ctx is cancelled.
func play(ctx context.Context, ep network.Endpoint, conn *net.UDPConn, logs loggers) error {
	session := game.NewSession(ep.Role)
	logs.main.Infof("Session %s started as %v", session.ID, session.Role)

	if err := interfaceStart(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer interfaceFinish()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan game.Key, 8)
	go interfaceReadKeys(ctx, keys)

	datagrams := make(chan network.Datagram, 8)
	loop := game.NewLoop(game.LoopConfig{
		Session:  session,
		Peers:    network.NewPeerDirectory(ep),
		Conn:     conn,
		Renderer: termboxRenderer{},
		Log:      logs.game,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return network.NewReceiver(conn, game.PollTimeout).Run(gctx, datagrams)
	})
	g.Go(func() error {
		// stop the receiver however the loop ends
		defer cancel()
		return loop.Run(gctx, datagrams, keys)
	})
	err := g.Wait()
	logs.main.Infof("Session %s ended", session.ID)
	return err
}

func fatal(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
