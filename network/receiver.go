package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/sereneful/3980Project/shared"
)

// Datagram is one inbound packet, or the error that replaced it.
type Datagram struct {
	Payload []byte
	From    netip.AddrPort
	Err     error
}

// Receiver pumps datagrams from the socket to the event loop. It never
// touches session state; every read gets a fresh buffer that the loop then
// owns.
type Receiver struct {
	conn *net.UDPConn
	wait time.Duration
}

// NewReceiver reads from conn, waking at least every wait to check for
// cancellation.
func NewReceiver(conn *net.UDPConn, wait time.Duration) *Receiver {
	return &Receiver{conn: conn, wait: wait}
}

// Run forwards datagrams to out until ctx is done or the socket is closed.
func (r *Receiver) Run(ctx context.Context, out chan<- Datagram) error {
	for ctx.Err() == nil {
		if err := r.conn.SetReadDeadline(time.Now().Add(r.wait)); err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("set read deadline: %w", err)
		}

		buf := make([]byte, shared.BufferSize)
		n, from, err := r.conn.ReadFromUDPAddrPort(buf[:shared.BufferSize-1])
		var d Datagram
		switch {
		case errors.Is(err, os.ErrDeadlineExceeded):
			continue
		case errors.Is(err, net.ErrClosed):
			return nil
		case err != nil:
			d = Datagram{Err: fmt.Errorf("recvfrom: %w", err)}
		case n == 0:
			continue
		default:
			d = Datagram{Payload: buf[:n], From: from}
		}

		select {
		case out <- d:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}
