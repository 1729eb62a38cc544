// loop.go - Single goroutine event loop: socket, keyboard, render
package game

import (
	"context"
	"net/netip"
	"time"

	"github.com/decred/slog"

	"github.com/sereneful/3980Project/network"
	"github.com/sereneful/3980Project/shared"
)

// PollTimeout bounds every wait of the loop, so cancellation is seen
// even when nothing happens on the network or the keyboard.
const PollTimeout = 100 * time.Millisecond

// Frame is everything the renderer needs for one redraw
type Frame struct {
	SessionID string
	Role      shared.Role
	Markers   []Marker
	Peer      netip.AddrPort // invalid until known
}

type Renderer interface {
	Render(Frame)
}

// PacketWriter is the sending half of the session socket
type PacketWriter interface {
	WriteToUDPAddrPort(b []byte, addr netip.AddrPort) (int, error)
}

type LoopConfig struct {
	Session  *Session
	Peers    *network.PeerDirectory
	Conn     PacketWriter
	Renderer Renderer
	Log      slog.Logger
	Timeout  time.Duration // PollTimeout when zero
}

// Loop multiplexes inbound datagrams and key presses. All session state is
// read and written from the goroutine running Run.
type Loop struct {
	session  *Session
	peers    *network.PeerDirectory
	conn     PacketWriter
	renderer Renderer
	log      slog.Logger
	timeout  time.Duration
}

func NewLoop(cfg LoopConfig) *Loop {
	l := &Loop{
		session:  cfg.Session,
		peers:    cfg.Peers,
		conn:     cfg.Conn,
		renderer: cfg.Renderer,
		log:      cfg.Log,
		timeout:  cfg.Timeout,
	}
	if l.log == nil {
		l.log = slog.Disabled
	}
	if l.timeout <= 0 {
		l.timeout = PollTimeout
	}
	return l
}

// Run announces our position, draws the first frame and then serves both
// sources until ctx is done, the player quits or the input source closes.
func (l *Loop) Run(ctx context.Context, datagrams <-chan network.Datagram, keys <-chan Key) error {
	l.sendOwn()
	l.render()

	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		timer.Reset(l.timeout)

		var (
			d              network.Datagram
			k              Key
			gotD, gotK, ok bool
		)
		select {
		case <-ctx.Done():
			return nil
		case d, ok = <-datagrams:
			if !ok {
				datagrams = nil
			}
			gotD = ok
		case k, ok = <-keys:
			if !ok {
				l.log.Infof("Input closed, leaving the session")
				return nil
			}
			gotK = true
		case <-timer.C:
			continue
		}

		// Whichever source woke us, the other one is checked too.
		if !gotD && datagrams != nil {
			select {
			case d, ok = <-datagrams:
				if !ok {
					datagrams = nil
				}
				gotD = ok
			default:
			}
		}
		if !gotK {
			select {
			case k, ok = <-keys:
				if !ok {
					if gotD {
						l.handleDatagram(d)
					}
					l.log.Infof("Input closed, leaving the session")
					return nil
				}
				gotK = true
			default:
			}
		}

		if gotD {
			l.handleDatagram(d)
		}
		if gotK {
			if k == KeyQuit {
				l.log.Infof("Quit requested")
				return nil
			}
			l.handleKey(k)
		}
	}
}

func (l *Loop) handleDatagram(d network.Datagram) {
	if d.Err != nil {
		l.log.Warnf("Receive failed: %v", d.Err)
		return
	}

	if l.peers.Learn(d.From) {
		l.log.Infof("Peer is %v", d.From)
	} else if !l.peers.Is(d.From) {
		l.log.Debugf("Datagram from %v, still replying to the first peer", d.From)
	}

	p, err := shared.Decode(d.Payload)
	if err != nil {
		l.log.Warnf("Dropping packet from %v: %v", d.From, err)
		return
	}
	l.log.Tracef("Opponent at (%d,%d) state %q", p.X, p.Y, p.State)

	l.session.ApplyOpponentUpdate(p.X, p.Y)
	if l.session.Role == shared.Host {
		// the reply doubles as acknowledgement and heartbeat
		l.sendOwn()
	}
	l.render()
}

func (l *Loop) handleKey(k Key) {
	l.session.MoveOwn(k.Direction())
	l.sendOwn()
	l.render()
}

// sendOwn sends our position to the peer, or does nothing while the
// peer is unknown. Failures are logged and the session carries on.
func (l *Loop) sendOwn() bool {
	addr, ok := l.peers.Addr()
	if !ok {
		return false
	}
	own := l.session.Own()
	data, err := shared.Encode(shared.Packet{X: own.X, Y: own.Y, State: shared.StateUpdate})
	if err != nil {
		l.log.Errorf("Encode position: %v", err)
		return false
	}
	if _, err := l.conn.WriteToUDPAddrPort(data, addr); err != nil {
		l.log.Errorf("Failed to send position to %v: %v", addr, err)
		return false
	}
	return true
}

func (l *Loop) render() {
	peer, _ := l.peers.Addr()
	l.renderer.Render(Frame{
		SessionID: l.session.ID,
		Role:      l.session.Role,
		Markers:   l.session.Markers(),
		Peer:      peer,
	})
}
