package network

import (
	"net/netip"

	"github.com/sereneful/3980Project/shared"
)

// PeerDirectory holds the address of the single remote peer.
//
// A client knows it from the command line. A host starts empty and adopts
// the source of the first datagram it receives; that address is then kept
// for the rest of the session even if other sources show up.
//
// It belongs to the event loop and is not safe for concurrent use.
type PeerDirectory struct {
	addr netip.AddrPort
}

// NewPeerDirectory seeds the directory from the resolved endpoint.
func NewPeerDirectory(ep Endpoint) *PeerDirectory {
	d := &PeerDirectory{}
	if ep.Role == shared.Client {
		d.addr = ep.Addr
	}
	return d
}

// Learn records from as the peer if none is known yet and reports
// whether it did.
func (d *PeerDirectory) Learn(from netip.AddrPort) bool {
	if !from.IsValid() {
		return false
	}
	if d.addr.IsValid() {
		return false
	}
	d.addr = netip.AddrPortFrom(from.Addr().Unmap(), from.Port())
	return true
}

// Addr returns the peer address, ok is false while it is unknown.
func (d *PeerDirectory) Addr() (addr netip.AddrPort, ok bool) {
	return d.addr, d.addr.IsValid()
}

// Known is true once there is somewhere to send.
func (d *PeerDirectory) Known() bool {
	_, ok := d.Addr()
	return ok
}

// Is reports whether from is the learned peer.
func (d *PeerDirectory) Is(from netip.AddrPort) bool {
	addr, ok := d.Addr()
	return ok && addr == netip.AddrPortFrom(from.Addr().Unmap(), from.Port())
}
