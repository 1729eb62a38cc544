package network

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/sereneful/3980Project/shared"
)

// Listen opens the session socket. The host binds its endpoint, the client
// gets an ephemeral local port and sends to its fixed peer.
func Listen(ep Endpoint) (*net.UDPConn, error) {
	var laddr *net.UDPAddr
	if ep.Role == shared.Host {
		laddr = net.UDPAddrFromAddrPort(ep.Addr)
		if ep.Addr.Addr().IsUnspecified() {
			// dual-stack wildcard
			laddr = &net.UDPAddr{Port: int(ep.Addr.Port())}
		}
	}

	conn, err := net.ListenUDP(socketNetwork(ep), laddr)
	if err != nil {
		if ep.Role == shared.Host {
			return nil, fmt.Errorf("binding failed on port %d: %w", ep.Addr.Port(), err)
		}
		return nil, fmt.Errorf("socket creation failed: %w", err)
	}
	return conn, nil
}

func socketNetwork(ep Endpoint) string {
	if ep.Role == shared.Client && ep.Addr.Addr().Is4() {
		return "udp4"
	}
	return "udp"
}

// LocalAddrPort reports where conn is bound.
func LocalAddrPort(conn *net.UDPConn) netip.AddrPort {
	if a, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return a.AddrPort()
	}
	return netip.AddrPort{}
}
