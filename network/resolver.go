package network

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/sereneful/3980Project/shared"
)

var (
	ErrInvalidPort       = errors.New("invalid port")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrUnsupportedFamily = errors.New("unsupported address family")
)

// Endpoint is the outcome of resolving the command line: a host binds Addr,
// a client sends to Addr.
type Endpoint struct {
	Role shared.Role
	Addr netip.AddrPort
}

// Resolve turns the optional remote address and the port into a role.
// An empty address means we host on every local interface.
func Resolve(address, port string) (Endpoint, error) {
	p, err := ParsePort(port)
	if err != nil {
		return Endpoint{}, err
	}

	if address == "" {
		return Endpoint{
			Role: shared.Host,
			Addr: netip.AddrPortFrom(netip.IPv6Unspecified(), p),
		}, nil
	}

	ip, err := netip.ParseAddr(address)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %s is not an IPv4 or an IPv6 address", ErrInvalidAddress, address)
	}
	if !ip.Is4() && !ip.Is6() {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrUnsupportedFamily, address)
	}

	return Endpoint{
		Role: shared.Client,
		Addr: netip.AddrPortFrom(ip.Unmap(), p),
	}, nil
}

// ParsePort accepts decimal ports in [0, 65535].
func ParsePort(s string) (uint16, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: the port is required", ErrInvalidPort)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid characters in %q", ErrInvalidPort, s)
		}
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidPort, s)
	}
	return uint16(v), nil
}
