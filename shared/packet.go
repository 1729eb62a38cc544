// packet.go - Text codec for position datagrams: "x,y|state"
package shared

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedPacket = errors.New("malformed packet")
	ErrPacketTooLarge  = errors.New("packet does not fit the buffer")
)

// Packet is one position report sent between peers
type Packet struct {
	X, Y  int
	State string
}

// Encode renders p as "x,y|state". The text plus its terminator must fit
// in BufferSize, nothing is truncated.
func Encode(p Packet) ([]byte, error) {
	buf := make([]byte, 0, 16+len(p.State))
	buf = strconv.AppendInt(buf, int64(p.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(p.Y), 10)
	buf = append(buf, '|')
	buf = append(buf, p.State...)
	if len(buf)+1 > BufferSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, len(buf))
	}
	return buf, nil
}

// Decode parses "x,y|state" left to right. The state runs up to the next
// '|' (if any) and is cut to BufferSize-1 bytes.
func Decode(data []byte) (Packet, error) {
	var p Packet

	xTok, rest, ok := bytes.Cut(data, []byte{','})
	if len(xTok) == 0 {
		return p, fmt.Errorf("%w: missing x coordinate in %q", ErrMalformedPacket, data)
	}
	x, err := strconv.Atoi(string(xTok))
	if err != nil {
		return p, fmt.Errorf("%w: invalid x coordinate %q", ErrMalformedPacket, xTok)
	}
	if !ok {
		return p, fmt.Errorf("%w: missing y coordinate in %q", ErrMalformedPacket, data)
	}

	yTok, rest, ok := bytes.Cut(rest, []byte{'|'})
	if len(yTok) == 0 {
		return p, fmt.Errorf("%w: missing y coordinate in %q", ErrMalformedPacket, data)
	}
	y, err := strconv.Atoi(string(yTok))
	if err != nil {
		return p, fmt.Errorf("%w: invalid y coordinate %q", ErrMalformedPacket, yTok)
	}
	if !ok {
		return p, fmt.Errorf("%w: missing state in %q", ErrMalformedPacket, data)
	}

	state, _, _ := bytes.Cut(rest, []byte{'|'})
	if len(state) == 0 {
		return p, fmt.Errorf("%w: missing state in %q", ErrMalformedPacket, data)
	}
	if len(state) > BufferSize-1 {
		state = state[:BufferSize-1]
	}

	p.X, p.Y, p.State = x, y, string(state)
	return p, nil
}
