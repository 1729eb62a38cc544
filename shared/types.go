// types.go - Shared position and role types between host and client
package shared

import "fmt"

const (
	GridSize   = 20   // side of the toroidal grid
	BufferSize = 1024 // datagram buffer, terminator included

	// StateUpdate is the only game state label sent today
	StateUpdate = "update"
)

// Role says which end of the session this process is
type Role int

const (
	Host Role = iota
	Client
)

func (r Role) String() string {
	switch r {
	case Host:
		return "host"
	case Client:
		return "client"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Opponent returns the role of the remote peer
func (r Role) Opponent() Role {
	if r == Host {
		return Client
	}
	return Host
}

// Position is a cell on the grid
type Position struct {
	X, Y int
}

// Unknown marks a position nobody has reported yet
var Unknown = Position{X: -1, Y: -1}

// Start is where every player begins
var Start = Position{X: GridSize / 2, Y: GridSize / 2}

// Known is false until the peer has sent a position
func (p Position) Known() bool {
	return p.X >= 0 && p.Y >= 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
