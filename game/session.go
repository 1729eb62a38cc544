// session.go - Positions of both players, indexed by role
package game

import (
	"github.com/google/uuid"

	"github.com/sereneful/3980Project/shared"
)

// Session is the state owned by the event loop for the lifetime of the
// process. Only the loop goroutine may touch it.
type Session struct {
	ID   string
	Role shared.Role

	positions [2]shared.Position // indexed by shared.Role
}

// NewSession starts our player at the centre of the grid and the opponent
// at an unknown position.
func NewSession(role shared.Role) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		Role: role,
	}
	s.positions[role] = shared.Start
	s.positions[role.Opponent()] = shared.Unknown
	return s
}

func (s *Session) Own() shared.Position { return s.positions[s.Role] }
func (s *Session) Opponent() shared.Position { return s.positions[s.Role.Opponent()] }

// MoveOwn steps our player one cell, wrapping at the edges.
func (s *Session) MoveOwn(d shared.Direction) shared.Position {
	s.positions[s.Role] = s.positions[s.Role].Move(d)
	return s.positions[s.Role]
}

// ApplyOpponentUpdate overwrites the opponent position. Last write wins:
// there is no sequence number, so a late datagram can move the opponent back.
func (s *Session) ApplyOpponentUpdate(x, y int) {
	s.positions[s.Role.Opponent()] = shared.Position{X: x, Y: y}
}

// Marker is one player to draw
type Marker struct {
	shared.Position
	Local bool
	Role  shared.Role // selects the colour
}

// Markers lists every known position, our own first.
func (s *Session) Markers() []Marker {
	markers := []Marker{{Position: s.Own(), Local: true, Role: s.Role}}
	if opp := s.Opponent(); opp.Known() {
		markers = append(markers, Marker{Position: opp, Role: s.Role.Opponent()})
	}
	return markers
}
