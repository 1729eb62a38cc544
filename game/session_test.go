package game

import (
	"testing"

	"github.com/sereneful/3980Project/shared"
)

func TestNewSession(t *testing.T) {
	for _, role := range []shared.Role{shared.Host, shared.Client} {
		s := NewSession(role)
		if s.ID == "" {
			t.Error("empty session id")
		}
		if s.Own() != shared.Start {
			t.Errorf("%v: Own = %v, want %v", role, s.Own(), shared.Start)
		}
		if s.Opponent() != shared.Unknown {
			t.Errorf("%v: Opponent = %v, want unknown", role, s.Opponent())
		}
		m := s.Markers()
		if len(m) != 1 || !m[0].Local || m[0].Role != role {
			t.Errorf("%v: Markers = %v", role, m)
		}
	}
}

func TestMoveOwnWraps(t *testing.T) {
	s := NewSession(shared.Client)
	s.positions[shared.Client] = shared.Position{X: 0, Y: 0}
	s.MoveOwn(shared.Up)
	if got := s.MoveOwn(shared.Left); got != (shared.Position{X: 19, Y: 19}) {
		t.Errorf("(0,0) up, left = %v", got)
	}
	s.MoveOwn(shared.Down)
	if got := s.MoveOwn(shared.Right); got != (shared.Position{X: 0, Y: 0}) {
		t.Errorf("(19,19) down, right = %v", got)
	}
	if s.positions[shared.Host] != shared.Unknown {
		t.Error("moving the client touched the host slot")
	}
}

func TestApplyOpponentUpdateLastWriteWins(t *testing.T) {
	s := NewSession(shared.Host)
	s.ApplyOpponentUpdate(5, 5)
	s.ApplyOpponentUpdate(4, 5)
	if s.Opponent() != (shared.Position{X: 4, Y: 5}) {
		t.Errorf("Opponent = %v", s.Opponent())
	}
	m := s.Markers()
	if len(m) != 2 || m[1].Local || m[1].Role != shared.Client {
		t.Errorf("Markers = %v", m)
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		r    rune
		key  Key
		move shared.Direction
	}{
		{'w', KeyUp, shared.Up},
		{'S', KeyDown, shared.Down},
		{'a', KeyLeft, shared.Left},
		{'d', KeyRight, shared.Right},
		{'q', KeyQuit, shared.None},
		{'x', KeyNone, shared.None},
	}
	for _, tt := range tests {
		k := KeyForRune(tt.r)
		if k != tt.key {
			t.Errorf("KeyForRune(%q) = %v, want %v", tt.r, k, tt.key)
		}
		if k.Direction() != tt.move {
			t.Errorf("%v.Direction() = %v, want %v", k, k.Direction(), tt.move)
		}
	}
}
