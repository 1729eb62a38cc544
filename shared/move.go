package shared

// Direction is one step along an axis
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Move returns p shifted one cell in d, wrapping around the grid edges.
// The result is always inside [0, GridSize).
func (p Position) Move(d Direction) Position {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	p.X = wrap(p.X)
	p.Y = wrap(p.Y)
	return p
}

func wrap(v int) int {
	v %= GridSize
	if v < 0 {
		v += GridSize
	}
	return v
}
