package game

import "strconv"

type CellState int
type BoardState int
type DigResult int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
)

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return " "
	case state == Mine:
		return "*"
	case Empty <= state && state <= Number8:
		return strconv.Itoa(int(state))
	default:
		return "?"
	}
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

const (
	// Revealed means a safe cell was dug, possibly cascading into its neighbors
	Revealed DigResult = iota
	// Exploded means a mine was dug
	Exploded
)

func (result DigResult) String() string {
	if result == Exploded {
		return "exploded"
	}
	return "revealed"
}

const (
	DefaultSize     = 10
	DefaultNumMines = 10
)
