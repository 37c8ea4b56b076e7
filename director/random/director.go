package random

import (
	"io"
	"math/rand"

	"github.com/pchrisoc/minesweeper/game"
)

// Director digs unrevealed cells in a random order.
type Director struct {
	rand  *rand.Rand
	board *game.Board

	// Exclude, when set, skips cells the caller knows better than to dig
	Exclude func(game.Coord) bool

	order []game.Coord
	next  int
}

func New(r *rand.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.next = 0

	director.order = board.Coords()
	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Next returns io.EOF once every cell has been revealed.
func (director *Director) Next() (game.Coord, error) {
	for director.next < len(director.order) {
		coord := director.order[director.next]
		director.next++

		if director.Exclude != nil && director.Exclude(coord) {
			continue
		}
		if !director.board.IsRevealed(coord) {
			game.Log.WithField("coord", coord).Debug("random dig")
			return coord, nil
		}
	}
	return game.Coord{}, io.EOF
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
