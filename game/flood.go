package game

import (
	"github.com/gammazero/deque"
	"github.com/pchrisoc/minesweeper/util/collections"
)

type NeighborGetter func(Coord) []Coord

// Visitor is called once per coordinate reached by a flood, and returns whether
// the flood should continue on to that coordinate's neighbors.
type Visitor func(Coord) bool

// flood walks outward from origin with an explicit work-list, so the depth of
// the walk never depends on the call stack. Each coordinate is visited at most
// once.
func flood(origin Coord, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.NewSet(origin)

	var pending deque.Deque
	pending.PushBack(origin)

	for pending.Len() > 0 {
		coord := pending.PopBack().(Coord)

		if !visit(coord) {
			continue
		}

		for _, neighbor := range getNeighbors(coord) {
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			pending.PushBack(neighbor)
		}
	}
}
