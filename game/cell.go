package game

import (
	"fmt"
)

// Coord addresses a single cell by row and column. It is comparable, and is
// used directly as a set and map key.
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

type Cell struct {
	coord    Coord
	isMine   bool
	numMines int
}

func (cell *Cell) String() string {
	if cell.isMine {
		return fmt.Sprintf("Cell%v[mine]", cell.coord)
	}
	return fmt.Sprintf("Cell%v[%d]", cell.coord, cell.numMines)
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

// NumMines is the number of mines among the cell's neighbors. It is always 0
// for mines.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// Neighbors returns the coordinates adjacent to coord (diagonals included),
// clamped to the board. Corners have 3 neighbors, edges 5, all others 8.
func (board *Board) Neighbors(coord Coord) []Coord {
	neighbors := make([]Coord, 0, 8)

	isAtTopBorder := coord.Row < 1
	isAtBottomBorder := coord.Row >= board.size-1

	if coord.Col >= 1 {
		neighbors = append(neighbors, Coord{coord.Row, coord.Col - 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Coord{coord.Row - 1, coord.Col - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Coord{coord.Row + 1, coord.Col - 1})
		}
	}

	if coord.Col < board.size-1 {
		neighbors = append(neighbors, Coord{coord.Row, coord.Col + 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Coord{coord.Row - 1, coord.Col + 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Coord{coord.Row + 1, coord.Col + 1})
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, Coord{coord.Row - 1, coord.Col})
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, Coord{coord.Row + 1, coord.Col})
	}

	return neighbors
}
