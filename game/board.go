package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pchrisoc/minesweeper/util/collections"
	"github.com/sirupsen/logrus"
)

type Board struct {
	size     int // in number of cells, per side
	numMines int
	seed     int64
	cells    [][]Cell

	revealed        collections.Set[Coord]
	numRevealedSafe int
	exploded        bool
}

func validateConfig(size, numMines int) error {
	switch {
	case size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfiguration, size)
	case numMines < 0:
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidConfiguration, numMines)
	case numMines >= size*size:
		return fmt.Errorf("%w: %d mines leave no safe cell on a %dx%d board",
			ErrInvalidConfiguration, numMines, size, size)
	}
	return nil
}

// NewBoard creates a size x size board with numMines mines placed uniformly at
// random, without replacement, using rng.
func NewBoard(size, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateConfig(size, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidConfiguration)
	}

	// Store cell indexes, to shuffle and take mines from the front
	cellIndexes := make([]int, size*size)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	mines := make([]Coord, numMines)
	for i := range mines {
		cellIdx := cellIndexes[i]
		mines[i] = Coord{Row: cellIdx / size, Col: cellIdx % size}
	}

	return NewBoardWithMines(size, mines)
}

// NewBoardWithMines creates a board with mines at exactly the given
// coordinates.
func NewBoardWithMines(size int, mines []Coord) (*Board, error) {
	if err := validateConfig(size, len(mines)); err != nil {
		return nil, err
	}

	board := createBoard(size)
	for _, coord := range mines {
		if !board.InBounds(coord) {
			return nil, fmt.Errorf("%w: mine at %v is outside the %dx%d board",
				ErrInvalidConfiguration, coord, size, size)
		}

		cell := board.CellAt(coord)
		if cell.isMine {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfiguration, coord)
		}
		cell.isMine = true
		board.numMines++
	}

	board.fillNeighborCounts()

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": board.numMines,
	}).Debug("board created")

	return board, nil
}

func createBoard(size int) *Board {
	board := &Board{
		size:     size,
		cells:    make([][]Cell, size),
		revealed: make(collections.Set[Coord]),
	}

	for row := 0; row < size; row++ {
		board.cells[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			board.cells[row][col].coord = Coord{Row: row, Col: col}
		}
	}

	return board
}

// fillNeighborCounts must run once every mine is placed.
func (board *Board) fillNeighborCounts() {
	for row := range board.cells {
		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			if cell.isMine {
				continue
			}

			cell.numMines = 0
			for _, neighbor := range board.Neighbors(cell.coord) {
				if board.CellAt(neighbor).isMine {
					cell.numMines++
				}
			}
		}
	}
}

func (board *Board) Size() int {
	return board.size
}

// Seed is the seed the mine layout was generated from, if known.
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) NumSafeCells() int {
	return board.NumCells() - board.numMines
}

func (board *Board) NumRevealed() int {
	return board.revealed.Len()
}

func (board *Board) InBounds(coord Coord) bool {
	return coord.Row >= 0 && coord.Col >= 0 && coord.Row < board.size && coord.Col < board.size
}

// Validate returns an error wrapping ErrOutOfBounds if coord is not on the board.
func (board *Board) Validate(coord Coord) error {
	if !board.InBounds(coord) {
		return fmt.Errorf("%w: %v not within [0, %d)", ErrOutOfBounds, coord, board.size)
	}
	return nil
}

// CellAt returns nil for coordinates off the board.
func (board *Board) CellAt(coord Coord) *Cell {
	if board.InBounds(coord) {
		return &board.cells[coord.Row][coord.Col]
	}
	return nil
}

// Coords lists every coordinate in row-major order.
func (board *Board) Coords() []Coord {
	coords := make([]Coord, 0, board.NumCells())
	for row := 0; row < board.size; row++ {
		for col := 0; col < board.size; col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return coords
}

func (board *Board) IsRevealed(coord Coord) bool {
	return board.revealed.Contains(coord)
}

// CellState is what a player is allowed to see at coord.
func (board *Board) CellState(coord Coord) CellState {
	if !board.IsRevealed(coord) {
		return Unrevealed
	}

	cell := board.CellAt(coord)
	if cell.isMine {
		return Mine
	}
	return CellState(cell.numMines)
}

// Dig reveals coord. Digging a mine reports Exploded; digging a cell with no
// neighboring mines also reveals the connected region around it. coord must be
// on the board: use Validate first.
func (board *Board) Dig(coord Coord) DigResult {
	cell := board.CellAt(coord)
	board.reveal(coord)

	if cell.isMine {
		board.exploded = true
		Log.WithField("coord", coord).Debug("dug a mine")
		return Exploded
	}

	if cell.numMines == 0 {
		board.cascadeEmpty(coord)
	}

	Log.WithFields(logrus.Fields{
		"coord":    coord,
		"revealed": board.revealed.Len(),
	}).Debug("dug a safe cell")

	return Revealed
}

func (board *Board) reveal(coord Coord) {
	if board.revealed.Contains(coord) {
		return
	}

	board.revealed.Add(coord)
	if !board.CellAt(coord).isMine {
		board.numRevealedSafe++
	}
}

func (board *Board) cascadeEmpty(origin Coord) {
	flood(
		origin,
		func(coord Coord) bool {
			board.reveal(coord)
			return board.CellAt(coord).numMines == 0
		},
		func(coord Coord) []Coord {
			neighbors := board.Neighbors(coord)
			unrevealed := neighbors[:0]
			for _, neighbor := range neighbors {
				if !board.revealed.Contains(neighbor) {
					unrevealed = append(unrevealed, neighbor)
				}
			}
			return unrevealed
		},
	)
}

// Won reports whether every safe cell has been revealed without digging a mine.
func (board *Board) Won() bool {
	return !board.exploded && board.numRevealedSafe == board.NumSafeCells()
}

// RevealAll shows the whole board. It is meant for the end of a lost game.
func (board *Board) RevealAll() {
	for _, coord := range board.Coords() {
		board.revealed.Add(coord)
	}
	board.numRevealedSafe = board.NumSafeCells()
}

func (board *Board) State() BoardState {
	switch {
	case board.exploded:
		return Lost
	case board.Won():
		return Won
	default:
		return Ongoing
	}
}

func (board *Board) String() string {
	var out strings.Builder
	_ = Render(&out, board)
	return out.String()
}
