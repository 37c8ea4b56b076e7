package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Layout characters of a serialized board
const (
	snapshotSafe         = '#'
	snapshotRevealedSafe = '.'
	snapshotMine         = 'O'
	snapshotRevealedMine = '*'
)

// BoardSnapshot is a textual board layout: one line per row, one character
// per cell. It is used to replay a fixed layout and to set up boards in tests.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.size)
	for row := 0; row < board.size; row++ {
		var line strings.Builder
		for col := 0; col < board.size; col++ {
			coord := Coord{Row: row, Col: col}
			isMine := board.CellAt(coord).isMine
			isRevealed := board.IsRevealed(coord)

			switch {
			case isMine && isRevealed:
				line.WriteByte(snapshotRevealedMine)
			case isMine:
				line.WriteByte(snapshotMine)
			case isRevealed:
				line.WriteByte(snapshotRevealedSafe)
			default:
				line.WriteByte(snapshotSafe)
			}
		}
		rows[row] = line.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// CreateBoard builds the board described by the snapshot. When fresh is set,
// every cell starts unrevealed; otherwise revealed cells are restored as-is,
// without cascading.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	size := len(rows)

	var mines, revealed []Coord
	exploded := false

	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidSnapshot, row, len(line), size)
		}

		for col, c := range line {
			coord := Coord{Row: row, Col: col}

			switch c {
			case snapshotSafe:
			case snapshotRevealedSafe:
				revealed = append(revealed, coord)
			case snapshotMine:
				mines = append(mines, coord)
			case snapshotRevealedMine:
				mines = append(mines, coord)
				revealed = append(revealed, coord)
				exploded = true
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrInvalidSnapshot, c, coord)
			}
		}
	}

	board, err := NewBoardWithMines(size, mines)
	if err != nil {
		return nil, err
	}
	board.seed = snapshot.Seed

	if !fresh {
		for _, coord := range revealed {
			board.reveal(coord)
		}
		board.exploded = exploded
	}

	return board, nil
}

func LoadSnapshot(in []byte) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.UnmarshalStrict(in, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if strings.TrimSpace(snapshot.SerializedBoard) == "" {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}
	return &snapshot, nil
}
