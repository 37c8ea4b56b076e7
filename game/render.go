package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render writes the player's view of the board as a text grid, with column
// indexes on top and row indexes on the left. Revealed safe cells show their
// mine count, revealed mines show "*" and unrevealed cells are blank.
func Render(w io.Writer, board *Board) error {
	size := board.Size()
	width := len(strconv.Itoa(size - 1))

	rows := make([]string, size)
	for row := 0; row < size; row++ {
		var line strings.Builder
		fmt.Fprintf(&line, "%*d |", width, row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&line, " %-*s |", width, board.CellState(Coord{Row: row, Col: col}))
		}
		rows[row] = line.String()
	}

	indexes := make([]string, size)
	for col := range indexes {
		indexes[col] = fmt.Sprintf("%-*d", width, col)
	}
	header := strings.Repeat(" ", width+3) + strings.Join(indexes, "   ")
	separator := strings.Repeat("-", len(rows[0]))

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, strings.TrimRight(header, " "))
	fmt.Fprintln(out, separator)
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out, separator)

	return out.Flush()
}
