package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pchrisoc/minesweeper/game"
)

const Prompt = "Dig Placement (row,col): "

// Director reads digs typed by a person, one "row,col" pair per line.
type Director struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Director {
	return &Director{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (director *Director) Init(board *game.Board) {
	game.Log.WithField("size", board.Size()).Debug("console director ready")
}

// Next prompts until a well-formed pair is read. Bounds are not checked here.
func (director *Director) Next() (game.Coord, error) {
	for {
		fmt.Fprint(director.out, Prompt)

		if !director.in.Scan() {
			if err := director.in.Err(); err != nil {
				return game.Coord{}, err
			}
			return game.Coord{}, io.EOF
		}

		coord, err := ParseCoord(director.in.Text())
		if err != nil {
			game.Log.WithError(err).Debug("unreadable dig")
			fmt.Fprintln(director.out, "Invalid input:", err)
			continue
		}
		return coord, nil
	}
}

func (director *Director) End() {}

// ParseCoord reads a "row,col" pair. Commas and whitespace both separate the
// two numbers, so "3,4", "3, 4" and "3 4" are equivalent.
func ParseCoord(text string) (game.Coord, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return game.Coord{}, fmt.Errorf("expected row,col but got %q", strings.TrimSpace(text))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Coord{}, fmt.Errorf("row %q is not a number", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Coord{}, fmt.Errorf("column %q is not a number", fields[1])
	}

	return game.Coord{Row: row, Col: col}, nil
}
