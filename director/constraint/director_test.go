package constraint

import (
	"io"
	"math/rand"
	"testing"

	"github.com/pchrisoc/minesweeper/game"
	"github.com/pchrisoc/minesweeper/util/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirector_DeducesSafeCell(t *testing.T) {
	// Mines in both top corners: the middle of the top row is the only safe
	// cell left once the bottom row is dug.
	board, err := game.NewBoardWithMines(3, []game.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}})
	require.NoError(t, err)
	require.Equal(t, game.Revealed, board.Dig(game.Coord{Row: 2, Col: 1}))
	require.Equal(t, 6, board.NumRevealed())

	director := New(rand.New(rand.NewSource(1)))
	director.Init(board)
	defer director.End()

	coord, err := director.Next()
	require.NoError(t, err)
	assert.Equal(t, game.Coord{Row: 0, Col: 1}, coord)
	assert.True(t, director.KnownMines().Equal(collections.NewSet(
		game.Coord{Row: 0, Col: 0},
		game.Coord{Row: 0, Col: 2},
	)))

	require.Equal(t, game.Revealed, board.Dig(coord))
	assert.True(t, board.Won())
}

func TestDirector_SaturatedObservation(t *testing.T) {
	// (0,1) sees its one mine among its one unrevealed neighbor, which in turn
	// clears (2,2) for (1,1)
	snapshot := &game.BoardSnapshot{SerializedBoard: "O..\n...\n..#"}
	board, err := snapshot.CreateBoard(false)
	require.NoError(t, err)
	require.Equal(t, game.Ongoing, board.State())

	director := New(rand.New(rand.NewSource(1)))
	director.Init(board)

	coord, err := director.Next()
	require.NoError(t, err)
	assert.Equal(t, game.Coord{Row: 2, Col: 2}, coord)
	assert.True(t, director.KnownMines().Contains(game.Coord{Row: 0, Col: 0}))

	assert.Equal(t, game.Revealed, board.Dig(coord))
	assert.True(t, board.Won())
}

func TestDirector_NeverDigsKnownMines(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		board, err := game.NewBoard(8, 10, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		director := New(rand.New(rand.NewSource(seed)))
		director.Init(board)

		for board.State() == game.Ongoing {
			coord, err := director.Next()
			require.NoError(t, err)
			require.False(t, board.IsRevealed(coord), "seed %d: %v already revealed", seed, coord)
			require.False(t, director.KnownMines().Contains(coord), "seed %d: %v is a known mine", seed, coord)

			board.Dig(coord)
		}

		for mine := range director.KnownMines() {
			require.True(t, board.CellAt(mine).IsMine(), "seed %d: %v deduced wrongly", seed, mine)
		}
		director.End()
	}
}

func TestDirector_PlaysAGame(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 21
	config.Out = io.Discard
	config.Director = New(rand.New(rand.NewSource(22)))

	state, err := game.Run(config)
	require.NoError(t, err)
	assert.NotEqual(t, game.Ongoing, state)
}
