package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pchrisoc/minesweeper/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRoot_HumanWins(t *testing.T) {
	out, err := execute(t, "0,0\n", "--size", "2", "--mines", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Dig Placement (row,col): ")
	assert.Contains(t, out, "Victory!")
}

func TestRoot_OutOfBoundsInput(t *testing.T) {
	out, err := execute(t, "7,7\n1,1\n", "--size", "2", "--mines", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid Coordinate")
	assert.Contains(t, out, "Victory!")
}

func TestRoot_InputEnds(t *testing.T) {
	out, err := execute(t, "", "--size", "3", "--mines", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Game abandoned.")
}

func TestRoot_InvalidFlags(t *testing.T) {
	_, err := execute(t, "", "--size", "2", "--mines", "4")
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)

	_, err = execute(t, "", "--size", "0")
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)

	_, err = execute(t, "", "--director", "psychic")
	require.Error(t, err)

	_, err = execute(t, "", "--log-level", "chatty")
	require.Error(t, err)
}

func TestRoot_ComputerDirectors(t *testing.T) {
	for _, director := range []string{"random", "constraint"} {
		t.Run(director, func(t *testing.T) {
			out, err := execute(t, "", "--director", director, "--seed", "3", "--size", "6", "--mines", "4")
			require.NoError(t, err)
			assert.True(t, strings.Contains(out, "Victory!") || strings.Contains(out, "Boom!"))
			assert.NotContains(t, out, "Dig Placement")
		})
	}
}

func TestRoot_SeedZeroReplays(t *testing.T) {
	play := func() string {
		out, err := execute(t, "", "--director", "random", "--seed", "0", "--size", "8", "--mines", "10")
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, play(), play())
}

func TestRoot_Layout(t *testing.T) {
	layout := writeFile(t, "layout.yaml", "board: |\n  O#\n  #O\n")

	out, err := execute(t, "0,1\n1,0\n", "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "Victory!")

	out, err = execute(t, "0,0\n", "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "Boom!")
	assert.Contains(t, out, "0 | * | 2 |")
}

func TestRoot_ConfigFile(t *testing.T) {
	config := writeFile(t, "gosweep.yaml", "size: 2\nmines: 0\nlog-level: error\n")

	out, err := execute(t, "1,1\n", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "    0   1\n")
	assert.Contains(t, out, "Victory!")

	// Flags on the command line win over the file
	out, err = execute(t, "1,1\n", "--config", config, "--size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "    0   1   2\n")
}

func TestRoot_ConfigFileWithLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "board.yaml"), []byte("board: |\n  ##\n  #O\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gosweep.yaml"), []byte("layout: board.yaml\n"), 0644))

	out, err := execute(t, "0,0\n0,1\n1,0\n", "--config", filepath.Join(dir, "gosweep.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Victory!")
}
