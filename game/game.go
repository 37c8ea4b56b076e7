package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.WarnLevel)
}

type GameConfig struct {
	Size     int
	NumMines int

	// Seed of the mine layout; the same seed always lays out the same board
	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	// Where the board and game messages are printed
	Out io.Writer
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:              DefaultSize,
		NumMines:          DefaultNumMines,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
		Director:          nil,
		Out:               os.Stdout,
	}
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard(config.LoadSnapshotFresh)
	}

	board, err := NewBoard(config.Size, config.NumMines, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		return nil, err
	}
	board.seed = config.Seed

	return board, nil
}

// Run plays a single game to its end, asking config.Director for every dig.
// Coordinates off the board are rejected and asked for again.
func Run(config GameConfig) (BoardState, error) {
	if config.Director == nil {
		return Ongoing, errors.New("no director configured")
	}
	out := config.Out
	if out == nil {
		out = io.Discard
	}

	board, err := config.createBoard()
	if err != nil {
		return Ongoing, fmt.Errorf("unable to create board: %w", err)
	}

	Log.WithFields(logrus.Fields{
		"seed":  board.Seed(),
		"size":  board.Size(),
		"mines": board.NumMines(),
	}).Info("game started")

	config.Director.Init(board)
	defer config.Director.End()

	for board.State() == Ongoing {
		if err := Render(out, board); err != nil {
			return board.State(), err
		}

		coord, err := config.Director.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				Log.Info("director stopped before the game was decided")
				return board.State(), ErrAborted
			}
			return board.State(), err
		}

		if err := board.Validate(coord); err != nil {
			Log.WithError(err).Debug("rejected dig")
			fmt.Fprintln(out, "Invalid Coordinate")
			continue
		}

		result := board.Dig(coord)
		Log.WithFields(logrus.Fields{
			"coord":  coord,
			"result": result,
		}).Info("dig")
	}

	logFinalLayout(board)

	switch board.State() {
	case Won:
		fmt.Fprintln(out, "Victory! Every safe cell is cleared.")
	case Lost:
		// A loaded layout may already be lost before the first dig
		board.RevealAll()
		fmt.Fprintln(out, "Boom! You dug up a mine.")
	}
	if err := Render(out, board); err != nil {
		return board.State(), err
	}

	Log.WithField("state", board.State()).Info("game ended")

	return board.State(), nil
}

// logFinalLayout records the board as a loadable layout, before the loss
// screen reveals every cell, so the game can be replayed with --layout.
func logFinalLayout(board *Board) {
	if !Log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	layout, err := board.Snapshot().Serialize()
	if err != nil {
		Log.WithError(err).Warn("unable to serialize final layout")
		return
	}
	Log.WithFields(logrus.Fields{
		"seed":   board.Seed(),
		"layout": layout,
	}).Debug("final layout")
}
