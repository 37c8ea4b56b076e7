package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pchrisoc/minesweeper/director/console"
	"github.com/pchrisoc/minesweeper/director/constraint"
	"github.com/pchrisoc/minesweeper/director/random"
	"github.com/pchrisoc/minesweeper/game"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	game       game.GameConfig
	director   directorValue
	configPath string
	layoutPath string
	logLevel   string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{
		game:     game.NewGameConfig(),
		director: "human",
	}

	cmd := &cobra.Command{
		Use:   "gosweep",
		Short: "Play Minesweeper in the terminal",
		Long: `gosweep is a terminal Minesweeper game. Dig cells by typing
their row and column until every safe cell is cleared, or a mine goes off.

Run with no arguments to play a 10x10 board with 10 mines
	gosweep

Use the director flag to make the computer play for you
	gosweep --director constraint
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.game.Size, "size", "s", game.DefaultSize, "Side length of the square board, in cells")
	flags.IntVarP(&opts.game.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the board")
	flags.Int64Var(&opts.game.Seed, "seed", 0, "Seed of the mine layout (picked from the clock when unset)")
	flags.VarP(&opts.director, "director", "d", `Who plays the game.
human: read digs from the terminal
random: the computer digs random cells
constraint: the computer digs by deduction, guessing only when it must`)
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with default settings")
	flags.StringVar(&opts.layoutPath, "layout", "", "YAML board layout to play instead of a random board")
	flags.BoolVar(&opts.game.LoadSnapshotFresh, "fresh", true, "Start a loaded layout with every cell unrevealed")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

func (opts *options) run(cmd *cobra.Command) error {
	if opts.configPath != "" {
		fileConfig, err := loadFileConfig(opts.configPath)
		if err != nil {
			return err
		}
		if err := fileConfig.apply(cmd.Flags()); err != nil {
			return err
		}
	}

	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	game.Log.SetLevel(level)
	game.Log.SetOutput(cmd.ErrOrStderr())

	if !cmd.Flags().Changed("seed") {
		opts.game.Seed = time.Now().UnixNano()
	}

	if opts.layoutPath != "" {
		data, err := os.ReadFile(opts.layoutPath)
		if err != nil {
			return fmt.Errorf("unable to read layout: %w", err)
		}
		if opts.game.Snapshot, err = game.LoadSnapshot(data); err != nil {
			return err
		}
	}

	opts.game.Director = opts.director.create(cmd.InOrStdin(), cmd.OutOrStdout(), opts.game.Seed)
	opts.game.Out = cmd.OutOrStdout()

	state, err := game.Run(opts.game)
	if errors.Is(err, game.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nGame abandoned.")
		return nil
	}
	if err != nil {
		return err
	}

	game.Log.WithField("state", state).Debug("exiting")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type directorValue string

var directors = map[string]func(in io.Reader, out io.Writer, seed int64) game.Director{
	"human": func(in io.Reader, out io.Writer, seed int64) game.Director {
		return console.New(in, out)
	},
	"random": func(in io.Reader, out io.Writer, seed int64) game.Director {
		return random.New(directorRand(seed))
	},
	"constraint": func(in io.Reader, out io.Writer, seed int64) game.Director {
		return constraint.New(directorRand(seed))
	},
}

// directorRand must not share a stream with the board, or the director's
// shuffles would replay the mine placement.
func directorRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ 0x5eed))
}

func (value *directorValue) create(in io.Reader, out io.Writer, seed int64) game.Director {
	return directors[string(*value)](in, out, seed)
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if _, isValid := directors[name]; !isValid {
		names := make([]string, 0, len(directors))
		for known := range directors {
			names = append(names, known)
		}
		sort.Strings(names)
		return fmt.Errorf("invalid director, expected one of %s", strings.Join(names, ", "))
	}
	*value = directorValue(name)
	return nil
}

func (value *directorValue) Type() string {
	return "director"
}
