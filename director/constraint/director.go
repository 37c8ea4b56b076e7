package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/pchrisoc/minesweeper/director/random"
	"github.com/pchrisoc/minesweeper/game"
	"github.com/pchrisoc/minesweeper/util/collections"
	"github.com/sirupsen/logrus"
)

// Number of rounds spent splitting overlapping observations before guessing
const simplifyRounds = 4

// Director plays by deduction. Every revealed number gives an observation of
// how many mines hide among its unrevealed neighbors; certain cells are dug or
// remembered as mines, and only when nothing is certain does it guess.
type Director struct {
	board *game.Board
	rand  *rand.Rand

	fallback *random.Director

	knownMines   collections.Set[game.Coord]
	observations []*Observation
}

type Observation struct {
	origin   *game.Coord
	numMines int
	cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for _, cell := range sortedCoords(observation.cells) {
		cells = append(cells, cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cells, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(r *rand.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.knownMines = make(collections.Set[game.Coord])
	director.observations = nil

	director.fallback = random.New(director.rand)
	director.fallback.Exclude = director.knownMines.Contains
	director.fallback.Init(board)
}

func (director *Director) Next() (game.Coord, error) {
	if coord, ok := director.actDeliberate(); ok {
		return coord, nil
	}
	if coord, ok := director.actLowestProbability(); ok {
		return coord, nil
	}
	return director.fallback.Next()
}

func (director *Director) End() {
	if director.board != nil {
		game.Log.WithField("known_mines", director.knownMines.Len()).Debug("constraint director done")
	}
	if director.fallback != nil {
		director.fallback.End()
	}
	director.board = nil
}

// KnownMines returns the cells deduced to be mines so far.
func (director *Director) KnownMines() collections.Set[game.Coord] {
	return director.knownMines
}

// actDeliberate looks for a cell that is certainly safe, recording certain
// mines along the way.
func (director *Director) actDeliberate() (game.Coord, bool) {
	for {
		director.observe()
		for i := 0; i < simplifyRounds; i++ {
			if !director.simplifyObservations() {
				break
			}
		}

		foundMines := false
		for _, observation := range director.observations {
			switch {
			case observation.numMines == 0:
				safe := sortedCoords(observation.cells)[0]
				game.Log.WithFields(logrus.Fields{
					"coord":       safe,
					"observation": observation.String(),
				}).Debug("deliberate dig")
				return safe, true

			case observation.numMines == len(observation.cells):
				for cell := range observation.cells {
					if !director.knownMines.Contains(cell) {
						director.knownMines.Add(cell)
						foundMines = true
					}
				}
			}
		}

		if !foundMines {
			return game.Coord{}, false
		}
	}
}

func (director *Director) actLowestProbability() (game.Coord, bool) {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Coord]float64)

	for _, observation := range director.observations {
		probability := observation.MineProbability()

		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
			if probability < lowestProbability {
				lowestProbability = probability
			}
		}
	}

	lowestProbabilityCells := make(collections.Set[game.Coord])
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells.Add(cell)
		}
	}
	if lowestProbabilityCells.Len() == 0 {
		return game.Coord{}, false
	}

	candidates := sortedCoords(lowestProbabilityCells)
	guess := candidates[director.rand.Intn(len(candidates))]

	game.Log.WithFields(logrus.Fields{
		"coord":       guess,
		"probability": lowestProbability,
	}).Debug("guessing lowest probability cell")

	return guess, true
}

// observe rebuilds the observations from every revealed number on the board.
func (director *Director) observe() {
	director.observations = nil

	for _, coord := range director.board.Coords() {
		if !director.board.IsRevealed(coord) {
			continue
		}
		cell := director.board.CellAt(coord)
		if cell.IsMine() || cell.NumMines() == 0 {
			continue
		}

		origin := coord
		observation := Observation{
			origin:   &origin,
			numMines: cell.NumMines(),
			cells:    make(collections.Set[game.Coord]),
		}

		for _, neighbor := range director.board.Neighbors(coord) {
			if director.board.IsRevealed(neighbor) {
				continue
			}
			if director.knownMines.Contains(neighbor) {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor)
			}
		}

		director.addObservation(&observation)
	}
}

// simplifyObservations derives new observations from observations that are
// contained in others, and reports whether any were added.
func (director *Director) simplifyObservations() bool {
	var derived []*Observation

	for _, observation := range director.observations {
		for _, other := range director.observations {
			if other == observation || len(observation.cells) >= len(other.cells) {
				continue
			}

			if _, isSubset := observation.cells.IntersectionEx(other.cells); isSubset {
				derived = append(derived, &Observation{
					numMines: other.numMines - observation.numMines,
					cells:    other.cells.Difference(observation.cells),
				})
			}
		}
	}

	added := false
	for _, observation := range derived {
		if director.addObservation(observation) {
			added = true
		}
	}
	return added
}

func (director *Director) addObservation(observation *Observation) bool {
	// Don't add vacuous observations
	if len(observation.cells) == 0 {
		return false
	}

	// Don't add duplicates
	for _, other := range director.observations {
		if other.cells.Equal(observation.cells) {
			return false
		}
	}

	director.observations = append(director.observations, observation)
	return true
}

func sortedCoords(set collections.Set[game.Coord]) []game.Coord {
	coords := make([]game.Coord, 0, len(set))
	for coord := range set {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
