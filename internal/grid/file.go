package grid

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoGridFile indicates the grid file does not exist at the given path.
var ErrNoGridFile = errors.New("grid file not found")

// fileSchema mirrors the on-disk TOML shape:
//
//	[grid]
//	rows  = 5
//	cols  = 5
//	start = [0, 0]
//	goal  = [0, 4]
//	walls = [[2, 2], [1, 3]]
type fileSchema struct {
	Grid fileGrid `toml:"grid"`
}

type fileGrid struct {
	Rows  int     `toml:"rows"`
	Cols  int     `toml:"cols"`
	Start []int   `toml:"start"`
	Goal  []int   `toml:"goal"`
	Walls [][]int `toml:"walls"`
}

// Load reads a TOML grid file and constructs a Grid from it. File input
// passes through the same validation as New, so a malformed grid on disk
// fails with an *InvalidGridError.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoGridFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read grid file %s: %w", path, err)
	}

	var f fileSchema
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse grid file %s: %w", path, err)
	}

	start, err := pairToCell(f.Grid.Start, "start")
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}
	goal, err := pairToCell(f.Grid.Goal, "goal")
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}

	walls := make([]Cell, 0, len(f.Grid.Walls))
	for _, w := range f.Grid.Walls {
		c, err := pairToCell(w, "walls")
		if err != nil {
			return nil, fmt.Errorf("grid file %s: %w", path, err)
		}
		walls = append(walls, c)
	}

	return New(f.Grid.Rows, f.Grid.Cols, walls, start, goal)
}

// Save writes g to path as a TOML grid file.
func Save(path string, g *Grid) error {
	f := fileSchema{
		Grid: fileGrid{
			Rows:  g.Rows(),
			Cols:  g.Cols(),
			Start: []int{g.Start().Row, g.Start().Col},
			Goal:  []int{g.Goal().Row, g.Goal().Col},
		},
	}
	for _, w := range g.Walls() {
		f.Grid.Walls = append(f.Grid.Walls, []int{w.Row, w.Col})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode grid file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write grid file %s: %w", path, err)
	}
	return nil
}

// pairToCell converts a two-element [row, col] TOML array into a Cell.
func pairToCell(pair []int, field string) (Cell, error) {
	if len(pair) != 2 {
		return Cell{}, fmt.Errorf("%s must be a [row, col] pair, got %v", field, pair)
	}
	return Cell{Row: pair[0], Col: pair[1]}, nil
}
