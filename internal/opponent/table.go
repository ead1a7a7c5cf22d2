package opponent

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

//go:embed transitions.yml
var transitionsYAML []byte

// DefaultTable is the scripted position table shipped with the binary.
var DefaultTable = MustParseTable(transitionsYAML)

type rawTable struct {
	Transitions map[string]string `yaml:"transitions"`
	Draws       []string          `yaml:"draws"`
}

type transition struct {
	next entity.Grid
	cell int
}

// Table maps a grid key to the grid after the opponent's reply. It is immutable once parsed.
type Table struct {
	transitions map[string]transition
	draws       map[string]struct{}
}

// ParseTable decodes and validates a YAML position table.
// Every transition must add exactly one X on an empty cell.
func ParseTable(data []byte) (*Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode position table: %w", err)
	}

	table := &Table{
		transitions: make(map[string]transition, len(raw.Transitions)),
		draws:       make(map[string]struct{}, len(raw.Draws)),
	}

	for from, to := range raw.Transitions {
		current, err := entity.ParseGrid(from)
		if err != nil {
			return nil, fmt.Errorf("bad transition key: %w", err)
		}

		next, err := entity.ParseGrid(to)
		if err != nil {
			return nil, fmt.Errorf("bad transition for %s: %w", from, err)
		}

		cell, err := replyCell(current, next)
		if err != nil {
			return nil, fmt.Errorf("bad transition for %s: %w", from, err)
		}

		table.transitions[current.Key()] = transition{next: next, cell: cell}
	}

	for _, key := range raw.Draws {
		grid, err := entity.ParseGrid(key)
		if err != nil {
			return nil, fmt.Errorf("bad draw entry: %w", err)
		}

		if !grid.IsFull() {
			return nil, fmt.Errorf("draw entry %s is not a full grid", key)
		}

		table.draws[grid.Key()] = struct{}{}
	}

	return table, nil
}

// MustParseTable is ParseTable for embedded data; it panics on a corrupt table.
func MustParseTable(data []byte) *Table {
	table, err := ParseTable(data)
	if err != nil {
		panic(fmt.Errorf("unable to load position table: %w", err))
	}

	return table
}

// Reply returns the scripted grid after the opponent's reply and the cell it took.
func (that *Table) Reply(grid entity.Grid) (entity.Grid, int, bool) {
	t, ok := that.transitions[grid.Key()]
	return t.next, t.cell, ok
}

// IsDraw reports whether grid is one of the enumerated drawn endings.
func (that *Table) IsDraw(grid entity.Grid) bool {
	_, ok := that.draws[grid.Key()]
	return ok
}

func (that *Table) Len() int {
	return len(that.transitions)
}

// Keys returns every position the table has a reply for, sorted.
func (that *Table) Keys() []string {
	keys := make([]string, 0, len(that.transitions))
	for key := range that.transitions {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

// Draws returns the enumerated drawn endings, sorted by key.
func (that *Table) Draws() []entity.Grid {
	keys := make([]string, 0, len(that.draws))
	for key := range that.draws {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	grids := make([]entity.Grid, 0, len(keys))
	for _, key := range keys {
		grid, _ := entity.ParseGrid(key)
		grids = append(grids, grid)
	}

	return grids
}

func replyCell(current, next entity.Grid) (int, error) {
	cell := -1
	for i := range current {
		if current[i] == next[i] {
			continue
		}

		if current[i] != entity.Empty || next[i] != entity.X || cell != -1 {
			return 0, fmt.Errorf("reply must add exactly one x, got %s", next.Key())
		}
		cell = i
	}

	if cell == -1 {
		return 0, fmt.Errorf("reply leaves the grid unchanged")
	}

	return cell, nil
}
