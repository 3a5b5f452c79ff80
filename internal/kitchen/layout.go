package kitchen

import (
	"fmt"

	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// Floor is the tile players walk on.
const Floor = '.'

// Station describes what a layout tile becomes.
type Station struct {
	Unit   UnitType
	Source string // spawned type for source units
	Tool   string // tool placed on the unit at build time
}

// Layout is a tile map of the kitchen. Every tile that is not Floor is a
// counter unit, configured by Legend; '#' is a plain counter unless the
// legend says otherwise.
type Layout struct {
	Rows   []string
	Legend map[rune]Station
}

// DefaultLayout returns the standard 8x8 kitchen.
func DefaultLayout() Layout {
	return Layout{
		Rows: []string{
			"..PDDP..",
			"........",
			"CC.se.FF",
			"##.pl.##",
			"B......B",
			"##.ov.##",
			"##.ac.##",
			"........",
		},
		Legend: map[rune]Station{
			'P': {Unit: UnitSource, Source: PlateType},
			'D': {Unit: UnitDelivery},
			'B': {Unit: UnitBin},
			'C': {Unit: UnitDefault, Tool: recipe.InputChop},
			'F': {Unit: UnitDefault, Tool: recipe.InputFry},
			's': {Unit: UnitSource, Source: "sweet crystal"},
			'e': {Unit: UnitSource, Source: "energy particle"},
			'p': {Unit: UnitSource, Source: "spice particle"},
			'l': {Unit: UnitSource, Source: "liquid essence"},
			'o': {Unit: UnitSource, Source: "protein orb"},
			'v': {Unit: UnitSource, Source: "vegetable core"},
			'a': {Unit: UnitSource, Source: "aroma sphere"},
			'c': {Unit: UnitSource, Source: "cooling shard"},
		},
	}
}

// Size returns the layout width and height in tiles.
func (l Layout) Size() (w, h int) {
	for _, row := range l.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(l.Rows)
}

// IsCounter reports whether the tile at (col, row) holds a counter unit.
// Tiles outside the map are not counters.
func (l Layout) IsCounter(col, row int) bool {
	if row < 0 || row >= len(l.Rows) {
		return false
	}
	r := []rune(l.Rows[row])
	if col < 0 || col >= len(r) {
		return false
	}
	return r[col] != Floor && r[col] != ' '
}

// CheckEdges returns which sides of the unit at (col, row) border a
// non-counter tile, indexed by EdgeTop, EdgeRight, EdgeBottom and EdgeLeft.
func (l Layout) CheckEdges(col, row int) [4]bool {
	return [4]bool{
		EdgeTop:    !l.IsCounter(col, row-1),
		EdgeRight:  !l.IsCounter(col+1, row),
		EdgeBottom: !l.IsCounter(col, row+1),
		EdgeLeft:   !l.IsCounter(col-1, row),
	}
}

// Spawn returns the floor tile nearest the centre of the map, ties broken
// in row-major order.
func (l Layout) Spawn() (Point, bool) {
	w, h := l.Size()
	cx, cy := w/2, h/2
	best, found, bestDist := Point{}, false, 0
	for y, row := range l.Rows {
		for x := range []rune(row) {
			if l.IsCounter(x, y) {
				continue
			}
			d := abs(x-cx) + abs(y-cy)
			if !found || d < bestDist {
				best, found, bestDist = Point{X: x, Y: y}, true, d
			}
		}
	}
	return best, found
}

// Build creates one counter unit per counter tile in row-major order and
// puts the configured tools on them. Tools are registered as live items.
func (k *Kitchen) Build(l Layout) error {
	for y, row := range l.Rows {
		for x, ch := range []rune(row) {
			if !l.IsCounter(x, y) {
				continue
			}
			st, ok := l.Legend[ch]
			if !ok {
				if ch != '#' {
					return fmt.Errorf("kitchen: layout tile %q at %d,%d has no legend entry", ch, x, y)
				}
				st = Station{Unit: UnitDefault}
			}
			if st.Unit == UnitSource && st.Source == "" {
				return fmt.Errorf("kitchen: source tile %q at %d,%d has no source type", ch, x, y)
			}
			i := k.AddUnit(Point{X: x, Y: y}, st.Unit, st.Source)
			k.units[i].Edges = l.CheckEdges(x, y)
			if st.Tool != "" {
				if err := k.AddToUnit(i, k.NewItem(KindTool, st.Tool)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Reset clears every item and puts the layout's tools back in place.
func (k *Kitchen) Reset(l Layout) error {
	k.Clear()
	k.units = nil
	return k.Build(l)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
