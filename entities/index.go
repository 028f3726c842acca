package entities

import (
	"math"

	"nsim/world"
)

// Index is the per-cell spatial index of active entities, the entities-side
// counterpart to world.Grid's segment index.
type Index struct {
	cells map[world.Cell][]Entity
}

func NewIndex() *Index {
	idx := &Index{cells: make(map[world.Cell][]Entity, 44*25)}
	for x := 0; x < 44; x++ {
		for y := 0; y < 25; y++ {
			idx.cells[world.Cell{X: x, Y: y}] = nil
		}
	}
	return idx
}

func (idx *Index) Add(cell world.Cell, e Entity) {
	idx.cells[cell] = append(idx.cells[cell], e)
}

func (idx *Index) Remove(cell world.Cell, e Entity) {
	list := idx.cells[cell]
	for i, other := range list {
		if other == e {
			idx.cells[cell] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// GatherFromNeighbourhood returns every active entity from the nine cells
// surrounding (x,y).
func (idx *Index) GatherFromNeighbourhood(x, y float64) []Entity {
	c := world.ClampCell(int(math.Floor(x/24)), int(math.Floor(y/24)))
	x1, x2 := max(c.X-1, 0), min(c.X+1, 43)
	y1, y2 := max(c.Y-1, 0), min(c.Y+1, 24)
	var out []Entity
	for cx := x1; cx <= x2; cx++ {
		for cy := y1; cy <= y2; cy++ {
			for _, e := range idx.cells[world.Cell{X: cx, Y: cy}] {
				if e.Active() {
					out = append(out, e)
				}
			}
		}
	}
	return out
}
