package world

import "testing"

func TestNewGridDefaultsToFullTiles(t *testing.T) {
	g := NewGrid()
	if g.TileDic[Cell{10, 10}] != 1 {
		t.Fatalf("expected a fresh grid to default every tile to id 1 (full)")
	}
}

func TestLoadTilesDecodesInteriorGrid(t *testing.T) {
	g := NewGrid()
	data := make([]byte, 42*23)
	data[5+3*42] = 6 // interior cell (6,4) in 1-indexed TileDic coordinates
	g.LoadTiles(data)
	if g.TileDic[Cell{6, 4}] != 6 {
		t.Fatalf("got tile id %d at (6,4), want 6", g.TileDic[Cell{6, 4}])
	}
	if g.TileDic[Cell{1, 1}] != 0 {
		t.Fatalf("untouched interior cells should decode to 0 (empty), got %d", g.TileDic[Cell{1, 1}])
	}
}

func TestLoadTilesLeavesBorderSolid(t *testing.T) {
	g := NewGrid()
	g.LoadTiles(make([]byte, 42*23))
	if g.TileDic[Cell{0, 5}] != 1 {
		t.Fatalf("border cells should remain solid (id 1) after LoadTiles, got %d", g.TileDic[Cell{0, 5}])
	}
}
