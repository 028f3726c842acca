package world

import (
	"math"
	"sort"
)

// Grid holds the static tile geometry and the mutable grid-edge occupancy
// tables that doors update as they open and close.
type Grid struct {
	TileDic    map[Cell]int
	SegmentDic map[Cell][]Segment

	HorGridEdgeDic map[HalfCell]int
	VerGridEdgeDic map[HalfCell]int

	// horSegmentDic/verSegmentDic accumulate signed orthogonal-segment
	// contributions per half-cell during load; a net value of 0 means two
	// opposing tile edges canceled and no segment is created.
	horSegmentDic map[HalfCell]int
	verSegmentDic map[HalfCell]int
}

// NewGrid initializes an empty grid: every tile defaults to full (id 1),
// every segment cell list is empty, and the frame border has solid
// grid edges.
func NewGrid() *Grid {
	g := &Grid{
		TileDic:        make(map[Cell]int, 44*25),
		SegmentDic:     make(map[Cell][]Segment, 45*26),
		HorGridEdgeDic: make(map[HalfCell]int, 88*51),
		VerGridEdgeDic: make(map[HalfCell]int, 89*50),
		horSegmentDic:  make(map[HalfCell]int, 88*51),
		verSegmentDic:  make(map[HalfCell]int, 89*50),
	}
	for x := 0; x < 44; x++ {
		for y := 0; y < 25; y++ {
			g.TileDic[Cell{x, y}] = 1
		}
	}
	for x := 0; x < 45; x++ {
		for y := 0; y < 26; y++ {
			g.SegmentDic[Cell{x, y}] = nil
		}
	}
	for x := 0; x < 88; x++ {
		for y := 0; y < 51; y++ {
			v := 0
			if y == 0 || y == 50 {
				v = 1
			}
			g.HorGridEdgeDic[HalfCell{x, y}] = v
			hv := 0
			if y == 0 {
				hv = 1
			}
			if y == 50 {
				hv = -1
			}
			g.horSegmentDic[HalfCell{x, y}] = hv
		}
	}
	for x := 0; x < 89; x++ {
		for y := 0; y < 50; y++ {
			v := 0
			if x == 0 || x == 88 {
				v = 1
			}
			g.VerGridEdgeDic[HalfCell{x, y}] = v
			vv := 0
			if x == 0 {
				vv = 1
			}
			if x == 88 {
				vv = -1
			}
			g.verSegmentDic[HalfCell{x, y}] = vv
		}
	}
	return g
}

// LoadTiles decodes the 42x23 tile-id grid (the 966-byte slice at map offset
// 184) into the tile dictionary and the segment/grid-edge tables.
func (g *Grid) LoadTiles(tileData []byte) {
	for x := 0; x < 42; x++ {
		for y := 0; y < 23; y++ {
			g.TileDic[Cell{x + 1, y + 1}] = int(tileData[x+y*42])
		}
	}

	for _, coord := range sortedCellKeys(g.TileDic) {
		tileID := g.TileDic[coord]
		edges, hasEdges := tileGridEdgeMap[tileID]
		ortho, hasOrtho := tileSegmentOrthoMap[tileID]
		if hasEdges && hasOrtho {
			for y := 0; y < 3; y++ {
				for x := 0; x < 2; x++ {
					hc := HalfCell{2*coord.X + x, 2*coord.Y + y}
					g.HorGridEdgeDic[hc] = (g.HorGridEdgeDic[hc] + edges[2*y+x]) % 2
					g.horSegmentDic[hc] += ortho[2*y+x]
				}
			}
			for x := 0; x < 3; x++ {
				for y := 0; y < 2; y++ {
					hc := HalfCell{2*coord.X + x, 2*coord.Y + y}
					g.VerGridEdgeDic[hc] = (g.VerGridEdgeDic[hc] + edges[2*x+y+6]) % 2
					g.verSegmentDic[hc] += ortho[2*x+y+6]
				}
			}
		}

		xtl := float64(coord.X) * 24
		ytl := float64(coord.Y) * 24
		if diag, ok := tileSegmentDiagMap[tileID]; ok {
			seg := NewLinearSegment(xtl+diag[0].X, ytl+diag[0].Y, xtl+diag[1].X, ytl+diag[1].Y, true)
			g.SegmentDic[coord] = append(g.SegmentDic[coord], seg)
		}
		if circ, ok := tileSegmentCircularMap[tileID]; ok {
			seg := NewCircularSegment(xtl+circ.Center.X, ytl+circ.Center.Y, circ.HorVer.X, circ.HorVer.Y, circ.Convex)
			g.SegmentDic[coord] = append(g.SegmentDic[coord], seg)
		}
	}

	for _, coord := range sortedHalfCellKeys(g.horSegmentDic) {
		state := g.horSegmentDic[coord]
		if state == 0 {
			continue
		}
		cell := ClampCell(int(math.Floor(float64(coord.X)/2)), int(math.Floor((float64(coord.Y)-0.1*float64(state))/2)))
		x1, y1 := 12*float64(coord.X), 12*float64(coord.Y)
		x2, y2 := 12*float64(coord.X)+12, 12*float64(coord.Y)
		if state == -1 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		g.SegmentDic[cell] = append(g.SegmentDic[cell], NewLinearSegment(x1, y1, x2, y2, true))
	}
	for _, coord := range sortedHalfCellKeys(g.verSegmentDic) {
		state := g.verSegmentDic[coord]
		if state == 0 {
			continue
		}
		cell := ClampCell(int(math.Floor((float64(coord.X)-0.1*float64(state))/2)), int(math.Floor(float64(coord.Y)/2)))
		x1, y1 := 12*float64(coord.X), 12*float64(coord.Y)+12
		x2, y2 := 12*float64(coord.X), 12*float64(coord.Y)
		if state == -1 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		g.SegmentDic[cell] = append(g.SegmentDic[cell], NewLinearSegment(x1, y1, x2, y2, true))
	}
}

// sortedCellKeys returns a tile grid's cell keys in deterministic (X, then Y)
// order. Go's map iteration order is randomized per run, and the order
// segments are appended to SegmentDic here feeds straight into
// GetSingleClosestPoint's strict tie-break, so an unsorted range would make
// which segment wins a tie vary between runs of the same map.
func sortedCellKeys(m map[Cell]int) []Cell {
	keys := make([]Cell, 0, len(m))
	for c := range m {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})
	return keys
}

// sortedHalfCellKeys is sortedCellKeys for the half-cell grid-edge tables.
func sortedHalfCellKeys(m map[HalfCell]int) []HalfCell {
	keys := make([]HalfCell, 0, len(m))
	for c := range m {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})
	return keys
}
