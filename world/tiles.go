package world

// tileGridEdgeMap maps every tile id to the grid edges it contributes. The
// first 6 values are horizontal half-tile edges (left to right, then top to
// bottom); the last 6 are vertical half-tile edges (top to bottom, then left
// to right). 1 if there is a grid edge, 0 otherwise.
var tileGridEdgeMap = map[int][12]int{
	0: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 1: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	2: {1, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0}, 3: {0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1},
	4: {0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1}, 5: {1, 0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0},
	6: {1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0}, 7: {1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1},
	8: {0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1}, 9: {1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 1},
	10: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 11: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	12: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 13: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	14: {1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0}, 15: {1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1},
	16: {0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1}, 17: {1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 1},
	18: {1, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0}, 19: {1, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0},
	20: {0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1}, 21: {0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1},
	22: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 23: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	24: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 25: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	26: {1, 0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0}, 27: {0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1},
	28: {0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1}, 29: {1, 0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0},
	30: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 31: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	32: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1}, 33: {1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
	34: {1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 35: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	36: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0}, 37: {0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
}

// tileSegmentOrthoMap maps every tile id to the orthogonal linear segments it
// contributes, in the same order as tileGridEdgeMap. 0 if no segment, -1 if
// the outward normal faces left/up, 1 if it faces right/down.
var tileSegmentOrthoMap = map[int][12]int{
	0: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 1: {-1, -1, 0, 0, 1, 1, -1, -1, 0, 0, 1, 1},
	2: {-1, -1, 1, 1, 0, 0, -1, 0, 0, 0, 1, 0}, 3: {0, -1, 0, 0, 0, 1, 0, 0, -1, -1, 1, 1},
	4: {0, 0, -1, -1, 1, 1, 0, -1, 0, 0, 0, 1}, 5: {-1, 0, 0, 0, 1, 0, -1, -1, 1, 1, 0, 0},
	6: {-1, -1, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0}, 7: {-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	8: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1}, 9: {0, 0, 0, 0, 1, 1, -1, -1, 0, 0, 0, 0},
	10: {-1, -1, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0}, 11: {-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	12: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1}, 13: {0, 0, 0, 0, 1, 1, -1, -1, 0, 0, 0, 0},
	14: {-1, -1, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0}, 15: {-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	16: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1}, 17: {0, 0, 0, 0, 1, 1, -1, -1, 0, 0, 0, 0},
	18: {-1, -1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0}, 19: {-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	20: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 1}, 21: {0, 0, 0, 0, 1, 1, 0, -1, 0, 0, 0, 0},
	22: {-1, -1, 0, 0, 0, 0, -1, -1, 0, 0, 1, 0}, 23: {-1, -1, 0, 0, 0, 0, -1, 0, 0, 0, 1, 1},
	24: {0, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 1}, 25: {0, 0, 0, 0, 1, 1, -1, -1, 0, 0, 0, 1},
	26: {-1, 0, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0}, 27: {0, -1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	28: {0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1}, 29: {0, 0, 0, 0, 1, 0, -1, -1, 0, 0, 0, 0},
	30: {-1, -1, 0, 0, 1, 0, -1, -1, 0, 0, 0, 0}, 31: {-1, -1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1},
	32: {0, -1, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1}, 33: {-1, 0, 0, 0, 1, 1, -1, -1, 0, 0, 0, 0},
	34: {-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 35: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	36: {0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0}, 37: {0, 0, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0},
}

type point struct{ X, Y float64 }

// tileSegmentDiagMap maps a diagonal tile id to its two segment endpoints,
// offsets within the tile's 24x24 cell.
var tileSegmentDiagMap = map[int][2]point{
	6:  {{0, 24}, {24, 0}}, 7: {{0, 0}, {24, 24}},
	8:  {{24, 0}, {0, 24}}, 9: {{24, 24}, {0, 0}},
	18: {{0, 12}, {24, 0}}, 19: {{0, 0}, {24, 12}},
	20: {{24, 12}, {0, 24}}, 21: {{24, 24}, {0, 12}},
	22: {{0, 24}, {24, 12}}, 23: {{0, 12}, {24, 24}},
	24: {{24, 0}, {0, 12}}, 25: {{24, 12}, {0, 0}},
	26: {{0, 24}, {12, 0}}, 27: {{12, 0}, {24, 24}},
	28: {{24, 0}, {12, 24}}, 29: {{12, 24}, {0, 0}},
	30: {{12, 24}, {24, 0}}, 31: {{0, 0}, {12, 24}},
	32: {{12, 0}, {0, 24}}, 33: {{24, 24}, {12, 0}},
}

type circularTile struct {
	Center  point
	HorVer  point
	Convex  bool
}

// tileSegmentCircularMap maps a quarter-moon/pipe tile id to its arc center
// offset, quadrant, and convexity.
var tileSegmentCircularMap = map[int]circularTile{
	10: {point{0, 0}, point{1, 1}, true}, 11: {point{24, 0}, point{-1, 1}, true},
	12: {point{24, 24}, point{-1, -1}, true}, 13: {point{0, 24}, point{1, -1}, true},
	14: {point{24, 24}, point{-1, -1}, false}, 15: {point{0, 24}, point{1, -1}, false},
	16: {point{0, 0}, point{1, 1}, false}, 17: {point{24, 0}, point{-1, 1}, false},
}
