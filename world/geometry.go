package world

import "math"

// TimeOfIntersectionCircleVsCircle returns the time of intersection, as a
// fraction of a frame, of a circle swept from (x,y) by (vx,vy) against a
// fixed circle at (a,b), given the combined radius.
func TimeOfIntersectionCircleVsCircle(x, y, vx, vy, a, b, radius float64) float64 {
	dx := x - a
	dy := y - b
	distSq := dx*dx + dy*dy
	velSq := vx*vx + vy*vy
	dotProd := dx*vx + dy*vy
	if distSq-radius*radius > 0 {
		radicand := dotProd*dotProd - velSq*(distSq-radius*radius)
		if velSq > 0.0001 && dotProd < 0 && radicand >= 0 {
			return math.Min((-dotProd-math.Sqrt(radicand))/velSq, 1)
		}
		return 1
	}
	return 0
}

// TimeOfIntersectionCircleVsLineseg returns the time of intersection of a
// circle swept from (x,y) by (dx,dy) against the segment (a1,b1)-(a2,b2).
func TimeOfIntersectionCircleVsLineseg(x, y, dx, dy, a1, b1, a2, b2, radius float64) float64 {
	wx := a2 - a1
	wy := b2 - b1
	segLen := math.Hypot(wx, wy)
	nx := wx / segLen
	ny := wy / segLen
	normalProj := (x-a1)*ny - (y-b1)*nx
	horProj := (x-a1)*nx + (y-b1)*ny
	if math.Abs(normalProj) >= radius {
		dir := dx*ny - dy*nx
		if dir*normalProj < 0 {
			t := math.Min((math.Abs(normalProj)-radius)/math.Abs(dir), 1)
			horProj2 := horProj + t*(dx*nx+dy*ny)
			if horProj2 >= 0 && horProj2 <= segLen {
				return t
			}
		}
	} else if horProj >= 0 && horProj <= segLen {
		return 0
	}
	return 1
}

// TimeOfIntersectionCircleVsArc returns the time of intersection of a circle
// swept from (x,y) by (vx,vy) against a quarter-circle arc of radiusArc
// centered at (a,b) occupying the (hor,ver) quadrant. Assumes radiusCircle <
// radiusArc.
func TimeOfIntersectionCircleVsArc(x, y, vx, vy, a, b, hor, ver, radiusArc, radiusCircle float64) float64 {
	dx := x - a
	dy := y - b
	distSq := dx*dx + dy*dy
	velSq := vx*vx + vy*vy
	dotProd := dx*vx + dy*vy
	radius1 := radiusArc + radiusCircle
	radius2 := radiusArc - radiusCircle
	t := 1.0
	switch {
	case distSq > radius1*radius1:
		radicand := dotProd*dotProd - velSq*(distSq-radius1*radius1)
		if velSq > 0.0001 && dotProd < 0 && radicand >= 0 {
			t = (-dotProd - math.Sqrt(radicand)) / velSq
		}
	case distSq < radius2*radius2:
		radicand := dotProd*dotProd - velSq*(distSq-radius2*radius2)
		if velSq > 0.0001 {
			t = math.Min((-dotProd+math.Sqrt(radicand))/velSq, 1)
		}
	default:
		t = 0
	}
	if (dx+t*vx)*hor > 0 && (dy+t*vy)*ver > 0 {
		return t
	}
	return 1
}

// OverlapCircleVsCircle reports whether two circles, defined by center and
// radius, overlap.
func OverlapCircleVsCircle(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x1-x2, y1-y2) < r1+r2
}

// Depen is a depenetration result: a unit normal and the two axis-aligned
// penetration depths (the chosen axis's depth, then the other axis's).
type Depen struct {
	NormalX, NormalY float64
	Len1, Len2       float64
}

// PenetrationSquareVsPoint returns, if point (px,py) is inside the axis
// aligned square centered at (sx,sy) with half-side semiSide, the shortest
// depenetration normal and the penetration depths on both axes.
func PenetrationSquareVsPoint(sx, sy, px, py, semiSide float64) (Depen, bool) {
	dx := px - sx
	dy := py - sy
	penX := semiSide - math.Abs(dx)
	penY := semiSide - math.Abs(dy)
	if penX > 0 && penY > 0 {
		if penY <= penX {
			ny := 1.0
			if dy < 0 {
				ny = -1.0
			}
			return Depen{NormalX: 0, NormalY: ny, Len1: penY, Len2: penX}, true
		}
		nx := 1.0
		if dx < 0 {
			nx = -1.0
		}
		return Depen{NormalX: nx, NormalY: 0, Len1: penX, Len2: penY}, true
	}
	return Depen{}, false
}

// MapOrientationToVector returns the unit vector for a map orientation
// value (0-7, clockwise from +x).
func MapOrientationToVector(orientation int) (float64, float64) {
	diag := math.Sqrt2 / 2
	vectors := [8][2]float64{
		{1, 0}, {diag, diag}, {0, 1}, {-diag, diag},
		{-1, 0}, {-diag, -diag}, {0, -1}, {diag, -diag},
	}
	v := vectors[orientation&7]
	return v[0], v[1]
}

// GatherSegmentsFromRegion returns every active segment from the cells
// covering the rectangle (x1,y1)-(x2,y2).
func (g *Grid) GatherSegmentsFromRegion(x1, y1, x2, y2 float64) []Segment {
	c1 := ClampCell(int(math.Floor(x1/24)), int(math.Floor(y1/24)))
	c2 := ClampCell(int(math.Floor(x2/24)), int(math.Floor(y2/24)))
	var out []Segment
	for x := c1.X; x <= c2.X; x++ {
		for y := c1.Y; y <= c2.Y; y++ {
			for _, seg := range g.SegmentDic[Cell{x, y}] {
				if seg.Active() {
					out = append(out, seg)
				}
			}
		}
	}
	return out
}

// SweepCircleVsTiles returns the fraction of the (dx,dy) displacement that
// can be traveled before the swept circle of the given radius would
// intersect a tile segment.
func (g *Grid) SweepCircleVsTiles(xOld, yOld, dx, dy, radius float64) float64 {
	xNew := xOld + dx
	yNew := yOld + dy
	width := radius + 1
	x1 := math.Min(xOld, xNew) - width
	y1 := math.Min(yOld, yNew) - width
	x2 := math.Max(xOld, xNew) + width
	y2 := math.Max(yOld, yNew) + width
	segments := g.GatherSegmentsFromRegion(x1, y1, x2, y2)
	shortest := 1.0
	for _, seg := range segments {
		t := seg.IntersectWithRay(xOld, yOld, dx, dy, radius)
		shortest = math.Min(t, shortest)
	}
	return shortest
}

// GetSingleClosestPoint finds the closest point belonging to a collidable
// segment in the cells overlapping the square of half-side radius around
// (x,y); the point itself is not required to lie within radius. result is
// 0 if none found, 1 if the point
// belongs to the outside edge, -1 if it belongs to the inside edge.
func (g *Grid) GetSingleClosestPoint(x, y, radius float64) (result int, a, b float64, found bool) {
	segments := g.GatherSegmentsFromRegion(x-radius, y-radius, x+radius, y+radius)
	shortest := math.Inf(1)
	for _, seg := range segments {
		backFacing, pa, pb := seg.ClosestPoint(x, y)
		distSq := (x-pa)*(x-pa) + (y-pb)*(y-pb)
		if !backFacing {
			distSq -= 0.1
		}
		if distSq < shortest {
			shortest = distSq
			a, b = pa, pb
			found = true
			if backFacing {
				result = -1
			} else {
				result = 1
			}
		}
	}
	return result, a, b, found
}

// IsEmptyRow reports whether the cells (xcoord1..xcoord2, ycoord) have no
// solid horizontal grid edge in direction dir (+1 down, -1 up).
func (g *Grid) IsEmptyRow(xcoord1, xcoord2, ycoord, dir int) bool {
	// A cell's top and bottom edges each span two half-cell columns; its top
	// edge is half-cell row 2*ycoord and its bottom edge row 2*ycoord+2.
	hy := 2 * ycoord
	if dir == 1 {
		hy += 2
	}
	for x := xcoord1; x <= xcoord2; x++ {
		if g.HorGridEdgeDic[ClampHalfCell(2*x, hy)] != 0 || g.HorGridEdgeDic[ClampHalfCell(2*x+1, hy)] != 0 {
			return false
		}
	}
	return true
}

// IsEmptyColumn reports whether the cells (xcoord, ycoord1..ycoord2) have no
// solid vertical grid edge in direction dir (+1 right, -1 left).
func (g *Grid) IsEmptyColumn(xcoord, ycoord1, ycoord2, dir int) bool {
	// A cell's left and right edges each span two half-cell rows; its left
	// edge is half-cell column 2*xcoord and its right edge column 2*xcoord+2.
	hx := 2 * xcoord
	if dir == 1 {
		hx += 2
	}
	for y := ycoord1; y <= ycoord2; y++ {
		if g.VerGridEdgeDic[ClampHalfCell(hx, 2*y)] != 0 || g.VerGridEdgeDic[ClampHalfCell(hx, 2*y+1)] != 0 {
			return false
		}
	}
	return true
}
