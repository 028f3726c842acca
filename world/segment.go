package world

import "math"

// Segment is a collidable edge the ninja's circle can rest against or pass
// through: either a straight tile/door edge or a quarter-circle tile arc.
type Segment interface {
	// ClosestPoint returns whether (x,y) faces the segment's back side, and
	// the closest point on the segment to (x,y).
	ClosestPoint(x, y float64) (backFacing bool, a, b float64)
	// IntersectWithRay returns the time of intersection, as a fraction of a
	// frame, of a circle of the given radius swept from (x,y) by (dx,dy).
	// 0 means already intersecting, 1 means no intersection this frame.
	IntersectWithRay(x, y, dx, dy, radius float64) float64
	Active() bool
	SetActive(bool)
}

// LinearSegment is a straight edge belonging to a tile or a door. Tile
// segments are oriented (they have an inner and outer face); door segments
// are not (collision is the same from both sides).
type LinearSegment struct {
	X1, Y1, X2, Y2 float64
	Oriented       bool
	active         bool
}

func NewLinearSegment(x1, y1, x2, y2 float64, oriented bool) *LinearSegment {
	return &LinearSegment{X1: x1, Y1: y1, X2: x2, Y2: y2, Oriented: oriented, active: true}
}

func (s *LinearSegment) Active() bool     { return s.active }
func (s *LinearSegment) SetActive(v bool) { s.active = v }

func (s *LinearSegment) ClosestPoint(x, y float64) (bool, float64, float64) {
	px := s.X2 - s.X1
	py := s.Y2 - s.Y1
	dx := x - s.X1
	dy := y - s.Y1
	segLenSq := px*px + py*py
	u := (dx*px + dy*py) / segLenSq
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	a := s.X1 + u*px
	b := s.Y1 + u*py
	backFacing := dy*px-dx*py < 0 && s.Oriented
	return backFacing, a, b
}

func (s *LinearSegment) IntersectWithRay(x, y, dx, dy, radius float64) float64 {
	t1 := TimeOfIntersectionCircleVsCircle(x, y, dx, dy, s.X1, s.Y1, radius)
	t2 := TimeOfIntersectionCircleVsCircle(x, y, dx, dy, s.X2, s.Y2, radius)
	t3 := TimeOfIntersectionCircleVsLineseg(x, y, dx, dy, s.X1, s.Y1, s.X2, s.Y2, radius)
	return math.Min(t1, math.Min(t2, t3))
}

// CircularSegment is a quarter-circle tile arc.
type CircularSegment struct {
	X, Y           float64
	Hor, Ver       float64
	Radius         float64
	Convex         bool
	PHorX, PHorY   float64
	PVerX, PVerY   float64
	active         bool
}

func NewCircularSegment(cx, cy, hor, ver float64, convex bool) *CircularSegment {
	const radius = 24
	return &CircularSegment{
		X: cx, Y: cy, Hor: hor, Ver: ver, Radius: radius, Convex: convex,
		PHorX: cx + radius*hor, PHorY: cy,
		PVerX: cx, PVerY: cy + radius*ver,
		active: true,
	}
}

func (s *CircularSegment) Active() bool     { return s.active }
func (s *CircularSegment) SetActive(v bool) { s.active = v }

func (s *CircularSegment) ClosestPoint(x, y float64) (bool, float64, float64) {
	dx := x - s.X
	dy := y - s.Y
	if dx*s.Hor > 0 && dy*s.Ver > 0 {
		dist := math.Hypot(dx, dy)
		a := s.X + s.Radius*dx/dist
		b := s.Y + s.Radius*dy/dist
		backFacing := dist < s.Radius
		if !s.Convex {
			backFacing = dist > s.Radius
		}
		return backFacing, a, b
	}
	if dx*s.Hor > dy*s.Ver {
		return false, s.PHorX, s.PHorY
	}
	return false, s.PVerX, s.PVerY
}

func (s *CircularSegment) IntersectWithRay(x, y, dx, dy, radius float64) float64 {
	t1 := TimeOfIntersectionCircleVsCircle(x, y, dx, dy, s.PHorX, s.PHorY, radius)
	t2 := TimeOfIntersectionCircleVsCircle(x, y, dx, dy, s.PVerX, s.PVerY, radius)
	t3 := TimeOfIntersectionCircleVsArc(x, y, dx, dy, s.X, s.Y, s.Hor, s.Ver, s.Radius, radius)
	return math.Min(t1, math.Min(t2, t3))
}
