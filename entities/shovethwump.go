package entities

import (
	"math"

	"nsim/world"
)

const (
	shoveSemiSide     = 12
	shoveLaunchSpeed  = 20.0 / 7.0
	shoveRetreatSpeed = 8.0 / 7.0
)

// ShoveThwump states.
const (
	ShoveImmobile   = 0
	ShoveActivated  = 1
	ShoveLaunching  = 2
	ShoveRetreating = 3
)

// ShoveThwump is a solid square core that, when touched while immobile,
// launches along the outward normal of the face that was touched (toward
// the ninja's side) before crawling back to its origin.
type ShoveThwump struct {
	Base
	State            int
	DirX, DirY       float64
	XOrigin, YOrigin float64
}

func NewShoveThwump(ctx *Context, x, y, orientation, mode int) *ShoveThwump {
	s := &ShoveThwump{Base: NewBase(ctx, TypeShoveThwump, x, y)}
	s.XOrigin, s.YOrigin = s.X, s.Y
	return s
}

func (s *ShoveThwump) IsMovable() bool            { return true }
func (s *ShoveThwump) IsLogicalCollidable() bool  { return s.State == ShoveImmobile }
func (s *ShoveThwump) IsPhysicalCollidable() bool { return true }

func (s *ShoveThwump) PhysicalCollision() (world.Depen, bool) {
	n := s.Sim.Ninja
	return world.PenetrationSquareVsPoint(s.X, s.Y, n.XPos, n.YPos, shoveSemiSide+n.Radius())
}

// LogicalCollision activates the core on a square-penetration touch, taking
// its launch direction from the penetration normal rather than the raw
// vector to the ninja, so it always fires axis-aligned along the face that
// was touched. A shallow lateral graze (the secondary penetration depth)
// doesn't count as a real touch.
func (s *ShoveThwump) LogicalCollision() CollisionOutcome {
	n := s.Sim.Ninja
	depen, ok := world.PenetrationSquareVsPoint(s.X, s.Y, n.XPos, n.YPos, shoveSemiSide+n.Radius())
	if !ok || depen.Len2 <= 0.2 {
		return CollisionOutcome{}
	}
	s.DirX, s.DirY = depen.NormalX, depen.NormalY
	s.State = ShoveActivated
	s.LogState(ShoveActivated)
	return CollisionOutcome{}
}

// blocked reports whether the shove thwump's next step along its current
// direction is blocked by a solid grid edge, the same wall-ahead test
// Thwump.canSeeNinja uses for its sight line.
func (s *ShoveThwump) blocked() bool {
	cell := world.ClampCell(int(math.Floor(s.X/24)), int(math.Floor(s.Y/24)))
	switch {
	case s.DirX > 0:
		return !s.Sim.Grid.IsEmptyColumn(cell.X, cell.Y, cell.Y, 1)
	case s.DirX < 0:
		return !s.Sim.Grid.IsEmptyColumn(cell.X, cell.Y, cell.Y, -1)
	case s.DirY > 0:
		return !s.Sim.Grid.IsEmptyRow(cell.X, cell.X, cell.Y, 1)
	case s.DirY < 0:
		return !s.Sim.Grid.IsEmptyRow(cell.X, cell.X, cell.Y, -1)
	}
	return false
}

// moveIfPossible runs the four-state launching/retreating cycle, stopping
// the launch as soon as it hits a wall rather than after a fixed distance.
func (s *ShoveThwump) moveIfPossible() {
	switch s.State {
	case ShoveActivated:
		s.State = ShoveLaunching
	case ShoveLaunching:
		if s.blocked() {
			s.State = ShoveRetreating
			return
		}
		s.X += s.DirX * shoveLaunchSpeed
		s.Y += s.DirY * shoveLaunchSpeed
		s.GridMove(s)
	case ShoveRetreating:
		s.X -= s.DirX * shoveRetreatSpeed
		s.Y -= s.DirY * shoveRetreatSpeed
		if math.Hypot(s.X-s.XOrigin, s.Y-s.YOrigin) <= shoveRetreatSpeed {
			s.X, s.Y = s.XOrigin, s.YOrigin
			s.State = ShoveImmobile
		}
		s.GridMove(s)
	}
}

func (s *ShoveThwump) Move() {
	s.moveIfPossible()
}
