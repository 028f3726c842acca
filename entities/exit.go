package entities

import "nsim/world"

const exitRadius = 12

// Exit is the level's win trigger. It is not logically collidable until its
// paired ExitSwitch has been touched.
type Exit struct {
	Base
	Ready     bool
	ExitFrame int
}

func NewExit(ctx *Context, x, y, orientation, mode int) *Exit {
	return &Exit{Base: NewBase(ctx, TypeExit, x, y)}
}

func (e *Exit) IsLogicalCollidable() bool { return e.Ready }

func (e *Exit) LogicalCollision() CollisionOutcome {
	x, y := e.Position()
	n := e.Sim.Ninja
	if world.OverlapCircleVsCircle(x, y, exitRadius, n.XPos, n.YPos, n.Radius()) {
		e.ExitFrame = e.Sim.Frame
		n.Win()
		e.LogState(1)
	}
	return CollisionOutcome{}
}

const exitSwitchRadius = 6

// ExitSwitch arms its paired Exit door when touched, then deactivates.
type ExitSwitch struct {
	Base
	ParentExit *Exit
}

func NewExitSwitch(ctx *Context, x, y, orientation, mode int, parent *Exit) *ExitSwitch {
	return &ExitSwitch{Base: NewBase(ctx, TypeExitSwitch, x, y), ParentExit: parent}
}

func (s *ExitSwitch) IsLogicalCollidable() bool { return s.Active() }

func (s *ExitSwitch) LogicalCollision() CollisionOutcome {
	x, y := s.Position()
	n := s.Sim.Ninja
	if world.OverlapCircleVsCircle(x, y, exitSwitchRadius, n.XPos, n.YPos, n.Radius()) {
		s.SetActive(false)
		s.ParentExit.Ready = true
		s.LogState(0)
	}
	return CollisionOutcome{}
}
