package entities

import (
	"math"

	"nsim/world"
)

const (
	thwumpSemiSide      = 9
	thwumpForwardSpeed  = 20.0 / 7.0
	thwumpBackwardSpeed = 8.0 / 7.0
	thwumpSightCap      = 100
	thwumpMaxTravel     = 24.0 * 8
)

// Thwump states.
const (
	ThwumpImmobile  = 0
	ThwumpForward   = 1
	ThwumpBackward  = -1
)

// Thwump charges forward along its facing direction once it has a clear
// line of sight to the ninja along that axis, then retreats to its origin
// once it has traveled far enough or hit a wall.
type Thwump struct {
	Base
	DirX, DirY       float64
	State            int
	XOrigin, YOrigin float64
	Travelled        float64
}

func NewThwump(ctx *Context, x, y, orientation, mode int) *Thwump {
	dx, dy := world.MapOrientationToVector(orientation)
	t := &Thwump{Base: NewBase(ctx, TypeThwump, x, y), DirX: dx, DirY: dy}
	t.XOrigin, t.YOrigin = t.X, t.Y
	return t
}

func (t *Thwump) IsMovable() bool            { return true }
func (t *Thwump) IsThinkable() bool          { return true }
func (t *Thwump) IsPhysicalCollidable() bool { return true }
func (t *Thwump) IsLogicalCollidable() bool  { return true }

func (t *Thwump) PhysicalCollision() (world.Depen, bool) {
	n := t.Sim.Ninja
	return world.PenetrationSquareVsPoint(t.X, t.Y, n.XPos, n.YPos, thwumpSemiSide+n.Radius())
}

// LogicalCollision contributes a wall normal when the ninja is pressed
// against one of the thwump's faces, with a little extra slack over the
// physical depenetration radius, so the ninja can wall-jump off it.
func (t *Thwump) LogicalCollision() CollisionOutcome {
	n := t.Sim.Ninja
	depen, ok := world.PenetrationSquareVsPoint(t.X, t.Y, n.XPos, n.YPos, thwumpSemiSide+n.Radius()+0.1)
	if !ok {
		return CollisionOutcome{}
	}
	return CollisionOutcome{HasWallNormal: true, WallNormal: depen.NormalX}
}

// canSeeNinja walks cell-by-cell along the thwump's facing axis (capped at
// thwumpSightCap steps) checking for a clear run of empty grid edges,
// requiring the ninja to be within the thwump's lateral band.
func (t *Thwump) canSeeNinja() bool {
	n := t.Sim.Ninja
	cell := world.ClampCell(int(math.Floor(t.X/24)), int(math.Floor(t.Y/24)))
	ncell := world.ClampCell(int(math.Floor(n.XPos/24)), int(math.Floor(n.YPos/24)))

	if t.DirX != 0 {
		if math.Abs(n.YPos-t.Y) > thwumpSemiSide {
			return false
		}
		dir := 1
		if t.DirX < 0 {
			dir = -1
		}
		if (ncell.X-cell.X)*dir <= 0 {
			return false
		}
		for i := 0; i < thwumpSightCap; i++ {
			x := cell.X + dir*i
			if dir > 0 && x >= ncell.X {
				break
			}
			if dir < 0 && x <= ncell.X {
				break
			}
			if !t.Sim.Grid.IsEmptyColumn(x, cell.Y, cell.Y, dir) {
				return false
			}
		}
		return true
	}

	if math.Abs(n.XPos-t.X) > thwumpSemiSide {
		return false
	}
	dir := 1
	if t.DirY < 0 {
		dir = -1
	}
	if (ncell.Y-cell.Y)*dir <= 0 {
		return false
	}
	for i := 0; i < thwumpSightCap; i++ {
		y := cell.Y + dir*i
		if dir > 0 && y >= ncell.Y {
			break
		}
		if dir < 0 && y <= ncell.Y {
			break
		}
		if !t.Sim.Grid.IsEmptyRow(cell.X, cell.X, y, dir) {
			return false
		}
	}
	return true
}

func (t *Thwump) Move() {
	switch t.State {
	case ThwumpForward:
		cell := world.ClampCell(int(math.Floor(t.X/24)), int(math.Floor(t.Y/24)))
		clear := true
		if t.DirX != 0 {
			clear = t.Sim.Grid.IsEmptyColumn(cell.X, cell.Y, cell.Y, int(math.Copysign(1, t.DirX)))
		} else if t.DirY != 0 {
			clear = t.Sim.Grid.IsEmptyRow(cell.X, cell.X, cell.Y, int(math.Copysign(1, t.DirY)))
		}
		if !clear {
			t.State = ThwumpBackward
			return
		}
		t.X += t.DirX * thwumpForwardSpeed
		t.Y += t.DirY * thwumpForwardSpeed
		t.Travelled += thwumpForwardSpeed
		if t.Travelled >= thwumpMaxTravel {
			t.State = ThwumpBackward
		}
		t.GridMove(t)
	case ThwumpBackward:
		t.X -= t.DirX * thwumpBackwardSpeed
		t.Y -= t.DirY * thwumpBackwardSpeed
		t.Travelled -= thwumpBackwardSpeed
		if t.Travelled <= 0 {
			t.X, t.Y = t.XOrigin, t.YOrigin
			t.Travelled = 0
			t.State = ThwumpImmobile
		}
		t.GridMove(t)
	}
}

func (t *Thwump) Think() {
	if t.State == ThwumpImmobile && t.canSeeNinja() {
		t.State = ThwumpForward
		t.LogState(ThwumpForward)
	}
}
