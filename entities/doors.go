package entities

import (
	"math"

	"nsim/world"
)

// DoorBase is the segment and grid-edge bookkeeping shared by every door
// variant: a single collidable edge that toggles between passable and
// blocking by flipping its segment's active flag and the grid-edge table
// entry the ninja's tile sweep consults.
type DoorBase struct {
	Base
	Segment   *world.LinearSegment
	EdgeCells [2]world.HalfCell
	Vertical  bool
	Open      bool
}

func newDoorBase(ctx *Context, typ, x, y, orientation int) DoorBase {
	base := NewBase(ctx, typ, x, y)
	vx, vy := world.MapOrientationToVector(orientation)
	// The door segment runs perpendicular to its orientation vector,
	// spanning one cell (24px) centered on the door's position.
	px, py := -vy, vx
	seg := world.NewLinearSegment(base.X-px*12, base.Y-py*12, base.X+px*12, base.Y+py*12, false)
	vertical := math.Abs(vx) > math.Abs(vy)

	// The segment spans a full 24-unit tile edge, which covers two adjacent
	// 12-unit half-cells in the grid-edge occupancy tables: both must be
	// toggled together, or a neighboring door/tile sharing one of them would
	// see a half-blocked edge.
	var edgeCells [2]world.HalfCell
	if vertical {
		hx := int(math.Round(base.X / 12))
		hy := int(math.Floor(base.Y / 12))
		edgeCells = [2]world.HalfCell{
			world.ClampHalfCell(hx, hy-1),
			world.ClampHalfCell(hx, hy),
		}
	} else {
		hx := int(math.Floor(base.X / 12))
		hy := int(math.Round(base.Y / 12))
		edgeCells = [2]world.HalfCell{
			world.ClampHalfCell(hx-1, hy),
			world.ClampHalfCell(hx, hy),
		}
	}

	gridCell := world.ClampCell(int(math.Floor(base.X/24)), int(math.Floor(base.Y/24)))
	ctx.Grid.SegmentDic[gridCell] = append(ctx.Grid.SegmentDic[gridCell], seg)

	d := DoorBase{Base: base, Segment: seg, EdgeCells: edgeCells, Vertical: vertical}
	// A door starts closed: its segment already blocks by default, and the
	// grid-edge tables need the matching +1 contribution on both half-cells.
	for _, hc := range d.EdgeCells {
		if vertical {
			ctx.Grid.VerGridEdgeDic[hc]++
		} else {
			ctx.Grid.HorGridEdgeDic[hc]++
		}
	}
	return d
}

// changeState flips the door's passability: open means the segment stops
// colliding and both grid-edge entries lose their blocking contribution so
// the ninja's tile sweep passes through; closed restores both. The table
// entries are counters, not flags, so two doors sharing a half-cell stack
// correctly instead of one clobbering the other's state.
func (d *DoorBase) changeState(open bool) {
	if d.Open == open {
		return
	}
	d.Open = open
	d.Segment.SetActive(!open)
	delta := 1
	if open {
		delta = -1
	}
	for _, hc := range d.EdgeCells {
		if d.Vertical {
			d.Sim.Grid.VerGridEdgeDic[hc] += delta
		} else {
			d.Sim.Grid.HorGridEdgeDic[hc] += delta
		}
	}
}

func (d *DoorBase) touchesNinja(radius float64) bool {
	n := d.Sim.Ninja
	return world.OverlapCircleVsCircle(d.X, d.Y, radius, n.XPos, n.YPos, n.Radius())
}

const doorRegularRadius = 10
const doorRegularAutoCloseFrames = 5

// DoorRegular opens on touch and auto-closes after a few frames once the
// ninja leaves its trigger radius.
type DoorRegular struct {
	DoorBase
	closeTimer int
}

func NewDoorRegular(ctx *Context, x, y, orientation, mode int) *DoorRegular {
	return &DoorRegular{DoorBase: newDoorBase(ctx, TypeDoorRegular, x, y, orientation)}
}

func (d *DoorRegular) IsLogicalCollidable() bool { return true }
func (d *DoorRegular) IsThinkable() bool         { return true }

func (d *DoorRegular) LogicalCollision() CollisionOutcome {
	if d.touchesNinja(doorRegularRadius) {
		if !d.Open {
			d.changeState(true)
			d.LogState(1)
		}
		d.closeTimer = 0
	}
	return CollisionOutcome{}
}

func (d *DoorRegular) Think() {
	if !d.Open {
		return
	}
	if d.touchesNinja(doorRegularRadius) {
		d.closeTimer = 0
		return
	}
	d.closeTimer++
	if d.closeTimer >= doorRegularAutoCloseFrames {
		d.changeState(false)
		d.LogState(0)
	}
}

const doorLockedSwitchRadius = 5

// DoorLocked stays shut until its paired switch is touched, then stays open
// for the rest of the run.
type DoorLocked struct {
	DoorBase
}

func NewDoorLocked(ctx *Context, x, y, orientation, mode int) *DoorLocked {
	// newDoorBase already leaves the door closed by default.
	return &DoorLocked{DoorBase: newDoorBase(ctx, TypeDoorLocked, x, y, orientation)}
}

// DoorLockedSwitch is the collectible that opens a DoorLocked permanently.
type DoorLockedSwitch struct {
	Base
	Door *DoorLocked
}

func NewDoorLockedSwitch(ctx *Context, x, y, orientation, mode int, door *DoorLocked) *DoorLockedSwitch {
	return &DoorLockedSwitch{Base: NewBase(ctx, TypeDoorLocked, x, y), Door: door}
}

func (s *DoorLockedSwitch) IsLogicalCollidable() bool { return s.Active() }

func (s *DoorLockedSwitch) LogicalCollision() CollisionOutcome {
	x, y := s.Position()
	n := s.Sim.Ninja
	if world.OverlapCircleVsCircle(x, y, doorLockedSwitchRadius, n.XPos, n.YPos, n.Radius()) {
		s.SetActive(false)
		s.Door.changeState(true)
		s.LogState(1)
	}
	return CollisionOutcome{}
}

const doorTrapSwitchRadius = 5

// DoorTrap starts open and slams permanently shut once its switch is
// touched.
type DoorTrap struct {
	DoorBase
}

func NewDoorTrap(ctx *Context, x, y, orientation, mode int) *DoorTrap {
	d := &DoorTrap{DoorBase: newDoorBase(ctx, TypeDoorTrap, x, y, orientation)}
	d.changeState(true)
	return d
}

// DoorTrapSwitch is the collectible that permanently closes a DoorTrap.
type DoorTrapSwitch struct {
	Base
	Door *DoorTrap
}

func NewDoorTrapSwitch(ctx *Context, x, y, orientation, mode int, door *DoorTrap) *DoorTrapSwitch {
	return &DoorTrapSwitch{Base: NewBase(ctx, TypeDoorTrap, x, y), Door: door}
}

func (s *DoorTrapSwitch) IsLogicalCollidable() bool { return s.Active() }

func (s *DoorTrapSwitch) LogicalCollision() CollisionOutcome {
	x, y := s.Position()
	n := s.Sim.Ninja
	if world.OverlapCircleVsCircle(x, y, doorTrapSwitchRadius, n.XPos, n.YPos, n.Radius()) {
		s.SetActive(false)
		s.Door.changeState(false)
		s.LogState(0)
	}
	return CollisionOutcome{}
}
