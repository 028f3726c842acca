// Package entities holds the ninja physics state machine and the
// tagged-variant Entity implementations (gold, doors, bounce blocks,
// thwumps, and the rest of the interactive roster).
package entities

import (
	"math"

	"nsim/world"
)

// Map-data type ids, used both to pick a constructor in sim.Load and to
// dispatch type-specific behavior inside Ninja's collision routines (mirrors
// the reference implementation's reliance on entity.type).
const (
	TypeToggleMine     = 1
	TypeGold           = 2
	TypeExit           = 3
	TypeExitSwitch     = 4
	TypeDoorRegular    = 5
	TypeDoorLocked     = 6
	TypeDoorTrap       = 8
	TypeLaunchPad      = 10
	TypeOneWayPlatform = 11
	TypeBounceBlock    = 17
	TypeThwump         = 20
	TypeBoostPad       = 24
	TypeShoveThwump    = 28
)

// Context is the shared simulation state every entity and the ninja need to
// reach each other and the level geometry, playing the role the reference
// implementation's sim pointer plays for every entity.
type Context struct {
	Grid  *world.Grid
	Ninja *Ninja
	Index *Index
	Frame int
	Log   []LogEntry
}

// LogEntry records an entity state transition for debugging/tracing.
type LogEntry struct {
	Frame int
	Type  int
	X, Y  float64
	State int
}

// Boost is a launch-pad velocity boost returned from LogicalCollision.
type Boost struct{ X, Y float64 }

// CollisionOutcome is the result of Entity.LogicalCollision. A zero value
// means "no collision, nothing to report" exactly as a falsy Python return
// value would.
type CollisionOutcome struct {
	HasBoost      bool
	Boost         Boost
	HasWallNormal bool
	WallNormal    float64
}

// Entity is the tagged-variant interface every interactive map object
// implements. Capability flags determine which hooks Simulator.Tick calls,
// matching the reference's is_logical_collidable / is_physical_collidable /
// is_movable / is_thinkable flags.
type Entity interface {
	Type() int
	Cell() world.Cell
	Position() (x, y float64)
	Active() bool
	SetActive(bool)

	IsLogicalCollidable() bool
	IsPhysicalCollidable() bool
	IsMovable() bool
	IsThinkable() bool

	Move()
	Think()
	PhysicalCollision() (world.Depen, bool)
	LogicalCollision() CollisionOutcome
}

// Base implements the fields and grid bookkeeping common to every entity.
// Concrete entity types embed Base and override the hooks they need.
type Base struct {
	Sim    *Context
	type_  int
	X, Y   float64
	active bool
	cell   world.Cell
}

func NewBase(ctx *Context, typ int, xcoord, ycoord int) Base {
	x := float64(xcoord) * 6
	y := float64(ycoord) * 6
	return Base{
		Sim:    ctx,
		type_:  typ,
		X:      x,
		Y:      y,
		active: true,
		cell:   world.ClampCell(int(math.Floor(x/24)), int(math.Floor(y/24))),
	}
}

func (b *Base) Type() int                 { return b.type_ }
func (b *Base) Cell() world.Cell          { return b.cell }
func (b *Base) Position() (float64, float64) { return b.X, b.Y }
func (b *Base) Active() bool              { return b.active }
func (b *Base) SetActive(v bool)          { b.active = v }

func (b *Base) IsLogicalCollidable() bool  { return false }
func (b *Base) IsPhysicalCollidable() bool { return false }
func (b *Base) IsMovable() bool            { return false }
func (b *Base) IsThinkable() bool          { return false }

func (b *Base) Move()                                      {}
func (b *Base) Think()                                     {}
func (b *Base) PhysicalCollision() (world.Depen, bool)      { return world.Depen{}, false }
func (b *Base) LogicalCollision() CollisionOutcome          { return CollisionOutcome{} }

// GridMove re-homes the entity into its new cell in the spatial index if its
// center has crossed a cell boundary, matching Entity.grid_move.
func (b *Base) GridMove(self Entity) {
	newCell := world.ClampCell(int(math.Floor(b.X/24)), int(math.Floor(b.Y/24)))
	if newCell != b.cell {
		b.Sim.Index.Remove(b.cell, self)
		b.cell = newCell
		b.Sim.Index.Add(newCell, self)
	}
}

// LogState appends an entity-state transition to the shared entity log.
func (b *Base) LogState(state int) {
	b.Sim.Log = append(b.Sim.Log, LogEntry{Frame: b.Sim.Frame, Type: b.type_, X: b.X, Y: b.Y, State: state})
}
