package entities

import "nsim/world"

// Toggle mine states and their collision radii.
const (
	MineToggled   = 0 // armed, deadly on touch
	MineUntoggled = 1 // safe
	MineToggling  = 2 // ninja is standing on it, arms once they leave
)

var mineRadii = map[int]float64{
	MineToggled:   4,
	MineUntoggled: 3.5,
	MineToggling:  4.5,
}

// ToggleMine starts safe or armed depending on its map mode, and toggles
// between toggling/armed as the ninja enters and leaves its radius.
type ToggleMine struct {
	Base
	State int
}

func NewToggleMine(ctx *Context, x, y, orientation, mode int) *ToggleMine {
	m := &ToggleMine{Base: NewBase(ctx, TypeToggleMine, x, y), State: MineUntoggled}
	if mode == 0 {
		m.State = MineToggled
	}
	return m
}

func (m *ToggleMine) IsLogicalCollidable() bool { return true }
func (m *ToggleMine) IsThinkable() bool         { return true }

func (m *ToggleMine) overlapsNinja(radius float64) bool {
	x, y := m.Position()
	n := m.Sim.Ninja
	return world.OverlapCircleVsCircle(x, y, radius, n.XPos, n.YPos, n.Radius())
}

func (m *ToggleMine) LogicalCollision() CollisionOutcome {
	if m.State == MineToggled && m.overlapsNinja(mineRadii[MineToggled]) && m.Sim.Ninja.IsValidTarget() {
		m.Sim.Ninja.Kill()
		m.LogState(MineToggled)
	}
	return CollisionOutcome{}
}

// Think runs the untoggled/toggling transitions against the ninja's
// pre-move position, so a mine reacts to where the ninja was standing this
// frame rather than where collision resolution just pushed it.
func (m *ToggleMine) Think() {
	switch m.State {
	case MineUntoggled:
		if m.overlapsNinja(mineRadii[MineUntoggled]) {
			m.State = MineToggling
			m.LogState(MineToggling)
		}
	case MineToggling:
		if !m.overlapsNinja(mineRadii[MineToggling]) {
			m.State = MineToggled
			m.LogState(MineToggled)
		} else if m.Sim.Ninja.State == StateDead {
			m.State = MineUntoggled
			m.LogState(MineUntoggled)
		}
	}
}
