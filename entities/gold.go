package entities

import "nsim/world"

// goldRadius is the pickup radius of a gold piece.
const goldRadius = 6

// Gold is a one-shot pickup: touching it deactivates it permanently.
type Gold struct {
	Base
}

func NewGold(ctx *Context, x, y, orientation, mode int) *Gold {
	return &Gold{Base: NewBase(ctx, TypeGold, x, y)}
}

func (g *Gold) IsLogicalCollidable() bool { return true }

func (g *Gold) LogicalCollision() CollisionOutcome {
	n := g.Sim.Ninja
	if n.State == StateCelebrating {
		return CollisionOutcome{}
	}
	x, y := g.Position()
	if world.OverlapCircleVsCircle(x, y, goldRadius, n.XPos, n.YPos, n.Radius()) {
		g.SetActive(false)
		g.LogState(0)
	}
	return CollisionOutcome{}
}
