package entities

import (
	"math"

	"nsim/world"
)

const boostPadRadius = 6

// BoostPad gives the ninja a one-shot speed boost along its current
// velocity direction on entry, and will not re-trigger until the ninja has
// fully left and re-entered its radius.
type BoostPad struct {
	Base
	touching bool
}

func NewBoostPad(ctx *Context, x, y, orientation, mode int) *BoostPad {
	return &BoostPad{Base: NewBase(ctx, TypeBoostPad, x, y)}
}

func (p *BoostPad) IsThinkable() bool { return true }

func (p *BoostPad) Think() {
	n := p.Sim.Ninja
	if !n.IsValidTarget() {
		p.touching = false
		return
	}
	overlapping := world.OverlapCircleVsCircle(p.X, p.Y, boostPadRadius, n.XPos, n.YPos, n.Radius())
	if overlapping && !p.touching {
		speed := math.Hypot(n.XSpeed, n.YSpeed)
		if speed > 0 {
			n.XSpeed += n.XSpeed / speed * 2
			n.YSpeed += n.YSpeed / speed * 2
			p.LogState(1)
		}
	}
	p.touching = overlapping
}
