package entities

import (
	"math"

	"nsim/world"
)

const (
	launchPadRadius = 6
	launchPadBoost  = 36.0 / 7.0
)

// LaunchPad fires the ninja along its orientation vector when the ninja
// crosses its trigger semicircle moving into it.
type LaunchPad struct {
	Base
	NormalX, NormalY float64
}

func NewLaunchPad(ctx *Context, x, y, orientation, mode int) *LaunchPad {
	nx, ny := world.MapOrientationToVector(orientation)
	return &LaunchPad{Base: NewBase(ctx, TypeLaunchPad, x, y), NormalX: nx, NormalY: ny}
}

func (l *LaunchPad) IsLogicalCollidable() bool { return true }

func (l *LaunchPad) LogicalCollision() CollisionOutcome {
	n := l.Sim.Ninja
	dx := n.XPos - l.X
	dy := n.YPos - l.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist > launchPadRadius+n.Radius() {
		return CollisionOutcome{}
	}
	// Trigger only from the back/approach side: a ninja already past the
	// pad, deep in its forward-facing direction, shouldn't re-fire it.
	if dx*l.NormalX+dy*l.NormalY > launchPadRadius+0.1 {
		return CollisionOutcome{}
	}
	yboostScale := 1.0
	if l.NormalY < 0 {
		yboostScale = 1 - l.NormalY
	}
	return CollisionOutcome{
		HasBoost: true,
		Boost:    Boost{X: l.NormalX * launchPadBoost, Y: l.NormalY * launchPadBoost * yboostScale},
	}
}
