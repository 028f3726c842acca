package entities

import (
	"math"

	"nsim/world"
)

const oneWaySemiSide = 12

// OneWayPlatform only blocks the ninja when approached from its facing
// side; Ninja.CollideVsObjects additionally projects velocity onto the
// surface tangent for this entity type so the ninja slides rather than
// bounces off it.
type OneWayPlatform struct {
	Base
	NormalX, NormalY float64
}

func NewOneWayPlatform(ctx *Context, x, y, orientation, mode int) *OneWayPlatform {
	nx, ny := world.MapOrientationToVector(orientation)
	return &OneWayPlatform{Base: NewBase(ctx, TypeOneWayPlatform, x, y), NormalX: nx, NormalY: ny}
}

func (o *OneWayPlatform) IsPhysicalCollidable() bool { return true }

func (o *OneWayPlatform) PhysicalCollision() (world.Depen, bool) {
	n := o.Sim.Ninja
	dx := n.XPos - o.X
	dy := n.YPos - o.Y
	nx, ny := o.NormalX, o.NormalY

	lateralDist := dy*nx - dx*ny
	direction := (n.YSpeed*nx - n.XSpeed*ny) * lateralDist
	radiusScalar := 0.91
	if direction >= 0 {
		radiusScalar = 0.51
	}

	if math.Abs(lateralDist) > oneWaySemiSide+n.Radius() {
		return world.Depen{}, false
	}

	normalDist := dx*nx + dy*ny
	if normalDist < 0 || normalDist > n.Radius()*radiusScalar {
		return world.Depen{}, false
	}

	// Gate on the ninja's position last frame too: a ninja that was already
	// deep past the platform shouldn't snap back onto it just by slowing
	// down within the current frame's overlap.
	dxOld := n.XPosOld - o.X
	dyOld := n.YPosOld - o.Y
	normalDistOld := dxOld*nx + dyOld*ny
	if n.Radius()-normalDistOld > 1.1 {
		return world.Depen{}, false
	}

	pen := n.Radius()*radiusScalar - normalDist
	return world.Depen{NormalX: nx, NormalY: ny, Len1: pen, Len2: 0}, true
}
