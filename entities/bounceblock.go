package entities

import "nsim/world"

const (
	bounceSemiSide  = 9
	bounceStiffness = 0.02222222222222222
	bounceDampening = 0.98
	bounceStrength  = 0.2
)

// BounceBlock is a movable square that springs back toward its origin and
// shares depenetration with the ninja it collides with: the block absorbs
// most of the penetration, the ninja the rest, so both end up displaced.
type BounceBlock struct {
	Base
	XSpeed, YSpeed   float64
	XOrigin, YOrigin float64
}

func NewBounceBlock(ctx *Context, x, y, orientation, mode int) *BounceBlock {
	b := &BounceBlock{Base: NewBase(ctx, TypeBounceBlock, x, y)}
	b.XOrigin, b.YOrigin = b.X, b.Y
	return b
}

func (b *BounceBlock) IsMovable() bool            { return true }
func (b *BounceBlock) IsPhysicalCollidable() bool { return true }
func (b *BounceBlock) IsLogicalCollidable() bool  { return true }

func (b *BounceBlock) Move() {
	b.XSpeed *= bounceDampening
	b.YSpeed *= bounceDampening
	b.X += b.XSpeed
	b.Y += b.YSpeed

	xforce := bounceStiffness * (b.XOrigin - b.X)
	yforce := bounceStiffness * (b.YOrigin - b.Y)
	b.X += xforce
	b.Y += yforce
	b.XSpeed += xforce
	b.YSpeed += yforce

	b.GridMove(b)
}

func (b *BounceBlock) PhysicalCollision() (world.Depen, bool) {
	n := b.Sim.Ninja
	depen, ok := world.PenetrationSquareVsPoint(b.X, b.Y, n.XPos, n.YPos, bounceSemiSide+n.Radius())
	if !ok {
		return world.Depen{}, false
	}
	blockShare := depen.Len1 * (1 - bounceStrength)
	b.X -= depen.NormalX * blockShare
	b.Y -= depen.NormalY * blockShare
	b.XSpeed -= depen.NormalX * blockShare
	b.YSpeed -= depen.NormalY * blockShare
	return world.Depen{
		NormalX: depen.NormalX,
		NormalY: depen.NormalY,
		Len1:    depen.Len1 * bounceStrength,
		Len2:    depen.Len2,
	}, true
}

// LogicalCollision contributes a wall normal when the ninja is pressed
// against one of the block's faces, with a little extra slack over the
// physical depenetration radius, so the ninja can wall-jump off it.
func (b *BounceBlock) LogicalCollision() CollisionOutcome {
	n := b.Sim.Ninja
	depen, ok := world.PenetrationSquareVsPoint(b.X, b.Y, n.XPos, n.YPos, bounceSemiSide+n.Radius()+0.1)
	if !ok {
		return CollisionOutcome{}
	}
	return CollisionOutcome{HasWallNormal: true, WallNormal: depen.NormalX}
}
