package entities

import "testing"

func TestOneWayPlatformBlocksApproachFromFacingSide(t *testing.T) {
	ctx := newTestContext()
	o := NewOneWayPlatform(ctx, 0, 0, 0, 0) // orientation 0: faces +x
	ctx.Ninja.XPos, ctx.Ninja.YPos = o.X+3, o.Y
	ctx.Ninja.XPosOld, ctx.Ninja.YPosOld = o.X+10, o.Y

	depen, ok := o.PhysicalCollision()
	if !ok {
		t.Fatal("a ninja resting on the facing side within range should be blocked")
	}
	if depen.NormalX != 1 || depen.NormalY != 0 {
		t.Fatalf("got normal (%v,%v), want (1,0)", depen.NormalX, depen.NormalY)
	}
}

func TestOneWayPlatformIgnoresNinjaNotNearLastFrame(t *testing.T) {
	ctx := newTestContext()
	o := NewOneWayPlatform(ctx, 0, 0, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = o.X+3, o.Y
	// last frame the ninja was nowhere near the platform's surface
	ctx.Ninja.XPosOld, ctx.Ninja.YPosOld = o.X-100, o.Y

	if _, ok := o.PhysicalCollision(); ok {
		t.Fatal("a ninja that wasn't already resting near the surface last frame should not be caught")
	}
}

func TestOneWayPlatformIgnoresLateralMiss(t *testing.T) {
	ctx := newTestContext()
	o := NewOneWayPlatform(ctx, 0, 0, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = o.X+3, o.Y+1000
	ctx.Ninja.XPosOld, ctx.Ninja.YPosOld = ctx.Ninja.XPos, ctx.Ninja.YPos

	if _, ok := o.PhysicalCollision(); ok {
		t.Fatal("a ninja far outside the platform's lateral band should not be caught")
	}
}
