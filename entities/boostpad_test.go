package entities

import "testing"

func TestBoostPadBoostsOnEntry(t *testing.T) {
	ctx := newTestContext()
	p := NewBoostPad(ctx, 0, 0, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = p.X, p.Y
	ctx.Ninja.XSpeed, ctx.Ninja.YSpeed = 1, 0

	p.Think()
	if ctx.Ninja.XSpeed <= 1 {
		t.Fatalf("entering the boost pad should increase speed, got xspeed %v", ctx.Ninja.XSpeed)
	}
}

func TestBoostPadDoesNotRetriggerWhileStillTouching(t *testing.T) {
	ctx := newTestContext()
	p := NewBoostPad(ctx, 0, 0, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = p.X, p.Y
	ctx.Ninja.XSpeed, ctx.Ninja.YSpeed = 1, 0

	p.Think()
	boosted := ctx.Ninja.XSpeed
	p.Think()
	if ctx.Ninja.XSpeed != boosted {
		t.Fatalf("staying inside the pad should not re-apply the boost, got %v then %v", boosted, ctx.Ninja.XSpeed)
	}
}

func TestBoostPadIgnoresInvalidTarget(t *testing.T) {
	ctx := newTestContext()
	p := NewBoostPad(ctx, 0, 0, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = p.X, p.Y
	ctx.Ninja.XSpeed, ctx.Ninja.YSpeed = 1, 0
	ctx.Ninja.State = StateCelebrating

	p.Think()
	if ctx.Ninja.XSpeed != 1 {
		t.Fatalf("a celebrating ninja should not receive a boost, got xspeed %v", ctx.Ninja.XSpeed)
	}
}
