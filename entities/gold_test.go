package entities

import "testing"

func TestGoldCollectedOnOverlap(t *testing.T) {
	ctx := newTestContext()
	g := NewGold(ctx, 10, 10, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = g.X, g.Y

	g.LogicalCollision()
	if g.Active() {
		t.Fatal("gold overlapping the ninja should deactivate")
	}
}

func TestGoldNotCollectedWhenFar(t *testing.T) {
	ctx := newTestContext()
	g := NewGold(ctx, 10, 10, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = g.X+1000, g.Y+1000

	g.LogicalCollision()
	if !g.Active() {
		t.Fatal("gold far from the ninja should remain active")
	}
}
