package entities

import "testing"

func TestToggleMineStartsStateFromMode(t *testing.T) {
	ctx := newTestContext()
	armed := NewToggleMine(ctx, 10, 10, 0, 0)
	if armed.State != MineToggled {
		t.Fatalf("mode 0 should start armed, got state %d", armed.State)
	}
	safe := NewToggleMine(ctx, 10, 10, 0, 1)
	if safe.State != MineUntoggled {
		t.Fatalf("non-zero mode should start untoggled, got state %d", safe.State)
	}
}

func TestArmedMineKillsNinjaOnTouch(t *testing.T) {
	ctx := newTestContext()
	m := NewToggleMine(ctx, 10, 10, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = m.X, m.Y

	m.LogicalCollision()

	if ctx.Ninja.State != StateAwaitingDeath {
		t.Fatalf("touching an armed mine should kill the ninja, got state %d", ctx.Ninja.State)
	}
}

func TestUntoggledMineTogglesThenArmsOnDeparture(t *testing.T) {
	ctx := newTestContext()
	m := NewToggleMine(ctx, 10, 10, 0, 1)
	ctx.Ninja.XPos, ctx.Ninja.YPos = m.X, m.Y

	m.Think()
	if m.State != MineToggling {
		t.Fatalf("touching an untoggled mine should move it to toggling, got %d", m.State)
	}

	ctx.Ninja.XPos, ctx.Ninja.YPos = m.X+1000, m.Y+1000
	m.Think()
	if m.State != MineToggled {
		t.Fatalf("a toggling mine should arm once the ninja leaves, got %d", m.State)
	}
}

func TestTogglingMineResetsToSafeWhenNinjaDiesWhileStillTouching(t *testing.T) {
	ctx := newTestContext()
	m := NewToggleMine(ctx, 10, 10, 0, 1)
	ctx.Ninja.XPos, ctx.Ninja.YPos = m.X, m.Y

	m.Think()
	if m.State != MineToggling {
		t.Fatalf("touching an untoggled mine should move it to toggling, got %d", m.State)
	}

	ctx.Ninja.Kill()
	ctx.Ninja.Think() // awaiting-death -> dead
	m.Think()
	if m.State != MineUntoggled {
		t.Fatalf("a mine mid-arming should reset to safe if the ninja dies while still touching it, got %d", m.State)
	}
}
