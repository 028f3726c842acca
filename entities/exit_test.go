package entities

import "testing"

func TestExitSwitchArmsExitDoor(t *testing.T) {
	ctx := newTestContext()
	exit := NewExit(ctx, 10, 10, 0, 0)
	sw := NewExitSwitch(ctx, 20, 20, 0, 0, exit)

	if exit.IsLogicalCollidable() {
		t.Fatal("exit should not be collidable before its switch is touched")
	}

	ctx.Ninja.XPos, ctx.Ninja.YPos = sw.X, sw.Y
	sw.LogicalCollision()

	if sw.Active() {
		t.Fatal("switch should deactivate once touched")
	}
	if !exit.Ready {
		t.Fatal("touching the switch should arm its paired exit")
	}
	if !exit.IsLogicalCollidable() {
		t.Fatal("exit should become collidable once armed")
	}
}

func TestExitWinsOnTouchOnceArmed(t *testing.T) {
	ctx := newTestContext()
	exit := NewExit(ctx, 10, 10, 0, 0)
	exit.Ready = true
	ctx.Frame = 42
	ctx.Ninja.XPos, ctx.Ninja.YPos = exit.X, exit.Y

	exit.LogicalCollision()

	if ctx.Ninja.State != StateCelebrating {
		t.Fatalf("touching an armed exit should win, got state %d", ctx.Ninja.State)
	}
	if exit.ExitFrame != 42 {
		t.Fatalf("exit frame = %d, want 42", exit.ExitFrame)
	}
}
