package entities

import "testing"

func edgeDicValue(d DoorBase) int {
	if d.Vertical {
		return d.Sim.Grid.VerGridEdgeDic[d.EdgeCells[0]] + d.Sim.Grid.VerGridEdgeDic[d.EdgeCells[1]]
	}
	return d.Sim.Grid.HorGridEdgeDic[d.EdgeCells[0]] + d.Sim.Grid.HorGridEdgeDic[d.EdgeCells[1]]
}

func TestNewDoorBaseBlocksBothHalfCellsOfTheEdge(t *testing.T) {
	ctx := newTestContext()
	d := NewDoorRegular(ctx, 10, 10, 0, 0)
	if d.EdgeCells[0] == d.EdgeCells[1] {
		t.Fatal("a door's 24-unit edge should cover two distinct half-cells")
	}
	if d.Sim.Grid.VerGridEdgeDic[d.EdgeCells[0]] != 1 || d.Sim.Grid.VerGridEdgeDic[d.EdgeCells[1]] != 1 {
		t.Fatal("a freshly constructed closed door should block both of its half-cells")
	}
}

func TestDoorRegularOpensOnTouchAndAutoCloses(t *testing.T) {
	ctx := newTestContext()
	d := NewDoorRegular(ctx, 10, 10, 0, 0)
	ctx.Ninja.XPos, ctx.Ninja.YPos = d.X, d.Y

	d.LogicalCollision()
	if !d.Open {
		t.Fatal("touching a regular door should open it")
	}
	if edgeDicValue(d.DoorBase) != 0 {
		t.Fatal("opening a door should clear both of its half-cell grid-edge entries")
	}

	ctx.Ninja.XPos, ctx.Ninja.YPos = d.X+1000, d.Y+1000
	for i := 0; i < doorRegularAutoCloseFrames-1; i++ {
		d.Think()
	}
	if !d.Open {
		t.Fatal("door should remain open until the auto-close frame count elapses")
	}
	d.Think()
	if d.Open {
		t.Fatal("door should auto-close once the ninja has been away long enough")
	}
	if edgeDicValue(d.DoorBase) != 2 {
		t.Fatal("closing a door should restore both of its half-cell grid-edge entries")
	}
}

func TestOverlappingDoorsStackTheirEdgeCounters(t *testing.T) {
	ctx := newTestContext()
	a := NewDoorRegular(ctx, 10, 10, 0, 0)
	b := NewDoorRegular(ctx, 10, 10, 0, 0)
	if a.EdgeCells != b.EdgeCells {
		t.Fatal("two doors at the same position/orientation should share the same half-cells")
	}
	if edgeDicValue(a.DoorBase) != 4 {
		t.Fatalf("two closed overlapping doors should sum to a count of 4, got %d", edgeDicValue(a.DoorBase))
	}
	a.changeState(true)
	if edgeDicValue(a.DoorBase) != 2 {
		t.Fatal("opening one of two overlapping doors should leave the other's contribution blocking")
	}
}

func TestDoorLockedStartsClosedAndOpensIrreversibly(t *testing.T) {
	ctx := newTestContext()
	door := NewDoorLocked(ctx, 10, 10, 0, 0)
	if door.Open {
		t.Fatal("locked door should start closed")
	}
	sw := NewDoorLockedSwitch(ctx, 20, 20, 0, 0, door)
	ctx.Ninja.XPos, ctx.Ninja.YPos = sw.X, sw.Y

	sw.LogicalCollision()
	if !door.Open {
		t.Fatal("touching the switch should open the locked door")
	}
	if sw.Active() {
		t.Fatal("the switch should deactivate once used")
	}
}

func TestDoorTrapStartsOpenAndClosesIrreversibly(t *testing.T) {
	ctx := newTestContext()
	door := NewDoorTrap(ctx, 10, 10, 0, 0)
	if !door.Open {
		t.Fatal("trap door should start open")
	}
	sw := NewDoorTrapSwitch(ctx, 20, 20, 0, 0, door)
	ctx.Ninja.XPos, ctx.Ninja.YPos = sw.X, sw.Y

	sw.LogicalCollision()
	if door.Open {
		t.Fatal("touching the switch should close the trap door")
	}
}
