package sim

import (
	"testing"

	"nsim/engine"
	"nsim/entities"
)

const entityOffset = 1230

func buildMap(spawnX, spawnY byte, exitDoorCount byte, records ...byte) []byte {
	data := make([]byte, max(entityOffset+5, entityOffset+len(records)))
	data[1156] = exitDoorCount
	data[1231] = spawnX
	data[1232] = spawnY
	copy(data[entityOffset:], records)
	return data
}

func TestLoadEmptyMapSpawnsNinja(t *testing.T) {
	s := New(engine.DefaultPhysicsConfig())
	if err := s.Load(buildMap(50, 10, 0)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Ninja.XPos != 300 || s.Ninja.YPos != 60 {
		t.Fatalf("got spawn (%v,%v), want (300,60)", s.Ninja.XPos, s.Ninja.YPos)
	}
}

func TestTickFallsUnderGravityWithNoInput(t *testing.T) {
	s := New(engine.DefaultPhysicsConfig())
	if err := s.Load(buildMap(50, 10, 0)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	startY := s.Ninja.YPos
	for i := 0; i < 10; i++ {
		s.Tick(0)
	}
	if s.Ninja.YPos <= startY {
		t.Fatalf("ninja should fall under gravity, started at %v now at %v", startY, s.Ninja.YPos)
	}
	if len(s.Trace) != 10 {
		t.Fatalf("expected 10 recorded frames, got %d", len(s.Trace))
	}
}

func TestLoadPairsExitWithTrailingSwitch(t *testing.T) {
	// One exit door record (type 3) followed by its paired switch (type 4)
	// at the tail of the entity table, the on-disk convention the switch
	// pairing logic in Load relies on.
	records := []byte{
		entities.TypeExit, 10, 10, 0, 0,
		entities.TypeExitSwitch, 20, 20, 0, 0,
	}
	s := New(engine.DefaultPhysicsConfig())
	if err := s.Load(buildMap(50, 10, 1, records...)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var exit *entities.Exit
	var sw *entities.ExitSwitch
	for _, e := range s.Entities {
		switch v := e.(type) {
		case *entities.Exit:
			exit = v
		case *entities.ExitSwitch:
			sw = v
		}
	}
	if exit == nil || sw == nil {
		t.Fatal("expected both an exit and a switch to be constructed")
	}
	if sw.ParentExit != exit {
		t.Fatal("switch should be paired with the exit door preceding it")
	}
}

func TestRunningStopsWhenDead(t *testing.T) {
	s := New(engine.DefaultPhysicsConfig())
	if err := s.Load(buildMap(50, 10, 0)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s.Ninja.Kill()
	s.Ninja.Think() // awaiting-death -> dead
	s.Dead = s.Ninja.State == entities.StateDead
	if s.Running() {
		t.Fatal("simulator should stop running once the ninja is dead")
	}
}
