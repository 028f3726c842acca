package world

import (
	"errors"
	"testing"

	"nsim/engine"
)

func buildMapBytes(goldCount, exitDoorCount, spawnX, spawnY byte, entities ...byte) []byte {
	data := make([]byte, max(entityHeaderOffset+5, entityHeaderOffset+len(entities)))
	data[1154] = goldCount
	data[1156] = exitDoorCount
	data[1231] = spawnX
	data[1232] = spawnY
	copy(data[entityHeaderOffset:], entities)
	return data
}

func TestParseMapTooShort(t *testing.T) {
	_, err := ParseMap(make([]byte, 10))
	if !errors.Is(err, engine.ErrMapTooShort) {
		t.Fatalf("expected ErrMapTooShort, got %v", err)
	}
}

func TestParseMapHeaderFields(t *testing.T) {
	data := buildMapBytes(3, 1, 50, 60)
	m, err := ParseMap(data)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	if m.GoldCount != 3 || m.ExitDoorCount != 1 {
		t.Fatalf("got gold=%d exit=%d, want gold=3 exit=1", m.GoldCount, m.ExitDoorCount)
	}
	if m.NinjaSpawnX != 50 || m.NinjaSpawnY != 60 {
		t.Fatalf("got spawn (%d,%d), want (50,60)", m.NinjaSpawnX, m.NinjaSpawnY)
	}
	if len(m.TileData) != 966 {
		t.Fatalf("got %d tile bytes, want 966", len(m.TileData))
	}
}

func TestParseMapEntityRecords(t *testing.T) {
	data := buildMapBytes(0, 0, 0, 0, 2, 10, 20, 0, 0, 5, 30, 40, 1, 0)
	m, err := ParseMap(data)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	if len(m.Entities) != 2 {
		t.Fatalf("got %d entities, want 2", len(m.Entities))
	}
	if m.Entities[0].Type != 2 || m.Entities[0].X != 10 || m.Entities[0].Y != 20 {
		t.Fatalf("unexpected first entity record: %+v", m.Entities[0])
	}
	if m.Entities[1].Type != 5 || m.Entities[1].X != 30 || m.Entities[1].Y != 40 || m.Entities[1].Orientation != 1 {
		t.Fatalf("unexpected second entity record: %+v", m.Entities[1])
	}
}
