// Package sim wires a parsed map into a world.Grid, an entity roster, and a
// Ninja, and drives them forward one frame at a time.
package sim

import (
	"fmt"

	"nsim/engine"
	"nsim/entities"
	"nsim/input"
	"nsim/world"
)

// Frame is one tick's worth of recorded state, used to build a replay trace.
type Frame struct {
	Num            int
	XPos, YPos     float64
	XSpeed, YSpeed float64
	State          int
}

// Simulator owns the level geometry, the entity roster, and the ninja, and
// steps them forward frame by frame under a fixed physics configuration.
type Simulator struct {
	cfg      engine.PhysicsConfig
	log      *engine.LoggerManager
	Grid     *world.Grid
	Index    *entities.Index
	Ninja    *entities.Ninja
	Entities []entities.Entity
	ctx      *entities.Context

	Frame     int
	ExitFrame int
	Won       bool
	Dead      bool
	Trace     []Frame
}

// New creates a simulator that runs under the given physics configuration.
func New(cfg engine.PhysicsConfig) *Simulator {
	return &Simulator{cfg: cfg, log: engine.GetLoggerManager()}
}

// Load parses a binary map and builds the tile grid, ninja, and entity
// roster from it.
func (s *Simulator) Load(mapData []byte) error {
	m, err := world.ParseMap(mapData)
	if err != nil {
		return err
	}

	s.Grid = world.NewGrid()
	s.Grid.LoadTiles(m.TileData)
	s.Index = entities.NewIndex()
	s.Ninja = entities.NewNinja(s.cfg, m.NinjaSpawnX, m.NinjaSpawnY)
	s.ctx = &entities.Context{Grid: s.Grid, Ninja: s.Ninja, Index: s.Index}

	var pendingExits []*entities.Exit
	var switchesSeen int

	for _, rec := range m.Entities {
		var e entities.Entity
		switch rec.Type {
		case entities.TypeToggleMine:
			e = entities.NewToggleMine(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeGold:
			e = entities.NewGold(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeExit:
			exit := entities.NewExit(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
			pendingExits = append(pendingExits, exit)
			e = exit
		case entities.TypeExitSwitch:
			if switchesSeen >= len(pendingExits) {
				continue
			}
			parent := pendingExits[switchesSeen]
			switchesSeen++
			e = entities.NewExitSwitch(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode, parent)
		case entities.TypeDoorRegular:
			e = entities.NewDoorRegular(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeDoorLocked:
			door := entities.NewDoorLocked(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
			s.Entities = append(s.Entities, door)
			s.Index.Add(door.Cell(), door)
			swX, swY := m.ByteAt(rec.Offset+6), m.ByteAt(rec.Offset+7)
			e = entities.NewDoorLockedSwitch(s.ctx, swX, swY, rec.Orientation, rec.Mode, door)
		case entities.TypeDoorTrap:
			door := entities.NewDoorTrap(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
			s.Entities = append(s.Entities, door)
			s.Index.Add(door.Cell(), door)
			swX, swY := m.ByteAt(rec.Offset+6), m.ByteAt(rec.Offset+7)
			e = entities.NewDoorTrapSwitch(s.ctx, swX, swY, rec.Orientation, rec.Mode, door)
		case entities.TypeLaunchPad:
			e = entities.NewLaunchPad(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeOneWayPlatform:
			e = entities.NewOneWayPlatform(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeBounceBlock:
			e = entities.NewBounceBlock(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeThwump:
			e = entities.NewThwump(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeBoostPad:
			e = entities.NewBoostPad(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		case entities.TypeShoveThwump:
			e = entities.NewShoveThwump(s.ctx, rec.X, rec.Y, rec.Orientation, rec.Mode)
		default:
			if s.log != nil {
				s.log.Sim().LogWarn(fmt.Sprintf("load: unknown entity type %d, skipped", rec.Type))
			}
			continue
		}
		s.Entities = append(s.Entities, e)
		s.Index.Add(e.Cell(), e)
	}

	if s.log != nil {
		s.log.Sim().LogInfo(fmt.Sprintf("load: map parsed, %d entities, ninja spawn (%d,%d)", len(s.Entities), m.NinjaSpawnX, m.NinjaSpawnY))
	}
	return nil
}

// Tick advances the simulation by one frame under the given raw input pair,
// mirroring the reference tick ordering: move, think, then (while the ninja
// is alive) integrate and resolve collisions four times before the ninja's
// own think/state-machine step.
func (s *Simulator) Tick(raw int) {
	hor, jump := input.Decode(raw)
	s.Ninja.HorInput = hor
	s.Ninja.JumpInput = jump

	s.Frame++
	s.ctx.Frame = s.Frame

	for _, e := range s.Entities {
		if e.Active() && e.IsMovable() {
			e.Move()
		}
	}
	for _, e := range s.Entities {
		if e.Active() && e.IsThinkable() {
			e.Think()
		}
	}

	if s.Ninja.State != entities.StateDead && s.Ninja.State != entities.StateReserved {
		s.Ninja.Integrate()
		s.Ninja.PreCollision()
		for i := 0; i < 4; i++ {
			s.Ninja.CollideVsObjects(s.Index)
			s.Ninja.CollideVsTiles(s.Grid)
		}
		s.Ninja.PostCollision(s.Grid, s.Index)
		s.Ninja.Think()
	}

	if s.Ninja.State == entities.StateCelebrating && !s.Won {
		s.Won = true
		s.ExitFrame = s.Frame
	}
	if s.Ninja.State == entities.StateDead {
		s.Dead = true
	}

	s.Trace = append(s.Trace, Frame{
		Num:    s.Frame,
		XPos:   round6(s.Ninja.XPos),
		YPos:   round6(s.Ninja.YPos),
		XSpeed: round6(s.Ninja.XSpeed),
		YSpeed: round6(s.Ninja.YSpeed),
		State:  s.Ninja.State,
	})
}

// Running reports whether the simulation should keep stepping: it stops once
// the ninja is dead (or in StateReserved); a celebrating ninja keeps running.
func (s *Simulator) Running() bool {
	return !s.Dead && s.Ninja.State != entities.StateReserved
}

func round6(v float64) float64 {
	const p = 1e6
	return float64(int64(v*p+sign(v)*0.5)) / p
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
