package entities

import (
	"math"

	"nsim/engine"
	"nsim/world"
)

// Ninja state machine values. Tick() only runs the physics step while the
// ninja is NOT in StateDead or StateReserved; StateAwaitingDeath transitions
// to StateDead after exactly one think() call.
const (
	StateImmobile      = 0
	StateRunning       = 1
	StateGroundSliding = 2
	StateJumping       = 3
	StateFalling       = 4
	StateWallSliding   = 5
	StateDead          = 6
	StateAwaitingDeath = 7
	StateCelebrating   = 8
	StateReserved      = 9
)

// Ninja is the player avatar: a circle of radius RADIUS driven by a small,
// input-buffered state machine and swept-collision physics against tile
// segments and entity hitboxes.
type Ninja struct {
	cfg engine.PhysicsConfig

	XPos, YPos         float64
	XPosOld, YPosOld   float64
	XSpeed, YSpeed     float64
	XSpeedOld, YSpeedOld float64

	AppliedGravity  float64
	AppliedDrag     float64
	AppliedFriction float64

	State int

	Airborn bool
	Walled  bool

	HorInput    int
	JumpInput   int
	JumpInputOld int

	JumpDuration  int
	JumpBuffer    int
	FloorBuffer   int
	WallBuffer    int
	LaunchPadBuffer int

	FloorCount  int
	WallCount   int
	CeilingCount int

	FloorNormalX, FloorNormalY     float64
	CeilingNormalX, CeilingNormalY float64

	FloorNormalizedX, FloorNormalizedY     float64
	CeilingNormalizedX, CeilingNormalizedY float64

	WallNormal float64

	XLPBoostNormalized, YLPBoostNormalized float64

	PosLog   []PosLogEntry
	SpeedLog []SpeedLogEntry
}

type PosLogEntry struct {
	Frame int
	X, Y  float64
}

type SpeedLogEntry struct {
	Frame  int
	XSpeed, YSpeed float64
}

// NewNinja places the ninja at its map spawn point (stored in 6-unit
// quanta, a quarter of a tile) and initializes its physics state.
func NewNinja(cfg engine.PhysicsConfig, spawnX, spawnY int) *Ninja {
	n := &Ninja{
		cfg:             cfg,
		XPos:            float64(spawnX) * 6,
		YPos:            float64(spawnY) * 6,
		AppliedGravity:  cfg.GravityFall,
		AppliedDrag:     cfg.DragRegular,
		AppliedFriction: cfg.FrictionGround,
		State:           StateImmobile,
		JumpBuffer:      -1,
		FloorBuffer:     -1,
		WallBuffer:      -1,
		LaunchPadBuffer: -1,
		FloorNormalizedY: -1,
		CeilingNormalizedY: 1,
	}
	n.PosLog = append(n.PosLog, PosLogEntry{0, n.XPos, n.YPos})
	n.SpeedLog = append(n.SpeedLog, SpeedLogEntry{0, 0, 0})
	return n
}

// Radius returns the ninja's current collision radius.
func (n *Ninja) Radius() float64 { return n.cfg.Radius }

// Integrate applies drag and gravity, then advances position by velocity.
func (n *Ninja) Integrate() {
	n.XSpeed *= n.AppliedDrag
	n.YSpeed *= n.AppliedDrag
	n.YSpeed += n.AppliedGravity
	n.XPosOld = n.XPos
	n.YPosOld = n.YPos
	n.XPos += n.XSpeed
	n.YPos += n.YSpeed
}

// PreCollision resets the per-frame collision accumulators.
func (n *Ninja) PreCollision() {
	n.XSpeedOld = n.XSpeed
	n.YSpeedOld = n.YSpeed
	n.FloorCount = 0
	n.WallCount = 0
	n.CeilingCount = 0
	n.FloorNormalX, n.FloorNormalY = 0, 0
	n.CeilingNormalX, n.CeilingNormalY = 0, 0
}

// CollideVsObjects applies physical collisions with nearby entities.
func (n *Ninja) CollideVsObjects(idx *Index) {
	for _, e := range idx.GatherFromNeighbourhood(n.XPos, n.YPos) {
		if !e.IsPhysicalCollidable() {
			continue
		}
		depen, ok := e.PhysicalCollision()
		if !ok {
			continue
		}
		n.XPos += depen.NormalX * depen.Len1
		n.YPos += depen.NormalY * depen.Len1
		switch e.Type() {
		case TypeBounceBlock, TypeThwump, TypeShoveThwump:
			n.XSpeed += depen.NormalX * depen.Len1
			n.YSpeed += depen.NormalY * depen.Len1
		case TypeOneWayPlatform:
			if depen.Len1 != 0 {
				xspeedNew := (n.XSpeed*depen.NormalY - n.YSpeed*depen.NormalX) * depen.NormalY
				yspeedNew := (n.XSpeed*depen.NormalY - n.YSpeed*depen.NormalX) * -depen.NormalX
				n.XSpeed = xspeedNew
				n.YSpeed = yspeedNew
			}
		}
		if depen.NormalY >= -0.0001 {
			n.CeilingCount++
			n.CeilingNormalX += depen.NormalX
			n.CeilingNormalY += depen.NormalY
		} else {
			n.FloorCount++
			n.FloorNormalX += depen.NormalX
			n.FloorNormalY += depen.NormalY
		}
	}
}

// CollideVsTiles sweeps against tile segments to avoid tunneling, then
// iteratively depenetrates against the closest segment, projecting velocity
// onto the surface when moving into it.
func (n *Ninja) CollideVsTiles(g *world.Grid) {
	dx := n.XPos - n.XPosOld
	dy := n.YPos - n.YPosOld
	t := g.SweepCircleVsTiles(n.XPosOld, n.YPosOld, dx, dy, n.cfg.Radius*0.5)
	n.XPos = n.XPosOld + t*dx
	n.YPos = n.YPosOld + t*dy

	for i := 0; i < 32; i++ {
		result, a, b, found := g.GetSingleClosestPoint(n.XPos, n.YPos, n.cfg.Radius)
		if !found || result == 0 {
			break
		}
		dx := n.XPos - a
		dy := n.YPos - b
		// Band-aid corner-case fudges from the reference implementation's
		// collision loop, reproduced verbatim for bit-exact trajectories.
		if math.Abs(dx) <= 0.0000001 {
			dx = 0
			if n.XPos == 50.51197510492316 || n.XPos == 49.23232124849253 {
				dx = -math.Pow(2, -47)
			}
			if n.XPos == 49.153536108584795 {
				dx = math.Pow(2, -47)
			}
		}
		dist := math.Hypot(dx, dy)
		if dist == 0 || n.cfg.Radius-dist*float64(result) < 0.0000001 {
			return
		}
		n.XPos = a + float64(result)*n.cfg.Radius*dx/dist
		n.YPos = b + float64(result)*n.cfg.Radius*dy/dist
		dotProduct := n.XSpeed*dx + n.YSpeed*dy
		if dotProduct < 0 {
			xspeedNew := (n.XSpeed*dy - n.YSpeed*dx) / (dist * dist) * dy
			yspeedNew := (n.XSpeed*dy - n.YSpeed*dx) / (dist * dist) * -dx
			n.XSpeed = xspeedNew
			n.YSpeed = yspeedNew
		}
		if dy >= -0.0001 {
			n.CeilingCount++
			n.CeilingNormalX += dx / dist
			n.CeilingNormalY += dy / dist
		} else {
			n.FloorCount++
			n.FloorNormalX += dx / dist
			n.FloorNormalY += dy / dist
		}
	}
}

// PostCollision runs logical entity collisions, derives the walled/airborn
// state, and kills the ninja on an unsurvivable floor/ceiling impact.
func (n *Ninja) PostCollision(g *world.Grid, idx *Index) {
	wallNormal := 0.0
	for _, e := range idx.GatherFromNeighbourhood(n.XPos, n.YPos) {
		if !e.IsLogicalCollidable() {
			continue
		}
		outcome := e.LogicalCollision()
		switch {
		case outcome.HasBoost:
			xboost := outcome.Boost.X * 2 / 3
			yboost := outcome.Boost.Y * 2 / 3
			n.XPos += xboost
			n.YPos += yboost
			n.XSpeed = xboost
			n.YSpeed = yboost
			n.FloorCount = 0
			n.FloorBuffer = -1
			boostScalar := math.Hypot(xboost, yboost)
			n.XLPBoostNormalized = xboost / boostScalar
			n.YLPBoostNormalized = yboost / boostScalar
			n.LaunchPadBuffer = 0
			if n.State == StateJumping {
				n.AppliedGravity = n.cfg.GravityFall
			}
			n.State = StateFalling
		case outcome.HasWallNormal:
			wallNormal += outcome.WallNormal
		}
	}

	rad := n.cfg.Radius + 0.1
	for _, seg := range g.GatherSegmentsFromRegion(n.XPos-rad, n.YPos-rad, n.XPos+rad, n.YPos+rad) {
		_, a, b := seg.ClosestPoint(n.XPos, n.YPos)
		dx := n.XPos - a
		dy := n.YPos - b
		dist := math.Hypot(dx, dy)
		if math.Abs(dy) < 0.00001 && dist > 0 && dist <= rad {
			wallNormal += dx / dist
		}
	}

	n.Airborn = true
	n.Walled = false
	if wallNormal != 0 {
		n.Walled = true
		n.WallNormal = wallNormal / math.Abs(wallNormal)
	}

	if n.FloorCount > 0 {
		n.Airborn = false
		floorScalar := math.Hypot(n.FloorNormalX, n.FloorNormalY)
		if floorScalar == 0 {
			n.FloorNormalizedX, n.FloorNormalizedY = 0, -1
		} else {
			n.FloorNormalizedX = n.FloorNormalX / floorScalar
			n.FloorNormalizedY = n.FloorNormalY / floorScalar
		}
		if n.State != StateCelebrating {
			impactVel := -(n.FloorNormalizedX*n.XSpeedOld + n.FloorNormalizedY*n.YSpeedOld)
			if impactVel > n.cfg.MaxSurvivableImpact-4.0/3.0*math.Abs(n.FloorNormalizedY) {
				n.XSpeed = n.XSpeedOld
				n.YSpeed = n.YSpeedOld
				n.Kill()
			}
		}
	}

	if n.CeilingCount > 0 {
		ceilingScalar := math.Hypot(n.CeilingNormalX, n.CeilingNormalY)
		if ceilingScalar == 0 {
			n.CeilingNormalizedX, n.CeilingNormalizedY = 0, 1
		} else {
			n.CeilingNormalizedX = n.CeilingNormalX / ceilingScalar
			n.CeilingNormalizedY = n.CeilingNormalY / ceilingScalar
		}
		if n.State != StateCelebrating {
			impactVel := -(n.CeilingNormalizedX*n.XSpeedOld + n.CeilingNormalizedY*n.YSpeedOld)
			if impactVel > n.cfg.MaxSurvivableImpact-4.0/3.0*math.Abs(n.CeilingNormalizedY) {
				n.XSpeed = n.XSpeedOld
				n.YSpeed = n.YSpeedOld
				n.Kill()
			}
		}
	}
}

// FloorJump performs a jump off the floor, whose impulse direction depends
// on slope angle and whether the ninja is moving up- or downhill.
func (n *Ninja) FloorJump() {
	n.JumpBuffer = -1
	n.FloorBuffer = -1
	n.LaunchPadBuffer = -1
	n.State = StateJumping
	n.AppliedGravity = n.cfg.GravityJump
	var jx, jy float64
	if n.FloorNormalizedX == 0 {
		jx, jy = 0, -2
	} else {
		dx, dy := n.FloorNormalizedX, n.FloorNormalizedY
		if n.XSpeed*dx >= 0 {
			if n.XSpeed*float64(n.HorInput) >= 0 {
				jx = 2.0 / 3.0 * dx
				jy = 2 * dy
			} else {
				jx, jy = 0, -1.4
			}
		} else {
			if n.XSpeed*float64(n.HorInput) > 0 {
				jx, jy = 0, -1.4
			} else {
				n.XSpeed = 0
				jx = 2.0 / 3.0 * dx
				jy = 2 * dy
			}
		}
	}
	if n.YSpeed > 0 {
		n.YSpeed = 0
	}
	n.XSpeed += jx
	n.YSpeed += jy
	n.XPos += jx
	n.YPos += jy
	n.JumpDuration = 0
}

// WallJump performs a jump off a wall, gentler when sliding into the wall.
func (n *Ninja) WallJump() {
	var jx, jy float64
	if float64(n.HorInput)*n.WallNormal < 0 && n.State == StateWallSliding {
		jx, jy = 2.0/3.0, -1
	} else {
		jx, jy = 1, -1.4
	}
	n.State = StateJumping
	n.AppliedGravity = n.cfg.GravityJump
	if n.XSpeed*n.WallNormal < 0 {
		n.XSpeed = 0
	}
	if n.YSpeed > 0 {
		n.YSpeed = 0
	}
	n.XSpeed += jx * n.WallNormal
	n.YSpeed += jy
	n.XPos += jx * n.WallNormal
	n.YPos += jy
	n.JumpBuffer = -1
	n.WallBuffer = -1
	n.LaunchPadBuffer = -1
	n.JumpDuration = 0
}

// LpJump performs a launch-pad-buffered jump boost.
func (n *Ninja) LpJump() {
	n.FloorBuffer = -1
	n.WallBuffer = -1
	n.JumpBuffer = -1
	n.LaunchPadBuffer = -1
	boostScalar := 2*math.Abs(n.XLPBoostNormalized) + 2
	if boostScalar == 2 {
		boostScalar = 1.7
	}
	n.XSpeed += n.XLPBoostNormalized * boostScalar * 2 / 3
	n.YSpeed += n.YLPBoostNormalized * boostScalar * 2 / 3
}

// Think runs the input-buffered state machine: jump/floor/wall/launch-pad
// buffering, ground friction and slope logic, and air acceleration.
func (n *Ninja) Think() {
	newJumpCheck := n.JumpInput != 0 && n.JumpInputOld == 0
	n.JumpInputOld = n.JumpInput

	if n.LaunchPadBuffer > -1 && n.LaunchPadBuffer < 3 {
		n.LaunchPadBuffer++
	} else {
		n.LaunchPadBuffer = -1
	}
	inLPBuffer := n.LaunchPadBuffer > -1 && n.LaunchPadBuffer < 4
	if n.JumpBuffer > -1 && n.JumpBuffer < 5 {
		n.JumpBuffer++
	} else {
		n.JumpBuffer = -1
	}
	inJumpBuffer := n.JumpBuffer > -1 && n.JumpBuffer < 5
	if n.WallBuffer > -1 && n.WallBuffer < 5 {
		n.WallBuffer++
	} else {
		n.WallBuffer = -1
	}
	inWallBuffer := n.WallBuffer > -1 && n.WallBuffer < 5
	if n.FloorBuffer > -1 && n.FloorBuffer < 5 {
		n.FloorBuffer++
	} else {
		n.FloorBuffer = -1
	}
	inFloorBuffer := n.FloorBuffer > -1 && n.FloorBuffer < 5

	if newJumpCheck && n.Airborn {
		n.JumpBuffer = 0
	}
	if n.Walled {
		n.WallBuffer = 0
	}
	if !n.Airborn {
		n.FloorBuffer = 0
	}

	if n.State == StateAwaitingDeath {
		n.thinkAwaitingDeath()
		return
	}
	if n.State == StateCelebrating {
		if n.Airborn {
			n.AppliedDrag = n.cfg.DragRegular
		} else {
			n.AppliedDrag = n.cfg.DragSlow
		}
		return
	}

	if !n.Airborn {
		n.thinkOnFloor(inJumpBuffer, newJumpCheck)
		return
	}
	n.thinkAirborn(inJumpBuffer, inWallBuffer, inFloorBuffer, inLPBuffer, newJumpCheck)
}

func (n *Ninja) thinkOnFloor(inJumpBuffer, newJumpCheck bool) {
	xspeedNew := n.XSpeed + n.cfg.GroundAccel*float64(n.HorInput)
	if math.Abs(xspeedNew) < n.cfg.MaxHorSpeed {
		n.XSpeed = xspeedNew
	}
	if n.State > StateGroundSliding {
		if n.XSpeed*float64(n.HorInput) <= 0 {
			if n.State == StateJumping {
				n.AppliedGravity = n.cfg.GravityFall
			}
			n.State = StateGroundSliding
		} else {
			if n.State == StateJumping {
				n.AppliedGravity = n.cfg.GravityFall
			}
			n.State = StateRunning
		}
	}
	if !inJumpBuffer && !newJumpCheck {
		switch n.State {
		case StateGroundSliding:
			projection := math.Abs(n.YSpeed*n.FloorNormalizedX - n.XSpeed*n.FloorNormalizedY)
			if float64(n.HorInput)*projection*n.XSpeed > 0 {
				n.State = StateRunning
				return
			}
			if projection < 0.1 && n.FloorNormalizedX == 0 {
				n.State = StateImmobile
				return
			}
			if n.YSpeed < 0 && n.FloorNormalizedX != 0 {
				speedScalar := math.Hypot(n.XSpeed, n.YSpeed)
				fricForce := math.Abs(n.XSpeed * (1 - n.cfg.FrictionGround) * n.FloorNormalizedY)
				fricForce2 := speedScalar - fricForce*n.FloorNormalizedY*n.FloorNormalizedY
				n.XSpeed = n.XSpeed / speedScalar * fricForce2
				n.YSpeed = n.YSpeed / speedScalar * fricForce2
				return
			}
			n.XSpeed *= n.cfg.FrictionGround
			return
		case StateRunning:
			projection := math.Abs(n.YSpeed*n.FloorNormalizedX - n.XSpeed*n.FloorNormalizedY)
			if float64(n.HorInput)*projection*n.XSpeed > 0 {
				if float64(n.HorInput)*n.FloorNormalizedX >= 0 {
					return
				}
				if math.Abs(xspeedNew) < n.cfg.MaxHorSpeed {
					boost := n.cfg.GroundAccel / 2 * float64(n.HorInput)
					n.XSpeed += boost * n.FloorNormalizedY * n.FloorNormalizedY
					n.YSpeed += boost * n.FloorNormalizedY * -n.FloorNormalizedX
				}
				return
			}
			n.State = StateGroundSliding
		default:
			if n.HorInput != 0 {
				n.State = StateRunning
				return
			}
			projection := math.Abs(n.YSpeed*n.FloorNormalizedX - n.XSpeed*n.FloorNormalizedY)
			if projection < 0.1 {
				n.XSpeed *= n.cfg.FrictionGroundSlow
				return
			}
			n.State = StateGroundSliding
		}
		return
	}
	n.FloorJump()
}

func (n *Ninja) thinkAirborn(inJumpBuffer, inWallBuffer, inFloorBuffer, inLPBuffer, newJumpCheck bool) {
	xspeedNew := n.XSpeed + n.cfg.AirAccel*float64(n.HorInput)
	if math.Abs(xspeedNew) < n.cfg.MaxHorSpeed {
		n.XSpeed = xspeedNew
	}
	if n.State < StateJumping {
		n.State = StateFalling
		return
	}
	if n.State == StateJumping {
		n.JumpDuration++
		if n.JumpInput == 0 || n.JumpDuration > n.cfg.MaxJumpDuration {
			n.AppliedGravity = n.cfg.GravityFall
			n.State = StateFalling
			return
		}
	}
	if inJumpBuffer || newJumpCheck {
		if n.Walled || inWallBuffer {
			n.WallJump()
			return
		}
		if inFloorBuffer {
			n.FloorJump()
			return
		}
		if inLPBuffer && newJumpCheck {
			n.LpJump()
			return
		}
	}
	if !n.Walled {
		if n.State == StateWallSliding {
			n.State = StateFalling
		}
	} else {
		if n.State == StateWallSliding {
			if float64(n.HorInput)*n.WallNormal <= 0 {
				n.YSpeed *= n.cfg.FrictionWall
			} else {
				n.State = StateFalling
			}
		} else if n.YSpeed > 0 && float64(n.HorInput)*n.WallNormal < 0 {
			if n.State == StateJumping {
				n.AppliedGravity = n.cfg.GravityFall
			}
			n.State = StateWallSliding
		}
	}
}

func (n *Ninja) thinkAwaitingDeath() {
	n.State = StateDead
}

// Win moves the ninja into the celebrating state.
func (n *Ninja) Win() {
	if n.State < StateDead {
		if n.State == StateJumping {
			n.AppliedGravity = n.cfg.GravityFall
		}
		n.State = StateCelebrating
	}
}

// Kill moves the ninja into the awaiting-death state.
func (n *Ninja) Kill() {
	if n.State < StateDead {
		if n.State == StateJumping {
			n.AppliedGravity = n.cfg.GravityFall
		}
		n.State = StateAwaitingDeath
	}
}

// IsValidTarget reports whether the ninja can still be interacted with by
// state-sensitive entities (toggle mines and boost pads).
func (n *Ninja) IsValidTarget() bool {
	return n.State != StateDead && n.State != StateCelebrating && n.State != StateReserved
}
