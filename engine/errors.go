package engine

import "errors"

// Sentinel errors for map loading and simulation driving. Only
// ErrMapTooShort is returned anywhere (by world.ParseMap); the others are
// defined but not returned by any function.
var (
	ErrMapTooShort        = errors.New("engine: map data too short")
	ErrBadTileIndex       = errors.New("engine: tile index out of range")
	ErrUnknownEntityType  = errors.New("engine: unknown entity type")
	ErrSimulationNotLoaded = errors.New("engine: simulation not loaded")
)
