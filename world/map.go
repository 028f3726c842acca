package world

import "nsim/engine"

// entityHeaderOffset is the byte offset of the first entity record.
const entityHeaderOffset = 1230

// EntityRecord is one raw 5-byte entity record from the map's entity table.
type EntityRecord struct {
	Type        int
	X, Y        int
	Orientation int
	Mode        int
	// Offset is this record's byte offset in the source map data, so a
	// caller needing extra trailing fields (switch coordinates, exit-door
	// child coordinates) can index relative to it.
	Offset int
}

// Map is the parsed representation of a binary level file.
type Map struct {
	Raw           []byte
	TileData      []byte
	GoldCount     int
	ExitDoorCount int
	NinjaSpawnX   int
	NinjaSpawnY   int
	Entities      []EntityRecord
}

// ParseMap validates and decodes the header, tile grid, and entity table of
// a raw map file.
func ParseMap(data []byte) (*Map, error) {
	if len(data) < entityHeaderOffset+5 {
		return nil, engine.ErrMapTooShort
	}
	m := &Map{
		Raw:           data,
		TileData:      data[184:1150],
		GoldCount:     int(data[1154]),
		ExitDoorCount: int(data[1156]),
		NinjaSpawnX:   int(data[1231]),
		NinjaSpawnY:   int(data[1232]),
	}
	for index := entityHeaderOffset; index+5 <= len(data); index += 5 {
		m.Entities = append(m.Entities, EntityRecord{
			Type:        int(data[index]),
			X:           int(data[index+1]),
			Y:           int(data[index+2]),
			Orientation: int(data[index+3]),
			Mode:        int(data[index+4]),
			Offset:      index,
		})
	}
	return m, nil
}

// ByteAt returns the raw byte at the given offset, or 0 if out of range.
func (m *Map) ByteAt(offset int) int {
	if offset < 0 || offset >= len(m.Raw) {
		return 0
	}
	return int(m.Raw[offset])
}
