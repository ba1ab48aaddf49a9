// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

import (
	"encoding/binary"
	"math"

	"github.com/mapexchange/mapex/version"
)

const (
	// varUintEscape marks a variable-width integer whose value follows as a full uint32.
	varUintEscape = 0xff
	// absolutePosition marks a point stored as two absolute int32 coordinates instead of a delta.
	absolutePosition = 0x7fff
	// fixedPointScale converts stored coordinates to map units.
	fixedPointScale = 256
)

// Position is a point on the map, in tiles.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cursor is a forward-only reader over an inflated map exchange payload. A Cursor is owned by a single decode call
// and must not be shared.
type Cursor struct {
	buf  []byte
	pos  int
	last Position
	// legacy reproduces older decoders, which stored the new y coordinate in last.x.
	legacy bool
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// LastPosition returns the point that the next relative point is decoded against.
func (c *Cursor) LastPosition() Position { return c.last }

func (c *Cursor) take(n int) ([]byte, error) {
	if n > c.Remaining() {
		return nil, newError(ErrOutOfBounds, c.pos, "need %d bytes, have %d", n, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint8 reads one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads one byte, where any non-zero value is true.
func (c *Cursor) ReadBool() (bool, error) {
	b, err := c.ReadUint8()
	return b != 0, err
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16 reads a little-endian two's complement int16.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian two's complement int32.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads a little-endian IEEE 754 single precision float.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a little-endian IEEE 754 double precision float.
func (c *Cursor) ReadFloat64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadVersion reads a game version stored as four uint16 components.
func (c *Cursor) ReadVersion() (version.Version, error) {
	var parts [4]int
	for i := range parts {
		v, err := c.ReadUint16()
		if err != nil {
			return version.Version{}, err
		}
		parts[i] = int(v)
	}
	return version.Version{Major: parts[0], Minor: parts[1], Patch: parts[2], Build: parts[3]}, nil
}

// ReadVarUint reads a value stored in one byte when it is below 255, and as 0xff followed by a uint32 otherwise.
func (c *Cursor) ReadVarUint() (uint32, error) {
	b, err := c.ReadUint8()
	if err != nil {
		return 0, err
	}
	if b != varUintEscape {
		return uint32(b), nil
	}
	return c.ReadUint32()
}

// ReadString reads a VarUint length followed by that many bytes of UTF-8.
func (c *Cursor) ReadString() (string, error) {
	start := c.pos
	n, err := c.ReadVarUint()
	if err != nil {
		return "", err
	}
	if int64(n) > int64(c.Remaining()) {
		return "", newError(ErrTruncatedInput, start, "string of %d bytes, have %d", n, c.Remaining())
	}
	b, _ := c.take(int(n))
	return string(b), nil
}

// ReadPosition reads a point stored either as an int16 delta from the previous point, or as two absolute int32
// coordinates when the x delta holds the 0x7fff marker. Values are in 1/256 tile.
func (c *Cursor) ReadPosition() (Position, error) {
	var p Position
	dx, err := c.ReadInt16()
	if err != nil {
		return p, err
	}
	if dx == absolutePosition {
		x, err := c.ReadInt32()
		if err != nil {
			return p, err
		}
		y, err := c.ReadInt32()
		if err != nil {
			return p, err
		}
		p = Position{X: float64(x) / fixedPointScale, Y: float64(y) / fixedPointScale}
	} else {
		dy, err := c.ReadInt16()
		if err != nil {
			return p, err
		}
		p = Position{
			X: c.last.X + float64(dx)/fixedPointScale,
			Y: c.last.Y + float64(dy)/fixedPointScale,
		}
	}
	if c.legacy {
		c.last.X = p.Y
	} else {
		c.last = p
	}
	return p, nil
}
