// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package mapstring

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"math"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

// payload builds wire data for tests.
type payload struct {
	bytes.Buffer
}

func (p *payload) u8(v uint8) *payload { p.WriteByte(v); return p }

func (p *payload) boolean(v bool) *payload {
	if v {
		return p.u8(1)
	}
	return p.u8(0)
}

func (p *payload) u16(v uint16) *payload { p.Write(binary.LittleEndian.AppendUint16(nil, v)); return p }

func (p *payload) i16(v int16) *payload { return p.u16(uint16(v)) }

func (p *payload) u32(v uint32) *payload { p.Write(binary.LittleEndian.AppendUint32(nil, v)); return p }

func (p *payload) i32(v int32) *payload { return p.u32(uint32(v)) }

func (p *payload) f32(v float32) *payload { return p.u32(math.Float32bits(v)) }

func (p *payload) f64(v float64) *payload {
	p.Write(binary.LittleEndian.AppendUint64(nil, math.Float64bits(v)))
	return p
}

func (p *payload) varUint(v uint32) *payload {
	if v < 0xff {
		return p.u8(uint8(v))
	}
	return p.u8(0xff).u32(v)
}

func (p *payload) str(s string) *payload {
	p.varUint(uint32(len(s)))
	p.WriteString(s)
	return p
}

// absolute writes a point as two absolute coordinates.
func (p *payload) absolute(x, y float64) *payload {
	return p.i16(0x7fff).i32(int32(x * 256)).i32(int32(y * 256))
}

// relative writes a point as a delta from the previous point.
func (p *payload) relative(dx, dy float64) *payload {
	return p.i16(int16(dx * 256)).i16(int16(dy * 256))
}

func (p *payload) absent(n int) *payload {
	for i := 0; i < n; i++ {
		p.u8(0)
	}
	return p
}

func (p *payload) fsr(frequency, size, richness float32) *payload {
	return p.f32(frequency).f32(size).f32(richness)
}

// mapGenSettings writes a minimal map generation record with the given seed and a zero size.
func (p *payload) mapGenSettings(seed uint32) *payload {
	p.f32(1).f32(1) // terrain_segmentation, water
	p.varUint(0)    // autoplace_controls
	p.varUint(0)    // autoplace_settings
	p.boolean(true)
	p.u32(seed).u32(0).u32(0)
	p.absolute(0, 0).relative(0, 0).i16(0).i16(0) // area_to_generate_at_start
	p.f32(1)                                      // starting_area
	p.boolean(false)                              // peaceful_mode
	p.varUint(1).relative(0, 0)                   // starting_points
	p.varUint(0)                                  // property_expression_names
	p.str("cliff").f32(10).f32(40).f32(1)
	return p
}

// mapSettings writes a map settings record where every optional value is absent.
func (p *payload) mapSettings() *payload {
	p.absent(12)    // pollution
	p.absent(4 * 2) // steering
	p.absent(4)     // enemy_evolution
	p.absent(13)    // enemy_expansion
	p.absent(13)    // unit_group
	p.absent(33)    // path_finder
	p.u32(3)        // max_failed_behavior_count
	p.u8(0).u8(0).f64(1).u8(1)
	return p
}

func minimalPayload(seed uint32) []byte {
	var p payload
	p.u16(1).u16(1).u16(0).u16(0) // version
	p.u8(0)
	p.mapGenSettings(seed)
	p.mapSettings()
	p.u32(0xdeadbeef)
	return p.Bytes()
}

// envelope compresses and encodes data as a map exchange string.
func envelope(t *testing.T, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.Nil(t, err)
	require.Nil(t, w.Close())
	return ">>>" + base64.StdEncoding.EncodeToString(buf.Bytes()) + "<<<"
}
