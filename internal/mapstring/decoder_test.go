// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package mapstring

import (
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	var p payload
	p.u8(0)          // absent
	p.u8(1).f64(0)   // present zero
	p.u8(7).f64(2.5) // any nonzero flag is present
	p.u8(1).varUint(2).u32(4).u32(8)
	c := NewCursor(p.Bytes())
	d := optionalOf(f64)

	v, err := d.read(c)
	require.Nil(t, err)
	assert.False(t, v.IsPresent())
	assert.Equal(t, 1, c.Pos())

	v, err = d.read(c)
	require.Nil(t, err)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, got)
	assert.NotEqual(t, None[float64](), v)

	v, err = d.read(c)
	require.Nil(t, err)
	assert.Equal(t, Some(2.5), v)

	levels, err := optionalOf(arrayOf(u32)).read(c)
	require.Nil(t, err)
	assert.Equal(t, Some([]uint32{4, 8}), levels)
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, "optional<array<u32>>", optionalOf(arrayOf(u32)).name)
}

func TestOptionalEncoding(t *testing.T) {
	type sample struct {
		A Optional[float64] `json:"a"`
		B Optional[float64] `json:"b"`
		C Optional[bool]    `json:"c"`
	}
	b, err := json.Marshal(sample{A: None[float64](), B: Some(0.0), C: Some(false)})
	require.Nil(t, err)
	assert.Equal(t, `{"a":null,"b":0,"c":false}`, string(b))
	assert.Equal(t, "<absent>", None[int]().String())
	assert.Equal(t, "3", Some(3).String())
	assert.Equal(t, 3, None[int]().Or(3))
	assert.Equal(t, 4, Some(4).Or(3))
}

func TestOptionalCBOR(t *testing.T) {
	type sample struct {
		A Optional[float64] `json:"a"`
		B float64           `json:"b"`
	}
	b, err := None[float64]().MarshalCBOR()
	require.Nil(t, err)
	assert.Equal(t, []byte{0xf6}, b)

	b, err = Some(1.5).MarshalCBOR()
	require.Nil(t, err)
	assert.Equal(t, []byte{0xf9, 0x3e, 0x00}, b)

	em, err := cbor.CanonicalEncOptions().EncMode()
	require.Nil(t, err)
	b, err = em.Marshal(sample{A: Some(1.5), B: 1.5})
	require.Nil(t, err)
	// {"a": 1.5, "b": 1.5}, both as half precision floats
	assert.Equal(t, []byte{0xa2, 0x61, 'a', 0xf9, 0x3e, 0x00, 0x61, 'b', 0xf9, 0x3e, 0x00}, b)
}

func TestArray(t *testing.T) {
	var p payload
	p.varUint(3).absolute(1, 1).relative(1, 0).relative(0, 1)
	points, err := arrayOf(position).read(NewCursor(p.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, points)

	p.Reset()
	p.varUint(0)
	points, err = arrayOf(position).read(NewCursor(p.Bytes()))
	require.Nil(t, err)
	assert.Empty(t, points)

	p.Reset()
	p.varUint(3).f64(1).f64(2)
	_, err = arrayOf(f64).read(NewCursor(p.Bytes()))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "[2]", de.Path)
	assert.Equal(t, 17, de.Offset)

	// a count that cannot fit in the remaining bytes fails before allocating
	p.Reset()
	p.varUint(0xffffffff).u8(1)
	_, err = arrayOf(u8).read(NewCursor(p.Bytes()))
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestMap(t *testing.T) {
	var p payload
	p.varUint(2).str("coal").fsr(1, 2, 3).str("stone").fsr(0.5, 1, 1)
	m, err := mapOf(str, frequencySizeRichnessRecord.decoder()).read(NewCursor(p.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, map[string]FrequencySizeRichness{
		"coal":  {Frequency: 1, Size: 2, Richness: 3},
		"stone": {Frequency: 0.5, Size: 1, Richness: 1},
	}, m)

	p.Reset()
	p.varUint(2).str("coal").str("a").str("coal").str("b")
	_, err = mapOf(str, str).read(NewCursor(p.Bytes()))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 8, de.Offset)
	assert.Contains(t, err.Error(), "coal")

	p.Reset()
	p.varUint(1).str("coal").f32(1)
	_, err = mapOf(str, frequencySizeRichnessRecord.decoder()).read(NewCursor(p.Bytes()))
	assert.ErrorIs(t, err, ErrTruncatedInput)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "[coal].size", de.Path)
}

func TestEnum(t *testing.T) {
	d := difficultySettingsRecord.fields[3]
	assert.Equal(t, "research_queue_setting", d.name)
	tests := []struct {
		in   uint8
		want ResearchQueueSetting
	}{
		{0, ResearchQueueAlways},
		{1, ResearchQueueAfterVictory},
		{2, ResearchQueueNever},
	}
	for _, tt := range tests {
		var s DifficultySettings
		require.Nil(t, d.decode(NewCursor([]byte{tt.in}), &s))
		assert.Equal(t, tt.want, s.ResearchQueueSetting)
	}
	for _, in := range []uint8{3, 4, 255} {
		var s DifficultySettings
		err := d.decode(NewCursor([]byte{in}), &s)
		assert.ErrorIs(t, err, ErrUnknownEnumIndex)
	}
}
