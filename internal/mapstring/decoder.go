// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

import (
	"fmt"
)

// decoder pairs a read function with the wire type name shown in schemas.
type decoder[T any] struct {
	name string
	read func(*Cursor) (T, error)
}

var (
	u8       = decoder[uint8]{"u8", (*Cursor).ReadUint8}
	i16      = decoder[int16]{"i16", (*Cursor).ReadInt16}
	u16      = decoder[uint16]{"u16", (*Cursor).ReadUint16}
	i32      = decoder[int32]{"i32", (*Cursor).ReadInt32}
	u32      = decoder[uint32]{"u32", (*Cursor).ReadUint32}
	f32      = decoder[float32]{"f32", (*Cursor).ReadFloat32}
	f64      = decoder[float64]{"f64", (*Cursor).ReadFloat64}
	boolean  = decoder[bool]{"bool", (*Cursor).ReadBool}
	varUint  = decoder[uint32]{"varuint", (*Cursor).ReadVarUint}
	str      = decoder[string]{"string", (*Cursor).ReadString}
	position = decoder[Position]{"point", (*Cursor).ReadPosition}
)

// optionalOf reads a presence byte, then the value if the byte is nonzero.
func optionalOf[T any](d decoder[T]) decoder[Optional[T]] {
	return decoder[Optional[T]]{
		name: "optional<" + d.name + ">",
		read: func(c *Cursor) (Optional[T], error) {
			present, err := c.ReadBool()
			if err != nil || !present {
				return None[T](), err
			}
			v, err := d.read(c)
			if err != nil {
				return None[T](), err
			}
			return Some(v), nil
		},
	}
}

// readCount reads a VarUint element count. Every element occupies at least minSize bytes, so a count that cannot fit
// in the remaining input is rejected before anything is allocated.
func readCount(c *Cursor, minSize int) (int, error) {
	start := c.Pos()
	n, err := c.ReadVarUint()
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minSize) > int64(c.Remaining()) {
		return 0, newError(ErrTruncatedInput, start, "%d elements cannot fit in %d bytes", n, c.Remaining())
	}
	return int(n), nil
}

func arrayOf[T any](d decoder[T]) decoder[[]T] {
	return decoder[[]T]{
		name: "array<" + d.name + ">",
		read: func(c *Cursor) ([]T, error) {
			n, err := readCount(c, 1)
			if err != nil {
				return nil, err
			}
			items := make([]T, 0, n)
			for i := 0; i < n; i++ {
				item, err := d.read(c)
				if err != nil {
					return nil, withPath(err, fmt.Sprintf("[%d]", i))
				}
				items = append(items, item)
			}
			return items, nil
		},
	}
}

func mapOf[K comparable, V any](kd decoder[K], vd decoder[V]) decoder[map[K]V] {
	return decoder[map[K]V]{
		name: "map<" + kd.name + "," + vd.name + ">",
		read: func(c *Cursor) (map[K]V, error) {
			n, err := readCount(c, 2)
			if err != nil {
				return nil, err
			}
			m := make(map[K]V, n)
			for i := 0; i < n; i++ {
				keyPos := c.Pos()
				k, err := kd.read(c)
				if err != nil {
					return nil, withPath(err, fmt.Sprintf("[%d]", i))
				}
				if _, ok := m[k]; ok {
					return nil, newError(ErrDuplicateKey, keyPos, "%v", k)
				}
				v, err := vd.read(c)
				if err != nil {
					return nil, withPath(err, fmt.Sprintf("[%v]", k))
				}
				m[k] = v
			}
			return m, nil
		},
	}
}

// enumOf reads a u8 index into values.
func enumOf[T any](name string, values ...T) decoder[T] {
	return decoder[T]{
		name: "enum<" + name + ">",
		read: func(c *Cursor) (T, error) {
			var zero T
			start := c.Pos()
			i, err := c.ReadUint8()
			if err != nil {
				return zero, err
			}
			if int(i) >= len(values) {
				return zero, newError(ErrUnknownEnumIndex, start, "%s index %d, expected 0-%d", name, i, len(values)-1)
			}
			return values[i], nil
		},
	}
}
