// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-json-experiment/json"
)

var cborNull = []byte{0xf6}

// cborEncMode is the canonical mode that export encodes whole documents with.
var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("failed to initialize CBOR encoder mode: " + err.Error())
	}
}

// Optional holds a value that may be absent from the payload. An absent value is distinct from a present zero value.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// None returns an absent optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// IsPresent returns true if the value is present.
func (o Optional[T]) IsPresent() bool { return o.present }

// Or returns the value if present, and fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.present {
		return "<absent>"
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o Optional[T]) MarshalCBOR() ([]byte, error) {
	if !o.present {
		return cborNull, nil
	}
	return cborEncMode.Marshal(o.value)
}
