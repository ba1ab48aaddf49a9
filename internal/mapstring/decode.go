// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package mapstring decodes map exchange strings: base64 encoded, zlib compressed records of map generation and map
// runtime settings, wrapped in >>> and <<<.
//
// The payload carries no schema. Each record is decoded by walking a field-order table (see Schemas) that must match
// the game's encoder exactly; the only integrity check is that decoding consumes the payload exactly.
package mapstring

import (
	"bytes"
	"encoding/base64"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zlib"
)

// DefaultMaxInflatedSize bounds the size of an inflated payload. Real payloads are a few kilobytes.
const DefaultMaxInflatedSize = 64 << 20

var envelopePattern = regexp.MustCompile(`^>>>[0-9A-Za-z/+]+={0,3}<<<$`)

// Decoder decodes map exchange strings. The zero value is ready to use and safe for concurrent use.
type Decoder struct {
	// MaxInflatedSize is the largest accepted inflated payload in bytes. Zero means DefaultMaxInflatedSize.
	MaxInflatedSize int64
	// LegacyPositions reproduces a quirk of older decoders where relative points are decoded against a previous
	// point whose x coordinate holds the previous y coordinate and whose y coordinate is never updated.
	LegacyPositions bool
}

// Decode decodes map exchange string s using the default decoder.
func Decode(s string) (*Exchange, error) { return Decoder{}.Decode(s) }

// Decode validates the envelope of s, inflates its body and decodes the payload.
func (d Decoder) Decode(s string) (*Exchange, error) {
	payload, err := d.Inflate(s)
	if err != nil {
		return nil, err
	}
	return d.DecodePayload(payload)
}

// Inflate validates the envelope of s and returns the inflated payload.
func (d Decoder) Inflate(s string) ([]byte, error) {
	body, err := envelopeBody(s)
	if err != nil {
		return nil, err
	}
	compressed, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(body, "="))
	if err != nil {
		return nil, &DecodeError{Err: ErrDecompression, Offset: -1, Detail: "invalid base64", Cause: err}
	}
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, &DecodeError{Err: ErrDecompression, Offset: -1, Detail: "invalid zlib header", Cause: err}
	}
	defer r.Close()
	limit := d.MaxInflatedSize
	if limit <= 0 {
		limit = DefaultMaxInflatedSize
	}
	payload, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, &DecodeError{Err: ErrDecompression, Offset: -1, Detail: "invalid zlib stream", Cause: err}
	}
	if int64(len(payload)) > limit {
		return nil, newError(ErrDecompression, -1, "inflated payload exceeds %d bytes", limit)
	}
	return payload, nil
}

// DecodePayload decodes an inflated payload. The whole payload must be consumed.
func (d Decoder) DecodePayload(payload []byte) (*Exchange, error) {
	c := NewCursor(payload)
	c.legacy = d.LegacyPositions
	exchange, err := exchangeRecord.read(c)
	if err != nil {
		return nil, err
	}
	if c.Remaining() != 0 {
		return nil, newError(ErrTrailingData, c.Pos(), "%d unread bytes", c.Remaining())
	}
	return &exchange, nil
}

// envelopeBody strips all whitespace from s and returns the part between >>> and <<<.
func envelopeBody(s string) (string, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if !envelopePattern.MatchString(s) {
		return "", &DecodeError{Err: ErrNotAMapString, Offset: -1}
	}
	return s[3 : len(s)-3], nil
}
