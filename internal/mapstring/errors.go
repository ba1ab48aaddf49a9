// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAMapString is returned when the input lacks the >>>...<<< envelope.
	ErrNotAMapString = errors.New("not a map exchange string")
	// ErrDecompression is returned when the body is not valid base64 or zlib data.
	ErrDecompression = errors.New("decompression failed")
	// ErrTruncatedInput is returned when the buffer ends in the middle of a field.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrOutOfBounds is returned when a fixed-width read passes the end of the buffer. It matches ErrTruncatedInput.
	ErrOutOfBounds = fmt.Errorf("read out of bounds: %w", ErrTruncatedInput)
	// ErrUnknownEnumIndex is returned when an enumerated byte has no known value.
	ErrUnknownEnumIndex = errors.New("unknown enum index")
	// ErrDuplicateKey is returned when a map repeats a key.
	ErrDuplicateKey = errors.New("duplicate map key")
	// ErrTrailingData is returned when decoding stops before the end of the buffer.
	ErrTrailingData = errors.New("data after end")
)

// DecodeError describes where and why decoding stopped.
type DecodeError struct {
	// Err is one of the sentinel errors of this package.
	Err error
	// Offset is the byte offset into the inflated payload, or -1 if the failure happened before parsing.
	Offset int
	// Path is the dotted path of the field being decoded, e.g. map_settings.path_finder.overload_levels[2].
	Path string
	// Detail is an optional human readable elaboration.
	Detail string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Err.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&sb, " (at offset %d)", e.Offset)
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newError(err error, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{Err: err, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// withPath prefixes the path of a DecodeError with name. Other errors are returned unchanged.
func withPath(err error, name string) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	switch {
	case de.Path == "":
		de.Path = name
	case strings.HasPrefix(de.Path, "["):
		de.Path = name + de.Path
	default:
		de.Path = name + "." + de.Path
	}
	return de
}
