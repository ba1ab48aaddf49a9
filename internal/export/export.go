// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package export encodes decoded map settings for consumption by other tools.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, CBOR}

const indent = "    "

// cborEncMode sorts map keys so that output is stable across runs.
var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("failed to initialize CBOR encoder mode: " + err.Error())
	}
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %q, must be one of %v", s, Formats)
}

// Extension returns the file name extension of f, without the leading dot.
func (f Format) Extension() string { return string(f) }

// Marshal encodes v in format f. Struct fields are named by their json tags in every format, and map keys are
// sorted.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case JSON:
		b, err := json.Marshal(v, json.Deterministic(true), jsontext.WithIndent(indent))
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case YAML:
		return marshalYAML(v)
	case CBOR:
		return cborEncMode.Marshal(v)
	}
	return nil, fmt.Errorf("invalid format: %q", f)
}

// Write encodes v in format f to w.
func Write(w io.Writer, v any, f Format) error {
	b, err := Marshal(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// marshalYAML goes through JSON so that field names and the encoding of absent values are the same as for JSON.
// The JSON document is parsed as a YAML node tree, which keeps field order, and re-emitted in block style.
func marshalYAML(v any) ([]byte, error) {
	b, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
