// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	config := New()
	config.Set("format", "yaml")
	config.Set("color", "never")
	config.Set("output-dir", "out")
	assert.Equal(t, []string{"color", "format", "output-dir"}, config.Keys())

	v, ok := config.Get("output-dir")
	assert.True(t, ok)
	assert.Equal(t, "out", v)

	config.Del("output-dir")
	_, ok = config.Get("output-dir")
	assert.False(t, ok)

	var buf bytes.Buffer
	require.Nil(t, config.Write(&buf))
	assert.Equal(t, "color: never\nformat: yaml\n", buf.String())

	unmarshalled, err := Read(&buf)
	require.Nil(t, err)
	assert.Equal(t, config, unmarshalled)

	filename := filepath.Join(t.TempDir(), ".mapex", "config.yaml")
	require.Nil(t, config.WriteFile(filename))
	data, err := os.ReadFile(filename)
	require.Nil(t, err)
	assert.Equal(t, "color: never\nformat: yaml\n", string(data))

	fromFile, err := ReadFile(filename)
	require.Nil(t, err)
	assert.Equal(t, config, fromFile)
}

func TestEmptyValueIsUnset(t *testing.T) {
	config, err := Read(strings.NewReader("format: \"\"\nquiet: \"true\"\n"))
	require.Nil(t, err)
	_, ok := config.Get("format")
	assert.False(t, ok)
	v, ok := config.Get("quiet")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	config, err := ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Nil(t, err)
	assert.Empty(t, config.Keys())

	empty := filepath.Join(dir, "empty.yaml")
	require.Nil(t, os.WriteFile(empty, nil, 0600))
	config, err = ReadFile(empty)
	require.Nil(t, err)
	assert.Empty(t, config.Keys())

	invalid := filepath.Join(dir, "invalid.yaml")
	require.Nil(t, os.WriteFile(invalid, []byte("- a\n- b\n"), 0600))
	_, err = ReadFile(invalid)
	assert.ErrorContains(t, err, "invalid config")
}
