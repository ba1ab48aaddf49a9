// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package util

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	called := false
	err := Spinner(&buf, "Decoding island.txt ...", func() error {
		called = true
		return nil
	})
	assert.Nil(t, err)
	assert.True(t, called)

	failure := errors.New("boom")
	err = Spinner(&buf, "Rendering", func() error { return failure })
	assert.Equal(t, failure, err)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "done", outcome(nil, 300*time.Millisecond))
	assert.Equal(t, "failed", outcome(errors.New("boom"), 0))
	assert.Equal(t, "done in 1.2s", outcome(nil, 1234*time.Millisecond))
	assert.Equal(t, "failed in 2m0s", outcome(errors.New("boom"), 2*time.Minute))
}
