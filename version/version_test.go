// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	_, err := Parse("foo")
	assert.NotNil(t, err)

	_, err = Parse("1.2")
	assert.NotNil(t, err)

	_, err = Parse("1.-2.3")
	assert.NotNil(t, err)

	v, err := Parse("1.2.3")
	assert.Nil(t, err)
	assert.Equal(t, "1.2.3", v.String())

	v, err = Parse("v4.5.6")
	assert.Nil(t, err)
	assert.Equal(t, "4.5.6", v.String())

	v, err = Parse("1.1.110.7")
	assert.Nil(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 1, Patch: 110, Build: 7}, v)
	assert.Equal(t, "1.1.110.7", v.String())

	v, err = Parse("1.2.3-rc1")
	assert.Nil(t, err)
	assert.Equal(t, "1.2.3", v.String())

	v, err = Parse("0.0.0-devel")
	assert.Nil(t, err)
	assert.True(t, v.IsZero())

	_, err = Parse("-devel")
	assert.NotNil(t, err)

	v, err = Parse("1.1.0.0")
	assert.Nil(t, err)
	assert.Equal(t, "1.1.0", v.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, MustParse("0.0.0").IsZero())
	assert.False(t, MustParse("0.0.0.1").IsZero())
	assert.False(t, MustParse("1.2.3").IsZero())
}

func TestCompare(t *testing.T) {
	assert.True(t, MustParse("1.0.0").Less(MustParse("1.1.0")))
	assert.True(t, MustParse("1.1.0").Less(MustParse("1.1.0.1")))
	assert.False(t, MustParse("2.0.0").Less(MustParse("1.9.9.9")))
	assert.Equal(t, 0, MustParse("1.1.0").Compare(MustParse("1.1.0.0")))
	assert.Panics(t, func() { MustParse("x") })
}
