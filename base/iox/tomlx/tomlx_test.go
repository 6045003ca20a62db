// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	A string
	B float64 `toml:"b_value"`
}

func TestReadBytes(t *testing.T) {
	s := &testStruct{A: "keep"}
	assert.NoError(t, ReadBytes(s, []byte("b_value = 2.5\n")))
	assert.Equal(t, "keep", s.A)
	assert.Equal(t, 2.5, s.B)

	assert.Error(t, ReadBytes(s, []byte("b_value = ")))
	assert.Error(t, Open(s, "nonexistent.toml"))
}
