// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/replay"
)

func TestGenerateRepeatable(t *testing.T) {
	a := replay.Generate(12345, 200, 50, replay.IntegerKeys)
	b := replay.Generate(12345, 200, 50, replay.IntegerKeys)
	c := replay.Generate(54321, 200, 50, replay.IntegerKeys)

	assert.Equal(t, a, b, "same seed")
	assert.NotEqual(t, a, c, "different seed")
	assert.Len(t, a, 201, "operations plus final check")

	last := a[len(a)-1]
	assert.Equal(t, replay.Check, last.Kind, "final operation")
	assert.Equal(t, replay.OutcomeOK, last.Expect, "final expectation")

	for i, op := range a[:200] {
		assert.Equal(t, i+1, op.Line, "line")
		assert.True(t, op.Key >= 0 && op.Key < 50, "key range: %d", op.Key)
		if replay.Insert == op.Kind {
			assert.NotEmpty(t, op.Value, "insert value")
		}
	}
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "insert", replay.Insert.String())
	assert.Equal(t, "clear", replay.Clear.String())
	assert.Equal(t, "*unknown*", replay.Kind(99).String())
}
