// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

func leaf(key int) *node[int, string] {
	return newNode(key, "")
}

func TestRotateMissingChildPanics(t *testing.T) {
	assert.Panics(t, func() { rotateLeft(leaf(1)) }, "rotate left without right child")
	assert.Panics(t, func() { rotateRight(leaf(1)) }, "rotate right without left child")
	assert.Panics(t, func() { rotateLeft[int, string](nil) }, "rotate left on nil")
}

func TestImpossibleBalancePanics(t *testing.T) {
	// a chain of three with stale heights gives a balance of +3 once
	// the root is refreshed
	p := leaf(1)
	p.right = leaf(2)
	p.right.right = leaf(3)
	p.right.right.right = leaf(4)
	p.right.right.update()
	p.right.update()

	assert.Panics(t, func() { ensureBalance(p) }, "balance +3")
}

func TestRotateUpdatesHeights(t *testing.T) {
	x := leaf(1)
	x.right = leaf(2)
	x.right.right = leaf(3)
	x.right.update()
	x.update()

	y := rotateLeft(x)
	assert.Equal(t, 2, y.key, "new root")
	assert.Equal(t, 1, y.height, "root height")
	assert.Equal(t, 3, y.size, "root size")
	assert.Equal(t, 0, y.left.height, "left height")
	assert.Equal(t, 0, y.right.height, "right height")
	assert.Equal(t, 0, y.balance(), "balance")
}

func TestEnsureBalanceNoRotation(t *testing.T) {
	p := leaf(2)
	p.left = leaf(1)
	p.height = 7 // stale

	q := ensureBalance(p)
	assert.Equal(t, p, q, "same root")
	assert.Equal(t, 1, q.height, "height refreshed")
	assert.Equal(t, -1, q.balance(), "balance")
	assert.Nil(t, ensureBalance[int, string](nil), "absent sub-tree")
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New[int, string]()
	for i := 1; i <= 7; i += 1 {
		assert.NoError(t, tree.Insert(i, ""))
	}
	assert.NoError(t, tree.Check())

	tree.root.left.key = 100
	assert.Equal(t, fault.ErrKeyOrder, errors.Cause(tree.Check()), "order")
	tree.root.left.key = 2

	tree.root.height = 9
	assert.Equal(t, fault.ErrHeightMismatch, errors.Cause(tree.Check()), "height")
	tree.root.height = 2

	tree.root.size = 1
	assert.Equal(t, fault.ErrSizeMismatch, errors.Cause(tree.Check()), "size")
	tree.root.size = 7

	tree.count = 3
	assert.Equal(t, fault.ErrCountMismatch, errors.Cause(tree.Check()), "count")
	tree.count = 7

	// hang an extra chain off a leaf with correct local heights
	p := tree.root.right.right // 7
	p.right = leaf(8)
	p.right.right = leaf(9)
	p.right.update()
	p.update()
	tree.root.right.update()
	tree.root.update()
	tree.count = 9
	assert.Equal(t, fault.ErrBalanceOutOfRange, errors.Cause(tree.Check()), "balance")
}

func TestReleaseClearsNode(t *testing.T) {
	p := leaf(5)
	p.left = leaf(4)
	p.value = "five"
	releaseNode(p)
	assert.Nil(t, p.left, "left")
	assert.Equal(t, 0, p.key, "key")
	assert.Equal(t, "", p.value, "value")
}
