// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// ensureBalance - refresh the cached height of p and rotate if the
// sub-tree has become unbalanced, returns the (possibly new) root of
// the sub-tree.
//
// must be applied bottom up: children are assumed to be correct
func ensureBalance[K cmp.Ordered, V any](p *node[K, V]) *node[K, V] {
	if nil == p {
		return nil
	}
	p.update()

	switch b := p.balance(); b {
	case -2: // left heavy
		if p.left.balance() <= 0 {
			// stick: single LL rotation
			return rotateRight(p)
		}
		// elbow: double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case +2: // right heavy
		if p.right.balance() >= 0 {
			// stick: single RR rotation
			return rotateLeft(p)
		}
		// elbow: double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)

	case -1, 0, +1:
		return p

	default:
		fault.Panicf("avl: node: %v  impossible balance: %+d", p.key, b)
	}
	return p
}

// rotateLeft - right child becomes the root of the sub-tree
//
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  z   c      a   z
func rotateLeft[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	if nil == x {
		fault.Panicf("avl: rotate left on absent node")
	}
	y := x.right
	if nil == y {
		fault.Panicf("avl: rotate left: node: %v  has no right child", x.key)
	}

	x.right = y.left
	y.left = x

	// x is now below y
	x.update()
	y.update()
	return y
}

// rotateRight - mirror image of rotateLeft
func rotateRight[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	if nil == x {
		fault.Panicf("avl: rotate right on absent node")
	}
	y := x.left
	if nil == y {
		fault.Panicf("avl: rotate right: node: %v  has no left child", x.key)
	}

	x.left = y.right
	y.right = x

	x.update()
	y.update()
	return y
}
