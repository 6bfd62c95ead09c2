// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// a node in the tree
type node[K cmp.Ordered, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 0 for a leaf
	size   int         // nodes in this sub-tree including this one
}

// create a new leaf node
func newNode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: 0,
		size:   1,
	}
}

// detach a node that has been removed from the tree
func releaseNode[K cmp.Ordered, V any](p *node[K, V]) {
	var zeroKey K
	var zeroValue V
	p.left = nil
	p.right = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = -1
	p.size = 0
}

// height of a possibly absent sub-tree
func heightOf[K cmp.Ordered, V any](p *node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// size of a possibly absent sub-tree
func sizeOf[K cmp.Ordered, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute cached values, children must already be correct
func (p *node[K, V]) update() {
	p.height = 1 + max(heightOf(p.left), heightOf(p.right))
	p.size = 1 + sizeOf(p.left) + sizeOf(p.right)
}

// height(right) - height(left), zero for an absent node
func (p *node[K, V]) balance() int {
	if nil == p {
		return 0
	}
	return heightOf(p.right) - heightOf(p.left)
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
