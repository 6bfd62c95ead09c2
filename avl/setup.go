// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	root  *node[K, V]
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return heightOf(tree.root)
}

// Clear - remove all nodes
func (tree *Tree[K, V]) Clear() {
	clearTree(tree.root)
	tree.root = nil
	tree.count = 0
}

// release every node of a sub-tree, children first
func clearTree[K cmp.Ordered, V any](p *node[K, V]) {
	if nil == p {
		return
	}
	clearTree(p.left)
	clearTree(p.right)
	releaseNode(p)
}
