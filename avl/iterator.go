// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the lowest key and its value
func (tree *Tree[K, V]) First() (K, V, bool) {
	p := tree.root.first()
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}

// Last - return the highest key and its value
func (tree *Tree[K, V]) Last() (K, V, bool) {
	p := tree.root.last()
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}

// InOrder - sequence of all key/value pairs in ascending key order
//
// the sequence may be ranged over any number of times, but the tree
// must not be modified while a range is in progress
func (tree *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, tree.Height()+1)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for ; nil != p; p = p.left {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.right
		}
	}
}

// Backward - sequence of all key/value pairs in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, tree.Height()+1)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for ; nil != p; p = p.right {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.left
		}
	}
}

// PreOrder - sequence of key/value pairs, each node before its left
// then right sub-trees
func (tree *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil == tree.root {
			return
		}
		stack := make([]*node[K, V], 0, 2*(tree.Height()+1))
		stack = append(stack, tree.root)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			if nil != p.right {
				stack = append(stack, p.right)
			}
			if nil != p.left {
				stack = append(stack, p.left)
			}
		}
	}
}
