// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Remove - removes a specific item from the tree and returns its value
//
// fails with fault.ErrKeyNotFound if the key is not present, the tree
// is not modified in that case
func (tree *Tree[K, V]) Remove(key K) (V, error) {
	root, value, err := remove(key, tree.root)
	if nil != err {
		return value, err
	}
	tree.root = root
	tree.count -= 1
	return value, nil
}

// internal remove routine, returns the new root of the sub-tree
func remove[K cmp.Ordered, V any](key K, p *node[K, V]) (*node[K, V], V, error) {
	if nil == p { // key not in tree
		var zero V
		return nil, zero, fault.ErrKeyNotFound
	}

	var value V
	var err error
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, value, err = remove(key, p.left)
	case -1: // p.key < key
		p.right, value, err = remove(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part

		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			releaseNode(p)
			return child, value, nil
		}

		// two children: take over the in-order predecessor and
		// then remove that from the left sub-tree
		iop := p.left.last()
		p.key = iop.key
		p.value = iop.value

		p.left, _, err = remove(iop.key, p.left)
		if nil != err {
			fault.Panicf("avl: remove: predecessor: %v  vanished from left sub-tree", p.key)
		}
	}
	if nil != err {
		return p, value, err
	}
	return ensureBalance(p), value, nil
}
