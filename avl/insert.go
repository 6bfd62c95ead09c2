// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Insert - insert a new key/value into the tree
//
// fails with fault.ErrDuplicateKey if the key is already present, the
// tree is not modified in that case
func (tree *Tree[K, V]) Insert(key K, value V) error {
	root, err := insert(key, value, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert, returns the new root of the sub-tree
func insert[K cmp.Ordered, V any](key K, value V, p *node[K, V]) (*node[K, V], error) {
	if nil == p { // insert new node
		return newNode(key, value), nil
	}

	var err error
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, err = insert(key, value, p.left)
	case -1: // p.key < key
		p.right, err = insert(key, value, p.right)
	default:
		return p, fault.ErrDuplicateKey
	}
	if nil != err {
		// nothing below changed so no rebalance is needed
		return p, err
	}
	return ensureBalance(p), nil
}
