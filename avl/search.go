// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Find - value stored for a key
func (tree *Tree[K, V]) Find(key K) (V, error) {
	p := search(key, tree.root)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Contains - true if the key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != search(key, tree.root)
}

func search[K cmp.Ordered, V any](key K, p *node[K, V]) *node[K, V] {
	if nil == p {
		return nil
	}

	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		return search(key, p.left)
	case -1: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
