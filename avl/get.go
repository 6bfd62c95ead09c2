// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Get - key and value at a position in ascending order, 0 is the lowest
func (tree *Tree[K, V]) Get(index int) (K, V, bool) {
	if index < 0 || index >= tree.Count() {
		var key K
		var value V
		return key, value, false
	}
	p := get(index, tree.root)
	return p.key, p.value, true
}

func get[K cmp.Ordered, V any](index int, p *node[K, V]) *node[K, V] {
	for nil != p {
		nl := sizeOf(p.left)
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}
