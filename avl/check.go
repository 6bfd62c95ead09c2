// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify ordering, cached heights, balance factors and sizes of
// every node; returns nil for a consistent tree
func (tree *Tree[K, V]) Check() error {
	if err := check(tree.root, nil, nil); nil != err {
		return err
	}
	if n := sizeOf(tree.root); n != tree.count {
		return errors.Wrapf(fault.ErrCountMismatch, "count: %d  nodes: %d", tree.count, n)
	}
	return nil
}

// internal: consistency checker, low/high are the exclusive key bounds
// imposed by the ancestors (nil = unbounded)
func check[K cmp.Ordered, V any](p *node[K, V], low *K, high *K) error {
	if nil == p {
		return nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return errors.Wrapf(fault.ErrKeyOrder, "key: %v", p.key)
	}
	if err := check(p.left, low, &p.key); nil != err {
		return err
	}
	if err := check(p.right, &p.key, high); nil != err {
		return err
	}

	if h := 1 + max(heightOf(p.left), heightOf(p.right)); h != p.height {
		return errors.Wrapf(fault.ErrHeightMismatch, "key: %v  height: %d  expected: %d", p.key, p.height, h)
	}
	if b := p.balance(); b < -1 || b > +1 {
		return errors.Wrapf(fault.ErrBalanceOutOfRange, "key: %v  balance: %+d", p.key, b)
	}
	if n := 1 + sizeOf(p.left) + sizeOf(p.right); n != p.size {
		return errors.Wrapf(fault.ErrSizeMismatch, "key: %v  size: %d  expected: %d", p.key, p.size, n)
	}
	return nil
}
