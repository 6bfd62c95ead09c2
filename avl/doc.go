// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered map
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Each node caches its height (an absent sub-tree has height -1) and
// the number of nodes below it.  Insert and Remove descend
// recursively and every call returns the root of the sub-tree it was
// given, which the caller stores back into its own link; ancestors
// are rebalanced on the way back up.
//
// Keys are unique: inserting an existing key is rejected with
// fault.ErrDuplicateKey and leaves the stored value alone.  Removing a
// node with two children copies the in-order predecessor over it and
// then removes the predecessor from the left sub-tree.
package avl
