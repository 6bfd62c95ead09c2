// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"strings"
)

// Direction - branch taken after a comparison
type Direction int

// directions
const (
	Left  Direction = iota
	Right Direction = iota
)

// String - for trace output
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "*unknown*"
	}
}

// Step - one comparison made while searching
type Step[K cmp.Ordered] struct {
	Key       K         // key of the node compared against
	Direction Direction // branch taken afterwards
}

// Trace - the path followed while searching for a key
type Trace[K cmp.Ordered] struct {
	Key   K         // the key searched for
	Steps []Step[K] // nodes passed before the search ended
	Found bool      // true if the search ended at a node holding Key
}

// String - e.g. "8 -> 16 -> 20 -> not found 21"
func (t Trace[K]) String() string {
	var b strings.Builder
	for _, s := range t.Steps {
		fmt.Fprintf(&b, "%v -> ", s.Key)
	}
	if t.Found {
		fmt.Fprintf(&b, "found %v", t.Key)
	} else {
		fmt.Fprintf(&b, "not found %v", t.Key)
	}
	return b.String()
}

// TracePath - record the comparisons made while searching for a key
//
// this has no effect on the tree and a missing key is reported in the
// trace rather than as an error
func (tree *Tree[K, V]) TracePath(key K) Trace[K] {
	t := Trace[K]{
		Key:   key,
		Steps: make([]Step[K], 0, tree.Height()+1),
	}
	for p := tree.root; nil != p; {
		switch cmp.Compare(p.key, key) {
		case +1: // p.key > key
			t.Steps = append(t.Steps, Step[K]{Key: p.key, Direction: Left})
			p = p.left
		case -1: // p.key < key
			t.Steps = append(t.Steps, Step[K]{Key: p.key, Direction: Right})
			p = p.right
		default:
			t.Found = true
			return t
		}
	}
	return t
}
