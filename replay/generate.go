// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"cmp"
	"fmt"
	"math/rand"
)

// Generate - random mix of operations on keys made from [0, keyRange),
// finishing with a check
//
// the same seed always produces the same operations
func Generate[K cmp.Ordered](seed int64, count int, keyRange int, makeKey func(int) K) []Operation[K] {
	rng := rand.New(rand.NewSource(seed))
	ops := make([]Operation[K], 0, count+1)

	for i := 0; i < count; i += 1 {
		op := Operation[K]{
			Line: i + 1,
			Key:  makeKey(rng.Intn(keyRange)),
		}
		switch n := rng.Intn(100); {
		case n < 45:
			op.Kind = Insert
			op.Value = fmt.Sprintf("v%d", i)
		case n < 75:
			op.Kind = Remove
		case n < 90:
			op.Kind = Find
		case n < 95:
			op.Kind = Contains
		default:
			op.Kind = Trace
		}
		ops = append(ops, op)
	}

	ops = append(ops, Operation[K]{
		Line:   count + 1,
		Kind:   Check,
		Expect: OutcomeOK,
	})
	return ops
}

// IntegerKeys - key maker for Generate with integer keys
func IntegerKeys(n int) int64 {
	return int64(n)
}

// StringKeys - key maker for Generate with fixed width string keys
// so that string order matches numeric order
func StringKeys(n int) string {
	return fmt.Sprintf("%08d", n)
}
