// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(7); 10 != n {
		t.Errorf("counter is not 10 after add: %d", n)
	}

	if n := c1.Reset(); 10 != n {
		t.Errorf("reset returned: %d  expected: 10", n)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

// readers may sample while writers increment
func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	wg := new(sync.WaitGroup)

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
				_ = c.Uint64()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8000), c.Uint64(), "total")
}
