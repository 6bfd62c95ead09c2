// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"github.com/bitmark-inc/avlmap/counter"
)

// Statistics - running totals for a runner
type Statistics struct {
	Operations counter.Counter // everything applied
	Inserted   counter.Counter // successful inserts
	Removed    counter.Counter // successful removes
	Duplicates counter.Counter // inserts rejected as duplicate
	NotFound   counter.Counter // find/remove of an absent key
	Mismatches counter.Counter // outcome differed from expectation
	Violations counter.Counter // failed verification
}

// Failures - mismatches and violations together
func (s *Statistics) Failures() uint64 {
	return s.Mismatches.Uint64() + s.Violations.Uint64()
}

// Reset - zero all totals
func (s *Statistics) Reset() {
	s.Operations.Reset()
	s.Inserted.Reset()
	s.Removed.Reset()
	s.Duplicates.Reset()
	s.NotFound.Reset()
	s.Mismatches.Reset()
	s.Violations.Reset()
}
