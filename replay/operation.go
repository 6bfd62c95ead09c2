// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"cmp"
	"fmt"
)

// Kind - the tree operation to perform
type Kind int

// operation kinds
const (
	Insert   Kind = iota
	Remove   Kind = iota
	Find     Kind = iota
	Contains Kind = iota
	Trace    Kind = iota
	Check    Kind = iota
	Print    Kind = iota
	Clear    Kind = iota
)

// outcomes of operations, others are values, traces or tree dumps
const (
	OutcomeOK        = "ok"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not-found"
	OutcomeTrue      = "true"
	OutcomeFalse     = "false"
	OutcomeEmpty     = "empty"
)

// script names of the operations
var kindNames = map[Kind]string{
	Insert:   "insert",
	Remove:   "remove",
	Find:     "find",
	Contains: "contains",
	Trace:    "trace",
	Check:    "check",
	Print:    "print",
	Clear:    "clear",
}

// String - script name of a kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "*unknown*"
}

// does the kind take a key argument
func (k Kind) hasKey() bool {
	switch k {
	case Insert, Remove, Find, Contains, Trace:
		return true
	default:
		return false
	}
}

// Operation - a single step of a replay
type Operation[K cmp.Ordered] struct {
	Line   int    // script line number, or sequence number when generated
	Kind   Kind   // what to do
	Key    K      // unused for check, print and clear
	Value  string // insert only
	Expect string // expected outcome, empty to accept anything
}

// String - the operation as it would appear in a script
func (op Operation[K]) String() string {
	switch {
	case Insert == op.Kind:
		return fmt.Sprintf("%s %v %s", op.Kind, op.Key, op.Value)
	case op.Kind.hasKey():
		return fmt.Sprintf("%s %v", op.Kind, op.Key)
	default:
		return op.Kind.String()
	}
}
