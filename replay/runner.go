// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Runner - applies operations to a tree
//
// in verify mode every mutation is followed by a structural check of
// the tree and a comparison with a red-black tree that is given the
// same mutations
type Runner[K cmp.Ordered] struct {
	log      *logger.L
	reporter Reporter
	verify   bool
	tree     *avl.Tree[K, string]
	shadow   *redblacktree.Tree
	stats    Statistics
}

// NewRunner - create a runner with an empty tree
func NewRunner[K cmp.Ordered](log *logger.L, reporter Reporter, verify bool) *Runner[K] {
	return &Runner[K]{
		log:      log,
		reporter: reporter,
		verify:   verify,
		tree:     avl.New[K, string](),
		shadow: redblacktree.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(K), b.(K))
		}),
	}
}

// Tree - the tree being operated on
func (r *Runner[K]) Tree() *avl.Tree[K, string] {
	return r.tree
}

// Statistics - running totals
func (r *Runner[K]) Statistics() *Statistics {
	return &r.stats
}

// Reset - empty the tree and zero the statistics
func (r *Runner[K]) Reset() {
	r.tree.Clear()
	r.shadow.Clear()
	r.stats.Reset()
}

// Run - apply all operations in order, the tree is kept between calls
//
// returns fault.ErrReplayFailed if any outcome did not match its
// expectation or any verification failed
func (r *Runner[K]) Run(ops []Operation[K]) error {
	failures := r.stats.Failures()

	for _, op := range ops {
		command := op.String()

		outcome, mutated := r.apply(op)
		r.stats.Operations.Increment()

		if "" != op.Expect && op.Expect != strings.TrimRight(outcome, "\n") {
			r.stats.Mismatches.Increment()
			r.reporter.Mismatch(op.Line, command, op.Expect, outcome)
		} else {
			r.reporter.Outcome(op.Line, command, outcome)
		}

		if mutated && r.verify {
			if err := r.verifyTree(); nil != err {
				r.stats.Violations.Increment()
				r.reporter.Inconsistent(op.Line, command, err)
			}
		}
	}

	if n := r.stats.Failures() - failures; 0 != n {
		r.log.Errorf("replay: %d operations  %d failures", len(ops), n)
		return errors.Wrapf(fault.ErrReplayFailed, "failures: %d", n)
	}
	r.log.Infof("replay: %d operations  count: %d  height: %d", len(ops), r.tree.Count(), r.tree.Height())
	return nil
}

// apply one operation, returns the outcome and whether the tree changed
func (r *Runner[K]) apply(op Operation[K]) (string, bool) {
	switch op.Kind {

	case Insert:
		err := r.tree.Insert(op.Key, op.Value)
		if nil == err {
			r.stats.Inserted.Increment()
			r.shadow.Put(op.Key, op.Value)
			return OutcomeOK, true
		}
		if fault.IsErrExists(err) {
			r.stats.Duplicates.Increment()
			return OutcomeDuplicate, false
		}
		return err.Error(), false

	case Remove:
		value, err := r.tree.Remove(op.Key)
		if nil == err {
			r.stats.Removed.Increment()
			r.shadow.Remove(op.Key)
			return value, true
		}
		if fault.IsErrNotFound(err) {
			r.stats.NotFound.Increment()
			return OutcomeNotFound, false
		}
		return err.Error(), false

	case Find:
		value, err := r.tree.Find(op.Key)
		if nil == err {
			return value, false
		}
		if fault.IsErrNotFound(err) {
			r.stats.NotFound.Increment()
			return OutcomeNotFound, false
		}
		return err.Error(), false

	case Contains:
		return strconv.FormatBool(r.tree.Contains(op.Key)), false

	case Trace:
		return r.tree.TracePath(op.Key).String(), false

	case Check:
		if err := r.tree.Check(); nil != err {
			r.stats.Violations.Increment()
			return err.Error(), false
		}
		return OutcomeOK, false

	case Print:
		if r.tree.IsEmpty() {
			return OutcomeEmpty, false
		}
		var b strings.Builder
		depth := r.tree.Print(&b, true)
		r.log.Debugf("print: depth: %d", depth)
		return b.String(), false

	case Clear:
		r.tree.Clear()
		r.shadow.Clear()
		return OutcomeOK, true

	default:
		fault.Panicf("replay: line: %d  unknown operation kind: %d", op.Line, op.Kind)
	}
	return "", false
}

// structural check then compare contents with the shadow
func (r *Runner[K]) verifyTree() error {
	if err := r.tree.Check(); nil != err {
		return err
	}

	if r.tree.Count() != r.shadow.Size() {
		return errors.Wrapf(fault.ErrShadowMismatch, "count: %d  shadow: %d", r.tree.Count(), r.shadow.Size())
	}

	it := r.shadow.Iterator()
	for key, value := range r.tree.InOrder() {
		if !it.Next() {
			return errors.Wrapf(fault.ErrShadowMismatch, "extra key: %v", key)
		}
		if it.Key().(K) != key {
			return errors.Wrapf(fault.ErrShadowMismatch, "key: %v  shadow key: %v", key, it.Key())
		}
		if it.Value().(string) != value {
			return errors.Wrapf(fault.ErrShadowMismatch, "key: %v  value: %q  shadow value: %q", key, value, it.Value())
		}
	}
	if it.Next() {
		return errors.Wrapf(fault.ErrShadowMismatch, "missing key: %v", it.Key())
	}
	return nil
}
