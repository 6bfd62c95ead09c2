// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"strings"

	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avlmap/replay Reporter

// Reporter - receives the result of every replayed operation
type Reporter interface {
	Outcome(line int, command string, outcome string)
	Mismatch(line int, command string, expected string, actual string)
	Inconsistent(line int, command string, err error)
}

// LogReporter - report to a logger channel
type LogReporter struct {
	log *logger.L
}

// NewLogReporter - create a reporter writing to log
func NewLogReporter(log *logger.L) *LogReporter {
	return &LogReporter{
		log: log,
	}
}

// Outcome - normal results are only of interest when debugging
func (r *LogReporter) Outcome(line int, command string, outcome string) {
	if strings.ContainsRune(outcome, '\n') {
		r.log.Infof("%d: %s", line, command)
		for _, s := range strings.Split(strings.TrimRight(outcome, "\n"), "\n") {
			r.log.Info(s)
		}
		return
	}
	r.log.Debugf("%d: %s => %s", line, command, outcome)
}

// Mismatch - the script expected something else
func (r *LogReporter) Mismatch(line int, command string, expected string, actual string) {
	r.log.Errorf("%d: %s  expected: %q  actual: %q", line, command, expected, actual)
}

// Inconsistent - the tree failed verification
func (r *LogReporter) Inconsistent(line int, command string, err error) {
	r.log.Criticalf("%d: %s  inconsistent tree: %s", line, command, err)
}
