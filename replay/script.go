// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"bufio"
	"cmp"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avlmap/fault"
)

// separates an operation from its expected outcome
const expectSeparator = "=>"

// IntegerKey - decimal signed 64 bit keys
func IntegerKey(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, errors.Wrapf(fault.ErrInvalidKey, "integer: %q", s)
	}
	return n, nil
}

// StringKey - the token itself is the key
func StringKey(s string) (string, error) {
	return s, nil
}

// ReadScript - parse a script file from fs
func ReadScript[K cmp.Ordered](fs afero.Fs, fileName string, parseKey func(string) (K, error)) ([]Operation[K], error) {
	f, err := fs.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(fault.ErrNotFoundScript, "file: %q", fileName)
		}
		return nil, err
	}
	defer f.Close()

	ops, err := ParseScript(f, parseKey)
	if nil != err {
		return nil, errors.Wrapf(err, "file: %q", fileName)
	}
	return ops, nil
}

// ParseScript - read operations, one per line, parseKey converts a
// script token into a key
func ParseScript[K cmp.Ordered](r io.Reader, parseKey func(string) (K, error)) ([]Operation[K], error) {
	ops := make([]Operation[K], 0, 100)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if "" == strings.TrimSpace(text) {
			continue
		}

		op, err := parseLine(text, parseKey)
		if nil != err {
			return nil, errors.Wrapf(err, "line: %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return ops, nil
}

// parse a single non-blank line
func parseLine[K cmp.Ordered](text string, parseKey func(string) (K, error)) (Operation[K], error) {
	op := Operation[K]{}

	if i := strings.Index(text, expectSeparator); i >= 0 {
		op.Expect = strings.TrimSpace(text[i+len(expectSeparator):])
		text = text[:i]
	}

	fields := strings.Fields(text)
	if 0 == len(fields) {
		return op, fault.ErrEmptyScriptLine
	}

	kind, ok := lookupKind(fields[0])
	if !ok {
		return op, errors.Wrapf(fault.ErrUnknownOperation, "operation: %q", fields[0])
	}
	op.Kind = kind
	arguments := fields[1:]

	switch kind {
	case Insert:
		if len(arguments) < 2 {
			return op, errors.Wrapf(fault.ErrMissingArgument, "%s requires a key and a value", kind)
		}
		op.Value = strings.Join(arguments[1:], " ")
	case Remove, Find, Contains, Trace:
		if 0 == len(arguments) {
			return op, errors.Wrapf(fault.ErrMissingArgument, "%s requires a key", kind)
		}
		if len(arguments) > 1 {
			return op, errors.Wrapf(fault.ErrTooManyArguments, "%s takes only a key", kind)
		}
	default:
		if 0 != len(arguments) {
			return op, errors.Wrapf(fault.ErrTooManyArguments, "%s takes no arguments", kind)
		}
		return op, nil
	}

	key, err := parseKey(arguments[0])
	if nil != err {
		return op, err
	}
	op.Key = key
	return op, nil
}

func lookupKind(name string) (Kind, bool) {
	name = strings.ToLower(name)
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return 0, false
}
