// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/replay"
)

func testConfigurationFor(t *testing.T, scripts ...string) *Configuration {
	t.Helper()
	conf := newConfiguration(t.TempDir())
	conf.Scripts = scripts
	conf.Verify = true
	return conf
}

func TestSessionRunAll(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.avl", "insert 30 a\ninsert 10 b\ninsert 20 c\ntrace 25 => 20 -> 30 -> not found 25\n")
	bad := writeFile(t, dir, "bad.avl", "find 20 => z\n")

	conf := testConfigurationFor(t, good, bad)
	conf.Random = RandomType{Seed: 3, Operations: 200, KeyRange: 50}

	s := newSession(logger.New(logCategory), afero.NewOsFs(), conf, replay.IntegerKey, replay.IntegerKeys)

	failed, err := s.runAll()
	require.NoError(t, err, "run")
	assert.Equal(t, 1, failed, "only the bad script fails")
	assert.Equal(t, uint64(1), s.runner.Statistics().Mismatches.Uint64(), "mismatches")
	assert.NoError(t, s.runner.Tree().Check(), "check")

	// each run starts again from an empty tree
	failed, err = s.runAll()
	require.NoError(t, err, "second run")
	assert.Equal(t, 1, failed, "second run")
	assert.Equal(t, uint64(1), s.runner.Statistics().Mismatches.Uint64(), "statistics reset")
}

func TestSessionStringKeys(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "words.avl", "insert pear 1\ninsert apple 2\ninsert fig 3\ntrace fig => found fig\n")

	conf := testConfigurationFor(t, script)
	s := newSession(logger.New(logCategory), afero.NewOsFs(), conf, replay.StringKey, replay.StringKeys)

	assert.True(t, s.runAndReport("test", true), "run")

	first, _, ok := s.runner.Tree().First()
	assert.True(t, ok, "first")
	assert.Equal(t, "apple", first, "lowest key")
}

func TestSessionScriptError(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "broken.avl", "insert 1 a\nexplode 3\n")

	conf := testConfigurationFor(t, script)
	s := newSession(logger.New(logCategory), afero.NewOsFs(), conf, replay.IntegerKey, replay.IntegerKeys)

	_, err := s.runAll()
	assert.Equal(t, fault.ErrUnknownOperation, errors.Cause(err), "parse error")
	assert.False(t, s.runAndReport("test", true), "report")
}

func TestSessionScriptCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := t.TempDir()
	script := filepath.Join(dir, "cached.avl")
	require.NoError(t, afero.WriteFile(fs, script, []byte("insert 1 a\n"), 0600), "write")

	conf := newConfiguration(dir)
	conf.Scripts = []string{script}
	s := newSession(logger.New(logCategory), fs, conf, replay.IntegerKey, replay.IntegerKeys)

	first, err := s.readScript(script)
	require.NoError(t, err, "first read")
	second, err := s.readScript(script)
	require.NoError(t, err, "second read")
	assert.Equal(t, first, second, "same operations")
	assert.Equal(t, 1, s.scripts.ItemCount(), "parsed once")

	require.NoError(t, afero.WriteFile(fs, script, []byte("insert 1 a\ninsert 2 b\n"), 0600), "rewrite")
	third, err := s.readScript(script)
	require.NoError(t, err, "third read")
	assert.Len(t, third, 2, "rewritten file parsed again")
	assert.Equal(t, 2, s.scripts.ItemCount(), "new entry")

	_, err = s.readScript(filepath.Join(dir, "absent.avl"))
	assert.Equal(t, fault.ErrNotFoundScript, errors.Cause(err), "missing")
}
