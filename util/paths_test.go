// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../log2", "/data/log2"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: %q + %q", i, item.directory, item.path)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "script.avl")

	assert.False(t, util.EnsureFileExists(name), "before create")
	assert.NoError(t, os.WriteFile(name, []byte("check\n"), 0600), "write")
	assert.True(t, util.EnsureFileExists(name), "after create")
	assert.False(t, util.EnsureFileExists(dir), "directory")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("avlreplay.log"))
	assert.False(t, util.IsPlainName(""))
	assert.False(t, util.IsPlainName("log/avlreplay.log"))
	assert.False(t, util.IsPlainName("/avlreplay.log"))
}
