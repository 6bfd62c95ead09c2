// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

type limits struct {
	Seed     int64 `gluamapper:"seed"`
	KeyRange int   `gluamapper:"key_range"`
}

type sample struct {
	Name    string   `gluamapper:"name"`
	Verify  bool     `gluamapper:"verify"`
	Scripts []string `gluamapper:"scripts"`
	Limits  limits   `gluamapper:"limits"`
	Unset   string   `gluamapper:"unset"`
}

const sampleLua = `
local base = "/tmp/replays"
return {
    name = "sample",
    verify = true,
    scripts = {
        base .. "/one.avl",
        base .. "/two.avl",
    },
    limits = {
        seed = 42,
        key_range = 1000,
    },
}
`

func TestParseConfigurationString(t *testing.T) {
	s := sample{
		Unset: "default",
	}
	err := configuration.ParseConfigurationString(sampleLua, &s)
	require.NoError(t, err, "parse")

	expected := sample{
		Name:    "sample",
		Verify:  true,
		Scripts: []string{"/tmp/replays/one.avl", "/tmp/replays/two.avl"},
		Limits: limits{
			Seed:     42,
			KeyRange: 1000,
		},
		Unset: "default",
	}
	assert.Equal(t, expected, s, "configuration")
}

func TestParseConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	source := `return { name = arg[0] }`
	require.NoError(t, os.WriteFile(fileName, []byte(source), 0600), "write")

	s := sample{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	require.NoError(t, err, "parse")
	assert.Equal(t, fileName, s.Name, "arg[0] holds the file name")
}

func TestParseErrors(t *testing.T) {
	s := sample{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &s)
	assert.Equal(t, fault.ErrNotFoundConfigFile, errors.Cause(err), "missing file")

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.Equal(t, fault.ErrConfigurationFile, errors.Cause(err), "syntax error")

	err = configuration.ParseConfigurationString(`return 7`, &s)
	assert.Equal(t, fault.ErrConfigurationFile, errors.Cause(err), "not a table")

	err = configuration.ParseConfigurationString(`error("stop")`, &s)
	assert.Equal(t, fault.ErrConfigurationFile, errors.Cause(err), "runtime error")
}
